package clipboard

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/arthur-debert/clipfix/pkg/errors"
)

// File is a clipboard backed by a plain text file, as kept by terminal
// multiplexers and clipboard sync tools.
type File struct {
	path string
}

// NewFile returns a clipboard stored at path
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path
func (f *File) Path() string { return f.path }

// Read returns the file contents. A missing file means the clipboard is
// empty-and-unavailable, and bytes that are not UTF-8 are not text.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrClipboardUnavailable, "clipboard file %s does not exist", f.path)
		}
		return "", errors.Wrapf(err, errors.ErrClipboardRead, "failed to read clipboard file %s", f.path)
	}
	if !utf8.Valid(data) {
		return "", errors.Newf(errors.ErrClipboardNotText, "clipboard file %s does not hold UTF-8 text", f.path)
	}
	return string(data), nil
}

// Write replaces the file contents through a temporary file and a rename, so
// readers never see a partial write.
func (f *File) Write(text string) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrClipboardWrite, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrClipboardWrite, "failed to write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrClipboardWrite, "failed to close %s", tmpName)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrClipboardWrite, "failed to replace %s", f.path)
	}
	return nil
}
