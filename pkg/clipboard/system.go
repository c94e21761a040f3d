package clipboard

import (
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/arthur-debert/clipfix/pkg/errors"
)

// System is the operating system clipboard. It reads and writes the text
// format only.
type System struct{}

// NewSystem returns the OS clipboard
func NewSystem() *System {
	return &System{}
}

// Read returns the current clipboard text
func (s *System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", errors.Newf(errors.ErrClipboardUnavailable, "clipboard operations not supported on %s", runtime.GOOS)
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrClipboardRead, "failed to read from clipboard")
	}
	return text, nil
}

// Write replaces the clipboard text
func (s *System) Write(text string) error {
	if clipboard.Unsupported {
		return errors.Newf(errors.ErrClipboardUnavailable, "clipboard operations not supported on %s", runtime.GOOS)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, errors.ErrClipboardWrite, "failed to copy to clipboard")
	}
	return nil
}
