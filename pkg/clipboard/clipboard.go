// Package clipboard provides text access to the clipboard the monitor
// rewrites. Only text ever crosses this boundary; anything else is reported
// as an error so it never reaches the rewrite engine.
package clipboard

import (
	"github.com/arthur-debert/clipfix/pkg/errors"
)

// Backend names accepted by New
const (
	BackendSystem = "system"
	BackendFile   = "file"
)

// Reader returns the current clipboard text
type Reader interface {
	Read() (string, error)
}

// Writer replaces the clipboard text
type Writer interface {
	Write(text string) error
}

// Clipboard reads and writes clipboard text
type Clipboard interface {
	Reader
	Writer
}

// New returns the clipboard for a backend name. path is only used by the
// file backend.
func New(backend, path string) (Clipboard, error) {
	switch backend {
	case BackendSystem, "":
		return NewSystem(), nil
	case BackendFile:
		if path == "" {
			return nil, errors.New(errors.ErrInvalidInput, "file backend needs a path")
		}
		return NewFile(path), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown clipboard backend %q", backend)
	}
}
