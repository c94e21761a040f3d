package testutil

import (
	"sync"

	"github.com/arthur-debert/clipfix/pkg/errors"
)

// MemoryClipboard is an in-memory clipboard.Clipboard for tests. ReadErr and
// WriteErr, when set, are returned instead of touching the content.
type MemoryClipboard struct {
	mu       sync.Mutex
	text     string
	readErr  error
	writeErr error
	writes   []string
}

// NewMemoryClipboard returns a clipboard holding text
func NewMemoryClipboard(text string) *MemoryClipboard {
	return &MemoryClipboard{text: text}
}

// Read returns the current text or the configured read error
func (m *MemoryClipboard) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.text, nil
}

// Write stores text or returns the configured write error
func (m *MemoryClipboard) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.text = text
	m.writes = append(m.writes, text)
	return nil
}

// Set replaces the text as another application would. It is not recorded
// as a write.
func (m *MemoryClipboard) Set(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// Text returns the current text
func (m *MemoryClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns every text passed to a successful Write
func (m *MemoryClipboard) Writes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.writes))
	copy(out, m.writes)
	return out
}

// FailReads makes Read return err until cleared with nil
func (m *MemoryClipboard) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// FailWrites makes Write return err until cleared with nil
func (m *MemoryClipboard) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

// ErrBusy is a write failure like the one seen when another process holds
// the clipboard open.
var ErrBusy = errors.New(errors.ErrClipboardWrite, "clipboard is held by another process")
