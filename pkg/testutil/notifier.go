package testutil

import (
	"context"

	"github.com/arthur-debert/clipfix/pkg/watcher"
)

// ManualNotifier is a watcher.Notifier driven by the test. Each value sent
// on Fire produces one OnClipboardChange call.
type ManualNotifier struct {
	Fire    chan struct{}
	started chan struct{}
}

// NewManualNotifier returns a notifier with an unbuffered Fire channel
func NewManualNotifier() *ManualNotifier {
	return &ManualNotifier{
		Fire:    make(chan struct{}),
		started: make(chan struct{}),
	}
}

// Started is closed once Run is waiting for notifications
func (n *ManualNotifier) Started() <-chan struct{} { return n.started }

// Run delivers notifications until ctx is done
func (n *ManualNotifier) Run(ctx context.Context, h watcher.Handler) error {
	close(n.started)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-n.Fire:
			h.OnClipboardChange()
		}
	}
}
