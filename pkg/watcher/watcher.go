// Package watcher delivers "clipboard changed" notifications. A Notifier
// owns the detection mechanism; the Handler it calls gets no payload and
// pulls the current text itself.
package watcher

import "context"

// Handler reacts to a clipboard change
type Handler interface {
	OnClipboardChange()
}

// HandlerFunc adapts a plain function to Handler
type HandlerFunc func()

// OnClipboardChange calls f
func (f HandlerFunc) OnClipboardChange() { f() }

// Notifier calls h once per detected change, sequentially, until ctx is
// cancelled. Run returns nil on cancellation.
type Notifier interface {
	Run(ctx context.Context, h Handler) error
}
