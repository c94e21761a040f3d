// Package monitor connects change notifications, the clipboard and the
// rewrite engine: on every change it pulls the clipboard text, rewrites it and
// writes it back when something changed.
package monitor

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/clipfix/pkg/clipboard"
	"github.com/arthur-debert/clipfix/pkg/logging"
	"github.com/arthur-debert/clipfix/pkg/rewrite"
	"github.com/arthur-debert/clipfix/pkg/types"
)

// Reporter surfaces rewrites to the user
type Reporter interface {
	Report(event types.Event)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(types.Event)

// Report calls f
func (f ReporterFunc) Report(event types.Event) { f(event) }

// Stats counts handled changes
type Stats struct {
	Handled   int `json:"handled"`
	Rewritten int `json:"rewritten"`
	Failed    int `json:"failed"`
}

// Option configures a Monitor
type Option func(*Monitor)

// WithReporter sets where rewrite events go
func WithReporter(r Reporter) Option {
	return func(m *Monitor) { m.reporter = r }
}

// WithDryRun computes rewrites without writing them back
func WithDryRun(dryRun bool) Option {
	return func(m *Monitor) { m.dryRun = dryRun }
}

// WithLogger replaces the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Monitor) { m.logger = logger }
}

// WithClock replaces time.Now for event timestamps
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// Monitor is the watcher.Handler that rewrites the clipboard. Calls are
// serialized, so at most one change is processed at a time.
type Monitor struct {
	clip     clipboard.Clipboard
	engine   *rewrite.Engine
	reporter Reporter
	dryRun   bool
	logger   zerolog.Logger
	now      func() time.Time

	mu    sync.Mutex
	stats Stats
}

// New returns a monitor over clip. A nil engine uses the built-in rules.
func New(clip clipboard.Clipboard, engine *rewrite.Engine, opts ...Option) *Monitor {
	if engine == nil {
		engine = rewrite.New(nil)
	}
	m := &Monitor{
		clip:   clip,
		engine: engine,
		logger: logging.GetLogger("monitor"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnClipboardChange implements watcher.Handler
func (m *Monitor) OnClipboardChange() {
	_, _ = m.Handle()
}

// Handle processes the current clipboard once. It returns the event and true
// when a rewrite happened; the event is also sent to the reporter.
func (m *Monitor) Handle() (types.Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Handled++

	text, err := m.clip.Read()
	if err != nil {
		m.logger.Debug().Err(err).Msg("Skipping clipboard change")
		return types.Event{}, false
	}

	res := m.engine.Rewrite(text)
	if !res.Changed() {
		return types.Event{}, false
	}

	event := types.Event{
		Time:   m.now(),
		Before: res.Input,
		After:  res.Output,
		Rules:  res.Applied,
		DryRun: m.dryRun,
	}

	if !m.dryRun {
		if err := m.clip.Write(res.Output); err != nil {
			m.stats.Failed++
			event.Error = err.Error()
			m.logger.Error().Err(err).Strs("rules", res.Applied).Msg("Couldn't update clipboard content")
		}
	}
	if event.Error == "" {
		m.stats.Rewritten++
	}

	m.logger.Info().
		Strs("rules", res.Applied).
		Bool("dryRun", m.dryRun).
		Int("before", len(res.Input)).
		Int("after", len(res.Output)).
		Msg("Clipboard content rewritten")
	m.logger.Debug().Str("before", res.Input).Str("after", res.Output).Msg("Rewrite detail")

	if m.reporter != nil {
		m.reporter.Report(event)
	}
	return event, true
}

// Stats returns a snapshot of the counters
func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}
