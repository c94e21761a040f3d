package watcher

import (
	"context"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/clipfix/pkg/clipboard"
	"github.com/arthur-debert/clipfix/pkg/logging"
)

// DefaultPollInterval is used when a Poller has no interval set
const DefaultPollInterval = 250 * time.Millisecond

// Poller detects changes by reading the clipboard on a fixed interval. It
// keeps a fingerprint of the last text seen, never the text itself.
type Poller struct {
	source   clipboard.Reader
	interval time.Duration
	logger   zerolog.Logger

	last  uint64
	known bool
}

// NewPoller returns a poller over source
func NewPoller(source clipboard.Reader, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		source:   source,
		interval: interval,
		logger:   logging.GetLogger("watcher.poller"),
	}
}

// Run polls until ctx is done. Content present when Run starts is the
// baseline and does not trigger h.
func (p *Poller) Run(ctx context.Context, h Handler) error {
	p.logger.Debug().Dur("interval", p.interval).Msg("Polling clipboard")
	p.poll()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if p.poll() {
				h.OnClipboardChange()
			}
		}
	}
}

// poll reads once and reports whether the content differs from the previous
// successful read. The first successful read only sets the baseline.
func (p *Poller) poll() bool {
	text, err := p.source.Read()
	if err != nil {
		p.logger.Trace().Err(err).Msg("Clipboard not readable")
		return false
	}

	sum := xxhash.Sum64String(text)
	if !p.known {
		p.last, p.known = sum, true
		return false
	}
	if sum == p.last {
		return false
	}
	p.last = sum
	return true
}
