package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/clipfix/pkg/logging"
	"github.com/arthur-debert/clipfix/pkg/watcher"
)

// Service runs a notifier feeding a monitor until its context ends.
type Service struct {
	notifier      watcher.Notifier
	monitor       *Monitor
	statsInterval time.Duration
	logger        zerolog.Logger
}

// NewService returns a service. A zero statsInterval disables the periodic
// stats log line.
func NewService(notifier watcher.Notifier, monitor *Monitor, statsInterval time.Duration) *Service {
	return &Service{
		notifier:      notifier,
		monitor:       monitor,
		statsInterval: statsInterval,
		logger:        logging.GetLogger("monitor.service"),
	}
}

// Run blocks until ctx is cancelled or the notifier fails.
func (s *Service) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		// A notifier that stops on its own ends the service too.
		defer cancel()
		return s.notifier.Run(egctx, s.monitor)
	})

	if s.statsInterval > 0 {
		eg.Go(func() error {
			ticker := time.NewTicker(s.statsInterval)
			defer ticker.Stop()
			for {
				select {
				case <-egctx.Done():
					return nil
				case <-ticker.C:
					s.logStats()
				}
			}
		})
	}

	err := eg.Wait()
	s.logStats()
	return err
}

func (s *Service) logStats() {
	stats := s.monitor.Stats()
	s.logger.Info().
		Int("handled", stats.Handled).
		Int("rewritten", stats.Rewritten).
		Int("failed", stats.Failed).
		Msg("Clipboard monitor stats")
}
