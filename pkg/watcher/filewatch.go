package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/clipfix/pkg/errors"
	"github.com/arthur-debert/clipfix/pkg/logging"
)

// FileWatcher notifies when a clipboard file is written. It watches the
// parent directory so replace-by-rename writes are seen too.
type FileWatcher struct {
	path   string
	logger zerolog.Logger
}

// NewFileWatcher returns a watcher for path
func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{
		path:   path,
		logger: logging.GetLogger("watcher.file"),
	}
}

// Run watches until ctx is done
func (w *FileWatcher) Run(ctx context.Context, h Handler) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatcherSetup, "failed to create file watcher")
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrWatcherSetup, "failed to watch %s", dir)
	}

	name := filepath.Clean(w.path)
	w.logger.Debug().Str("path", name).Msg("Watching clipboard file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Trace().Str("op", event.Op.String()).Msg("Clipboard file changed")
				h.OnClipboardChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}
