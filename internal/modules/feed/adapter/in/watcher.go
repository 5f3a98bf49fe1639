package in

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	feedin "watchtrainer/internal/modules/feed/port/in"
)

// Watcher reloads the feed whenever the device sync rewrites the snapshot file.
type Watcher struct {
	usecase feedin.Usecase
	path    string
}

func NewWatcher(usecase feedin.Usecase, path string) *Watcher {
	return &Watcher{usecase: usecase, path: filepath.Clean(path)}
}

// Run blocks until ctx is cancelled. The parent directory is watched because
// atomic writers replace the file through a rename.
func (w *Watcher) Run(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create feed dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create feed watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch feed dir: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			snapshot, err := w.usecase.Reload(ctx)
			if err != nil {
				log.WithError(err).Warn("feed: reload failed")
				continue
			}
			log.WithFields(log.Fields{"steps": snapshot.Steps, "heart_rate": snapshot.HeartRate}).Debug("feed: reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("feed: watcher error")
		}
	}
}
