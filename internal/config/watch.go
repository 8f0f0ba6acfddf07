package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it is written or replaced and sends each
// successfully parsed Config. Only the latest pending Config is kept, so a
// slow reader never blocks the watcher. Files that fail to parse are logged
// and skipped. The channel is closed once ctx is done.
//
// The parent directory is watched rather than the file itself so editors
// that save through a rename keep triggering reloads.
func Watch(ctx context.Context, path string, log *slog.Logger) (<-chan Config, error) {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	out := make(chan Config, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("config watcher error", "path", path, "err", err)
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					log.Error("config reload failed", "err", err)
					continue
				}
				log.Debug("config reloaded", "path", path)
				publish(out, cfg)
			}
		}
	}()
	return out, nil
}

// publish replaces any unread Config in out with cfg.
func publish(out chan Config, cfg Config) {
	for {
		select {
		case out <- cfg:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
