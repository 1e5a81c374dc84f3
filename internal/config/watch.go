package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration at path whenever the file is written or
// recreated and hands the result to fn. The parent directory is watched so
// editors that replace the file are noticed. Watch returns once the watcher
// is running; it stops when ctx is done. fn is called from the watcher
// goroutine.
func Watch(ctx context.Context, path string, fn func(Config, error)) error {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	slog.Debug("watching config", "path", path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				slog.Debug("config changed", "path", path, "op", event.Op.String())
				fn(Load(path))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config watcher", "err", err)
			}
		}
	}()
	return nil
}
