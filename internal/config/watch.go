package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events editors produce on save.
const reloadDelay = 150 * time.Millisecond

// Watch reloads the configuration at path whenever the file changes and
// passes the result to onChange. Parse failures are reported through the
// error argument and leave the previous configuration in place. Watch blocks
// until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*UserConfig, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	target := filepath.Clean(path)
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			pending = time.After(reloadDelay)
		case <-pending:
			pending = nil
			cfg, err := LoadFrom(path)
			onChange(cfg, err)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(nil, err)
		}
	}
}
