package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config at path whenever it changes and passes the result
// to onChange. A file that fails to parse is reported through the error
// argument and the caller keeps its previous config.
//
// The parent directory is watched rather than the file itself, because most
// editors save by writing a new file and renaming it over the old one.
// Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !isChange(ev.Op) {
				continue
			}
			onChange(Load(abs))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onChange(nil, err)
		}
	}
}

func isChange(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}
