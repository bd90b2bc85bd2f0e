// Package watch re-runs a job whenever a single file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDelay = 500 * time.Millisecond

// Watcher observes one file. The parent directory is watched so editors that
// replace the file through a rename are still noticed.
type Watcher struct {
	Path    string
	Delay   time.Duration
	OnError func(error)

	handle func(ctx context.Context, path string)
}

func New(path string, handle func(ctx context.Context, path string)) *Watcher {
	return &Watcher{Path: path, Delay: DefaultDelay, handle: handle}
}

// Run performs one initial run and then one run per debounced change until
// ctx is cancelled. Runs never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("resolve watch path %s: %w", w.Path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	runner := NewRunner(func(ctx context.Context) {
		w.handle(ctx, target)
	})
	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	debouncer := NewDebouncer(delay, func(string) { runner.Request() })
	defer debouncer.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		runner.Run(runCtx)
	}()
	defer func() {
		cancel()
		<-done
	}()
	runner.Request()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debouncer.Trigger(target)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}
