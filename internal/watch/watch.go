// Package watch triggers sidebar rebuilds when the docs tree or the config
// file changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ziadkadry99/docnav/internal/logfields"
)

// DefaultDelay is how long the watcher waits for changes to settle.
const DefaultDelay = 300 * time.Millisecond

// Filter reports whether a change to path should be ignored.
type Filter func(path string) bool

// Handler receives a batch of settled change events.
type Handler func(ctx context.Context, events []fsnotify.Event) error

// Watcher groups rapid filesystem changes and hands them to a Handler.
type Watcher struct {
	fsw    *fsnotify.Watcher
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	filters []Filter
}

// New creates a Watcher. A zero delay uses DefaultDelay.
func New(delay time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{fsw: fsw, delay: delay, logger: logger}, nil
}

// AddFilter adds a filter; an event is dropped if any filter matches it.
func (w *Watcher) AddFilter(f Filter) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.filters = append(w.filters, f)
}

// AddRecursive watches root and every directory below it.
func (w *Watcher) AddRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("skipping unreadable path", logfields.Path(path), logfields.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: add %s: %w", path, err)
		}
		return nil
	})
}

// AddFile watches a single file through its parent directory, which keeps
// working when editors replace the file instead of writing it in place.
func (w *Watcher) AddFile(path string) error {
	dir := filepath.Dir(path)
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	return nil
}

// Run delivers settled batches to handle until ctx is cancelled. Handler
// errors are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	timer := time.NewTimer(w.delay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var pending []fsnotify.Event
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.ignored(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			if ev.Op.Has(fsnotify.Create) {
				// New directories must be watched before their contents change.
				_ = w.AddRecursive(ev.Name)
			}
			pending = append(pending, ev)
			timer.Reset(w.delay)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", logfields.Error(err))

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := pending
			pending = nil
			if err := handle(ctx, batch); err != nil {
				w.logger.Error("rebuild failed", logfields.Events(len(batch)), logfields.Error(err))
			}
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) ignored(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, f := range w.filters {
		if f(path) {
			return true
		}
	}
	return false
}
