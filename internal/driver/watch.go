package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"sesh/internal/trace"
)

// debounce collapses the burst of events editors produce on save.
const debounce = 50 * time.Millisecond

// Watcher reports changes to a single file. It watches the parent directory
// so that editors which save by rename are still seen.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// NewWatcher starts watching path. Changes made after it returns are
// delivered by Run.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close() //nolint:errcheck
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &Watcher{path: abs, w: w}, nil
}

// Run calls onChange after each write to the file until ctx is done.
// It returns nil on cancellation and the watcher error otherwise.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	tracer := trace.FromContext(ctx)
	var (
		timer  *time.Timer
		fire   <-chan time.Time
		events = w.w.Events
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			trace.Point(tracer, trace.ScopeFile, "watch", ev.Op.String(), 0)
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange(ctx)
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}
