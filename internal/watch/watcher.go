// Package watch reruns a count whenever one of the watched files changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yamd1/wcr/pkg/log"
)

// RecountFunc is called after a change settles. A non-nil error stops the
// watcher and is returned from Run.
type RecountFunc func(ctx context.Context) error

const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// Watcher monitors a set of files through their parent directories so that
// editors replacing a file by rename are also noticed.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	debounce time.Duration
	recount  RecountFunc
	logger   log.Logger
	ready    chan struct{}
}

// New creates a Watcher for paths. Recounts run at most once per debounce
// interval after the last change.
func New(paths []string, debounce time.Duration, fn RecountFunc, logger log.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("watch: no files to watch")
	}
	if debounce <= 0 {
		return nil, errors.New("watch: debounce must be positive")
	}
	if fn == nil {
		return nil, errors.New("watch: nil recount func")
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	w := &Watcher{
		files:    make(map[string]struct{}, len(paths)),
		debounce: debounce,
		recount:  fn,
		logger:   logger,
		ready:    make(chan struct{}),
	}

	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		w.dirs = append(w.dirs, d)
	}
	sort.Strings(w.dirs)

	return w, nil
}

// Ready is closed once every directory is being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled, which returns nil, or until a
// recount fails. Recounts run on the calling goroutine, one at a time.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch: add %s: %w", dir, err)
		}
	}
	close(w.ready)
	w.logger.Info("watching for changes",
		log.Strings("dirs", w.dirs),
		log.Int("files", len(w.files)),
		log.Duration("debounce", w.debounce),
	)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected",
				log.String("file", event.Name),
				log.String("op", event.Op.String()),
			)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.recount(ctx); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", log.Err(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&changeOps == 0 {
		return false
	}
	_, ok := w.files[filepath.Clean(event.Name)]
	return ok
}
