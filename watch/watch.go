// Package watch reports changes to bind files so a host can reload them
//
// The Watcher never touches a Binder. Changed paths are delivered on a
// channel and the host applies the reload on its own input thread.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is the quiet period before a burst of writes is reported
const DefaultDelay = 100 * time.Millisecond

// ErrClosed is returned when adding files to a closed Watcher
var ErrClosed = errors.New("watcher closed")

// Watcher coalesces file system events for a fixed set of files
// Parent directories are watched so editors that replace files on save
// are still seen
type Watcher struct {
	mu sync.Mutex

	fsw   *fsnotify.Watcher
	delay time.Duration

	files map[string]bool
	dirs  map[string]bool

	reloads chan []string
	errors  chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDelay sets the debounce period; non-positive values keep DefaultDelay
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// New starts watching paths
func New(paths []string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		delay:   DefaultDelay,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		reloads: make(chan []string, 1),
		errors:  make(chan error, 16),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Add watches one more file
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Files returns the watched files, sorted
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	slices.Sort(files)
	return files
}

// Reloads delivers the sorted set of files changed in each burst
func (w *Watcher) Reloads() <-chan []string {
	return w.reloads
}

// Errors delivers fsnotify errors; excess errors are dropped
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes both channels
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.reloads)
	close(w.errors)

	return w.fsw.Close()
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	pending := make(map[string]bool)
	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			pending[filepath.Clean(ev.Name)] = true
			timer.Reset(w.delay)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}
			slices.Sort(batch)
			clear(pending)

			select {
			case w.reloads <- batch:
			case <-w.closeCh:
				return
			}
		}
	}
}

// relevant keeps content changes to watched files; chmod alone is ignored
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Rename) && !ev.Op.Has(fsnotify.Remove) {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[filepath.Clean(ev.Name)]
}
