package document

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ytget/mesh-designer/internal/platform"
)

// DefaultDebounce coalesces the burst of events an editor produces on save
const DefaultDebounce = 200 * time.Millisecond

// Change reports an outside modification of the watched document
type Change struct {
	Path    string
	Removed bool
}

// Watcher reports changes of a single document file. The parent directory
// is watched so atomic replacements via rename are seen too.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(Change)
	watcher  *fsnotify.Watcher
	done     chan struct{}

	mu          sync.Mutex
	timer       *time.Timer
	removed     bool
	ignoreUntil time.Time
	closed      bool
}

// Watch starts watching path. onChange runs on the watcher goroutine once
// events have been quiet for debounce.
func Watch(path string, debounce time.Duration, onChange func(Change)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Ignore suppresses notifications for d, used around the editor's own saves
func (w *Watcher) Ignore(d time.Duration) {
	w.mu.Lock()
	w.ignoreUntil = time.Now().Add(d)
	w.mu.Unlock()
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			switch {
			case event.Op&fsnotify.Remove == fsnotify.Remove ||
				event.Op&fsnotify.Rename == fsnotify.Rename:
				w.schedule(true)
			case event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create:
				w.schedule(false)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			platform.Logger().Warn("document watcher error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) schedule(removed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || time.Now().Before(w.ignoreUntil) {
		return
	}
	w.removed = removed
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	change := Change{Path: w.path, Removed: w.removed}
	w.mu.Unlock()

	platform.Logger().Debug("document changed on disk", "path", change.Path, "removed", change.Removed)
	if w.onChange != nil {
		w.onChange(change)
	}
}
