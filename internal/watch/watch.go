// Package watch reports external modification of an open save file. The game
// rewrites its saves while running; an editor holding a stale document needs
// to know before it clobbers newer data.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Event is one observed external change to the watched file.
type Event struct {
	Path string
	Op   string
	At   time.Time
}

// Watcher watches a single save file. Rapid write bursts are debounced so an
// editor saving in multiple syscalls shows up as one event.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	events   chan Event
	log      *zap.Logger
	debounce time.Duration

	mu      sync.Mutex
	last    time.Time
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New creates a watcher for path. The parent directory is watched rather
// than the file itself, so rename-and-replace writes are still seen.
func New(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		events:   make(chan Event, 16),
		log:      log,
		debounce: 500 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	return w, nil
}

// Events delivers debounced change notifications.
func (w *Watcher) Events() <-chan Event { return w.events }

// Start begins watching. Non-blocking.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.log.Debug("watching save file", zap.String("path", w.path))
	go w.run()
	return nil
}

// Stop shuts the watcher down and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	w.watcher.Close()
	<-w.doneCh
}

func (w *Watcher) run() {
	defer close(w.doneCh)
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			now := time.Now()
			w.mu.Lock()
			suppressed := now.Sub(w.last) < w.debounce
			if !suppressed {
				w.last = now
			}
			w.mu.Unlock()
			if suppressed {
				continue
			}
			w.log.Debug("save file changed externally",
				zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			select {
			case w.events <- Event{Path: ev.Name, Op: ev.Op.String(), At: now}:
			default:
				// Drop when the consumer lags; the next write re-notifies.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
