package generate

import (
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-runs generation whenever a watched path changes. It is used by
// the watch command to keep the output tree reconciled while the campaign
// document or artifact assets are being edited.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	log         *zap.Logger
	trigger     func() error
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// NewWatcher creates a watcher that invokes trigger on relevant changes.
func NewWatcher(l *zap.Logger, trigger func() error) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     w,
		log:         l,
		trigger:     trigger,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond, // Editors fire bursts of writes per save
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Add registers a path with the watcher. Paths that do not exist yet are
// logged and skipped; they can be added on a later run.
func (w *Watcher) Add(path string) {
	if _, err := os.Stat(path); err != nil {
		w.log.Debug("not watching missing path", zap.String("path", path))
		return
	}
	if err := w.watcher.Add(path); err != nil {
		w.log.Warn("failed to watch path", zap.String("path", path), zap.Error(err))
		return
	}
	w.log.Debug("watching path", zap.String("path", path))
}

// Run processes filesystem events until Stop is called. Each relevant event
// is debounced per path before the trigger fires; trigger errors are logged
// and do not stop the loop, so a temporarily broken campaign document can be
// fixed without restarting the watcher.
func (w *Watcher) Run() {
	defer close(w.doneCh)
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if w.debounced(event.Name) {
				continue
			}
			w.log.Info("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if err := w.trigger(); err != nil {
				w.log.Error("regeneration failed", zap.Error(err))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// Stop terminates the event loop and releases the underlying watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	<-w.doneCh
}

func (w *Watcher) debounced(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	now := time.Now()
	if last, ok := w.debounceMap[path]; ok && now.Sub(last) < w.debounceDur {
		return true
	}
	w.debounceMap[path] = now
	return false
}
