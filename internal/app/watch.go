package app

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ResultWatcher watches a result file and triggers a callback once the file
// has been rewritten, e.g. when the simulator finishes another run with the
// same output path. Bursts of writes are coalesced: the callback fires after
// the file has been quiet for the settle interval.
type ResultWatcher struct {
	path     string
	settle   time.Duration
	watcher  *fsnotify.Watcher
	onChange func() // Called from a background goroutine

	mu     sync.Mutex
	timer  *time.Timer
	stopCh chan struct{}
}

// NewResultWatcher creates a watcher for the result file at path. The parent
// directory is watched so that files replaced by rename are noticed too.
func NewResultWatcher(path string, settle time.Duration) (*ResultWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &ResultWatcher{
		path:    abs,
		settle:  settle,
		watcher: w,
		stopCh:  make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (rw *ResultWatcher) Path() string {
	return rw.path
}

// OnChange sets the callback invoked when the file has changed. The callback
// runs on a background goroutine; UI updates need the toolkit's own
// synchronization.
func (rw *ResultWatcher) OnChange(callback func()) {
	rw.onChange = callback
}

// Start begins watching in a background goroutine.
func (rw *ResultWatcher) Start() {
	go rw.watchLoop()
}

// Stop ends watching and releases the underlying watcher.
func (rw *ResultWatcher) Stop() {
	close(rw.stopCh)
	rw.mu.Lock()
	if rw.timer != nil {
		rw.timer.Stop()
	}
	rw.mu.Unlock()
	rw.watcher.Close()
}

func (rw *ResultWatcher) watchLoop() {
	for {
		select {
		case <-rw.stopCh:
			return
		case ev, ok := <-rw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != rw.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				rw.schedule()
			}
		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watch: %v", err)
		}
	}
}

// schedule (re)arms the settle timer.
func (rw *ResultWatcher) schedule() {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.timer != nil {
		rw.timer.Stop()
	}
	rw.timer = time.AfterFunc(rw.settle, func() {
		select {
		case <-rw.stopCh:
			return
		default:
		}
		if rw.onChange != nil {
			rw.onChange()
		}
	})
}
