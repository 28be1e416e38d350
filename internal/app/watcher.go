package app

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/logger"
)

// watcher forwards mesh file changes from the fsnotify goroutine to the
// render thread. The frame step drains pending paths once per frame; no
// scene state is ever touched off-thread.
type watcher struct {
	fs      *fsnotify.Watcher
	pending chan string
	done    chan struct{}
}

func newWatcher() (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		fs:      fs,
		pending: make(chan string, 16),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Add starts watching a mesh file.
func (w *watcher) Add(path string) error {
	return w.fs.Add(path)
}

func (w *watcher) run() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case w.pending <- ev.Name:
			default:
				// Channel full: the frame loop is behind; drop the event,
				// a later write will trigger another reload.
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// drain returns the unique paths changed since the last call.
func (w *watcher) drain() []string {
	var paths []string
	seen := make(map[string]bool)
	for {
		select {
		case p := <-w.pending:
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		default:
			return paths
		}
	}
}

// Close stops the watcher goroutine.
func (w *watcher) Close() {
	close(w.done)
	w.fs.Close()
}
