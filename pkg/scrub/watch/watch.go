// Package watch flags scan results as stale when the filesystem changes
// underneath the scanned target roots. Scan results are a snapshot; a
// watcher lets the interface tell the user the snapshot may no longer
// match the disk without re-scanning behind their back.
package watch

import (
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/wxlv/scrub/pkg/scrub/logging"
)

// Watcher observes a fixed set of directory roots for changes. Roots that
// do not exist are skipped: a missing target is a normal state and cannot
// change underneath a scan until it is created, at which point the parent
// seldom matters for staleness.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan string
	done   chan struct{}
	once   sync.Once
}

// New creates a watcher over the given roots and starts delivering events.
func New(roots []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		events: make(chan string, 16),
		done:   make(chan struct{}),
	}

	logger := logging.Get("watch")
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		if err := fsw.Add(root); err != nil {
			logger.Debug("cannot watch root", "path", root, "error", err)
		}
	}

	go w.loop()
	return w, nil
}

// Events delivers the paths of changes seen under any watched root. The
// channel is buffered and drops events when full; one event is enough to
// mark results stale.
func (w *Watcher) Events() <-chan string {
	return w.events
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			select {
			case w.events <- ev.Name:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}
