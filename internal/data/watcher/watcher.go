// Package watcher notifies subscribers when the clockin log changes,
// debouncing bursts of filesystem events into single notifications.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/clockin-tool/clockin/internal/util"
)

// DebounceInterval is how long the log must stay quiet before a change
// notification fires. Editors and the recorder produce several events
// per save; subscribers want one.
const DebounceInterval = 200 * time.Millisecond

// LogWatcher watches one log file through its parent directory, which
// also catches editors that replace the file instead of writing in place.
type LogWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	changes  chan struct{}
}

// New creates a watcher for the log at path.
func New(path string) (*LogWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &LogWatcher{
		watcher:  fsWatcher,
		path:     absPath,
		debounce: DebounceInterval,
		changes:  make(chan struct{}, 1),
	}
	go w.run()
	return w, nil
}

func (w *LogWatcher) run() {
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				close(w.changes)
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			util.LogDebugf("Log event: %s", event)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-pending:
			timer = nil
			pending = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				close(w.changes)
				return
			}
			util.LogError("Log watch error: " + err.Error())
		}
	}
}

// Changes delivers one notification per settled burst of log writes.
// The channel closes when the watcher is closed.
func (w *LogWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching.
func (w *LogWatcher) Close() error {
	return w.watcher.Close()
}
