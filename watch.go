package sapling

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// SettingsWatcher reloads a settings file whenever it changes on disk.
// Parsed settings arrive on Updates; load failures arrive on Errors. Both
// channels are closed after Close.
type SettingsWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Settings
	errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchSettings starts watching path. The directory is watched so that
// editors which save by rename are seen.
func WatchSettings(path string) (*SettingsWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	sw := &SettingsWatcher{
		path:    abs,
		watcher: w,
		updates: make(chan Settings, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

// Updates delivers freshly loaded settings.
func (w *SettingsWatcher) Updates() <-chan Settings { return w.updates }

// Errors delivers load and watch failures.
func (w *SettingsWatcher) Errors() <-chan error { return w.errors }

// Close stops the watcher and waits for its goroutine to exit.
func (w *SettingsWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *SettingsWatcher) run() {
	defer func() {
		close(w.updates)
		close(w.errors)
		close(w.done)
	}()

	// Reload once the file has been quiet for watchDebounce.
	var pending <-chan time.Time
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(watchDebounce)
			pending = timer.C
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *SettingsWatcher) reload() {
	s, err := LoadSettings(w.path)
	if err != nil {
		Logger().Warn("settings reload failed", "path", w.path, "err", err)
		w.send(nil, err)
		return
	}
	Logger().Debug("settings reloaded", "path", w.path)
	w.send(&s, nil)
}

// send delivers a result. An unread update is replaced; an unread error is
// kept and the new one dropped.
func (w *SettingsWatcher) send(s *Settings, err error) {
	if s != nil {
		select {
		case <-w.updates:
		default:
		}
		select {
		case w.updates <- *s:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.errors <- err:
	default:
	}
}
