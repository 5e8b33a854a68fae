package trayconf

import (
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"

	"trayline/internal/system"
)

// Watch observes the config file's directory and signals on ch after each
// write or create event touching tray.json. The returned stop function tears
// the watcher down. Callers should debounce; editors often fire bursts.
func Watch(path string) (ch <-chan struct{}, stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	// watch the directory, not the file: editors replace files on save
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, nil, err
	}
	c := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != filepath.Base(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case c <- struct{}{}:
				default:
				}
			case werr, ok := <-w.Errors:
				if !ok {
					return
				}
				system.Logger.Warn("config watcher error", "err", werr)
			}
		}
	}()
	return c, func() { _ = w.Close() }, nil
}
