package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trayline/internal/trayconf"
)

// startWatchCmd brings up the fsnotify watcher on the config file.
// Best-effort: without a watcher the host still runs, just without live
// reload.
func startWatchCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return nil
		}
		ch, stop, err := trayconf.Watch(path)
		if err != nil {
			return nil
		}
		return watchStartedMsg{ch: ch, stop: stop}
	}
}

// watchSubscribeCmd waits for the next change event, debouncing editor
// write bursts.
func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		<-ch
		time.Sleep(120 * time.Millisecond)
		return fileChangedMsg{}
	}
}
