package ui

import "time"

// Bubble Tea messages

// periodic tick driving the refresh loop
type tickMsg time.Time

// config file changed on disk
type fileChangedMsg struct{}

// config watcher came up
type watchStartedMsg struct {
	ch   <-chan struct{}
	stop func()
}
