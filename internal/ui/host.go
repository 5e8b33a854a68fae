package ui

import (
	"time"

	"trayline/internal/tray"
)

// hostRegion is one display area owned by the refresh loop. The view reads
// its text each frame.
type hostRegion struct {
	text  string
	alive bool
}

func (r *hostRegion) SetText(text string) {
	if r.alive {
		r.text = text
	}
}

func (r *hostRegion) Destroy() {
	r.alive = false
	r.text = ""
}

// hostSurface adapts the bubbletea program to tray.Surface. Width tracks the
// latest WindowSizeMsg; prompt mirrors the text input's focus.
type hostSurface struct {
	width  int
	prompt bool
}

func (s *hostSurface) CreateRegion() tray.Region { return &hostRegion{alive: true} }
func (s *hostSurface) AvailableWidth() int       { return s.width }
func (s *hostSurface) PromptActive() bool        { return s.prompt }

// hostSched adapts the bubbletea message loop to tray.Scheduler. The loop's
// callbacks are stored here and invoked from Update when the matching
// message arrives; nothing outside the program's single goroutine ever runs
// them.
type hostSched struct {
	tick      func()
	resize    func()
	beforeMsg func(text string)
}

func (s *hostSched) SchedulePeriodic(interval time.Duration, tick func()) (cancel func()) {
	s.tick = tick
	return func() { s.tick = nil }
}

func (s *hostSched) OnResize(fn func()) (remove func()) {
	s.resize = fn
	return func() { s.resize = nil }
}

func (s *hostSched) OnBeforeMessage(fn func(text string)) (remove func()) {
	s.beforeMsg = fn
	return func() { s.beforeMsg = nil }
}

func (s *hostSched) fireTick() {
	if s.tick != nil {
		s.tick()
	}
}

func (s *hostSched) fireResize() {
	if s.resize != nil {
		s.resize()
	}
}

func (s *hostSched) fireBeforeMessage(text string) {
	if s.beforeMsg != nil {
		s.beforeMsg(text)
	}
}
