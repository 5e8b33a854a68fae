package tray

import "time"

// Region is one host-managed display area the loop writes status text into.
type Region interface {
	SetText(text string)
	Destroy()
}

// Surface is the host's display: it owns regions, knows its width and
// whether an interactive prompt currently has the message area.
type Surface interface {
	CreateRegion() Region
	AvailableWidth() int
	PromptActive() bool
}

// Scheduler is the host's timer and event wiring. Registrations return their
// own teardown functions so the loop can detach deterministically; the core
// never hooks into the host on its own.
type Scheduler interface {
	SchedulePeriodic(interval time.Duration, tick func()) (cancel func())
	OnResize(fn func()) (remove func())
	OnBeforeMessage(fn func(text string)) (remove func())
}
