package tray

import "time"

// RegionKind names the display areas the loop keeps painted.
type RegionKind string

const (
	// RegionMessage is the transient message (echo) area.
	RegionMessage RegionKind = "message"
	// RegionPlaceholder is the always-visible idle area.
	RegionPlaceholder RegionKind = "placeholder"
)

// DefaultInterval is the periodic refresh cadence when the config does not
// set one.
const DefaultInterval = 500 * time.Millisecond

type regionState struct {
	region Region
	text   string
}

// Loop drives the pipeline on a timer and on host events, writing the result
// into the tracked regions. Everything runs on the host's single event
// thread; overlapping triggers resolve last-writer-wins.
type Loop struct {
	pipe    *Pipeline
	surface Surface
	sched   Scheduler

	Interval time.Duration

	regions    map[RegionKind]*regionState
	cancelTick func()
	offResize  func()
	offMessage func()
	active     bool
}

func NewLoop(pipe *Pipeline, surface Surface, sched Scheduler) *Loop {
	return &Loop{
		pipe:     pipe,
		surface:  surface,
		sched:    sched,
		Interval: DefaultInterval,
		regions:  make(map[RegionKind]*regionState),
	}
}

// Active reports whether the loop currently owns its regions and timer.
func (l *Loop) Active() bool { return l.active }

// Start creates the display regions, paints them once, registers the resize
// and before-message observers and schedules the periodic tick.
func (l *Loop) Start() {
	if l.active {
		return
	}
	for _, kind := range []RegionKind{RegionMessage, RegionPlaceholder} {
		l.regions[kind] = &regionState{region: l.surface.CreateRegion()}
	}
	l.active = true
	l.Resize()
	l.offResize = l.sched.OnResize(l.Resize)
	l.offMessage = l.sched.OnBeforeMessage(l.BeforeMessage)
	l.cancelTick = l.sched.SchedulePeriodic(l.Interval, l.Tick)
}

// Stop cancels the timer and detaches the observers before tearing the
// regions down, so a late tick can never write into destroyed state.
func (l *Loop) Stop() {
	if !l.active {
		return
	}
	if l.cancelTick != nil {
		l.cancelTick()
		l.cancelTick = nil
	}
	if l.offResize != nil {
		l.offResize()
		l.offResize = nil
	}
	if l.offMessage != nil {
		l.offMessage()
		l.offMessage = nil
	}
	for kind, rs := range l.regions {
		rs.region.SetText("")
		rs.region.Destroy()
		delete(l.regions, kind)
	}
	l.active = false
}

// Tick refreshes every region that currently shows text, unless an
// interactive prompt owns the message area.
func (l *Loop) Tick() {
	if !l.active || l.surface.PromptActive() {
		return
	}
	for _, rs := range l.regions {
		if rs.text == "" {
			continue
		}
		l.write(rs, l.pipe.BuildInfo())
	}
}

// BeforeMessage runs just before the host prints a transient message. The
// message region keeps the status text only when both fit side by side;
// otherwise it blanks for this tick so the message is never clipped. The
// placeholder region always keeps the status text.
func (l *Loop) BeforeMessage(text string) {
	if !l.active {
		return
	}
	info := l.pipe.BuildInfo()
	avail := l.surface.AvailableWidth()
	msgWidth := l.pipe.MeasureWidth(text)
	infoWidth := l.pipe.InfoWidth()
	for kind, rs := range l.regions {
		if kind == RegionPlaceholder || avail-infoWidth-msgWidth > 0 {
			l.write(rs, info)
			continue
		}
		l.write(rs, "")
	}
}

// Resize repaints every region unconditionally.
func (l *Loop) Resize() {
	if !l.active {
		return
	}
	info := l.pipe.BuildInfo()
	for _, rs := range l.regions {
		l.write(rs, info)
	}
}

// RegionText returns what the loop last wrote into a region.
func (l *Loop) RegionText(kind RegionKind) string {
	if rs, ok := l.regions[kind]; ok {
		return rs.text
	}
	return ""
}

func (l *Loop) write(rs *regionState, text string) {
	rs.text = text
	rs.region.SetText(text)
}
