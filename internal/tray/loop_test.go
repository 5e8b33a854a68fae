package tray

import (
	"strings"
	"testing"
	"time"
)

type fakeSched struct {
	events []string

	tick      func()
	resize    func()
	beforeMsg func(string)
}

func (s *fakeSched) SchedulePeriodic(interval time.Duration, tick func()) func() {
	s.events = append(s.events, "schedule")
	s.tick = tick
	return func() {
		s.events = append(s.events, "cancel")
		s.tick = nil
	}
}

func (s *fakeSched) OnResize(fn func()) func() {
	s.resize = fn
	return func() {
		s.events = append(s.events, "off-resize")
		s.resize = nil
	}
}

func (s *fakeSched) OnBeforeMessage(fn func(string)) func() {
	s.beforeMsg = fn
	return func() {
		s.events = append(s.events, "off-message")
		s.beforeMsg = nil
	}
}

func loopWith(t *testing.T, surface *fakeSurface, text string) (*Loop, *fakeSched) {
	t.Helper()
	p := pipelineWith(t, surface, map[string]func() string{
		"x": func() string { return text },
	}, []string{"x"})
	sched := &fakeSched{}
	return NewLoop(p, surface, sched), sched
}

func TestLoop_StartPaintsBothRegions(t *testing.T) {
	surface := &fakeSurface{width: 80}
	l, _ := loopWith(t, surface, "hello")
	l.Start()
	if len(surface.regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(surface.regions))
	}
	for kind := range map[RegionKind]bool{RegionMessage: true, RegionPlaceholder: true} {
		if !strings.Contains(l.RegionText(kind), "hello") {
			t.Fatalf("region %s not painted: %q", kind, l.RegionText(kind))
		}
	}
}

func TestLoop_TickSkipsWhilePromptActive(t *testing.T) {
	surface := &fakeSurface{width: 80}
	text := "one"
	p := pipelineWith(t, surface, map[string]func() string{
		"x": func() string { return text },
	}, []string{"x"})
	sched := &fakeSched{}
	l := NewLoop(p, surface, sched)
	l.Start()

	text = "two"
	surface.prompt = true
	l.Tick()
	if strings.Contains(l.RegionText(RegionPlaceholder), "two") {
		t.Fatalf("tick wrote while prompt active")
	}
	surface.prompt = false
	l.Tick()
	if !strings.Contains(l.RegionText(RegionPlaceholder), "two") {
		t.Fatalf("tick did not refresh: %q", l.RegionText(RegionPlaceholder))
	}
}

func TestLoop_BeforeMessageKeepsInfoWhenRoomRemains(t *testing.T) {
	// available 40, info 8, message 30 => 2 columns spare, both coexist
	surface := &fakeSurface{width: 40}
	l, _ := loopWith(t, surface, "12345678")
	l.Start()

	l.BeforeMessage(strings.Repeat("m", 30))
	if l.RegionText(RegionMessage) == "" {
		t.Fatalf("message region blanked despite room")
	}
	if l.RegionText(RegionPlaceholder) == "" {
		t.Fatalf("placeholder blanked")
	}
}

func TestLoop_BeforeMessageBlanksMessageRegionWhenTight(t *testing.T) {
	// available 40, info 8, message 35 => no room, message region yields
	surface := &fakeSurface{width: 40}
	l, _ := loopWith(t, surface, "12345678")
	l.Start()

	l.BeforeMessage(strings.Repeat("m", 35))
	if got := l.RegionText(RegionMessage); got != "" {
		t.Fatalf("message region should be blank, got %q", got)
	}
	if l.RegionText(RegionPlaceholder) == "" {
		t.Fatalf("placeholder must keep the status text")
	}
}

func TestLoop_ResizeRepaintsAll(t *testing.T) {
	surface := &fakeSurface{width: 80}
	text := "a"
	p := pipelineWith(t, surface, map[string]func() string{
		"x": func() string { return text },
	}, []string{"x"})
	sched := &fakeSched{}
	l := NewLoop(p, surface, sched)
	l.Start()

	// blank the message region, as a tight message would
	l.BeforeMessage(strings.Repeat("m", 100))
	text = "resized"
	l.Resize()
	for _, kind := range []RegionKind{RegionMessage, RegionPlaceholder} {
		if !strings.Contains(l.RegionText(kind), "resized") {
			t.Fatalf("region %s not repainted: %q", kind, l.RegionText(kind))
		}
	}
}

func TestLoop_TickLeavesBlankRegionsAlone(t *testing.T) {
	surface := &fakeSurface{width: 40}
	l, _ := loopWith(t, surface, "12345678")
	l.Start()
	l.BeforeMessage(strings.Repeat("m", 35)) // blanks the message region

	l.Tick()
	if got := l.RegionText(RegionMessage); got != "" {
		t.Fatalf("tick resurrected a blank region: %q", got)
	}
}

func TestLoop_StopDetachesBeforeTeardown(t *testing.T) {
	surface := &fakeSurface{width: 80}
	l, sched := loopWith(t, surface, "hello")
	l.Start()
	l.Stop()

	if l.Active() {
		t.Fatalf("loop still active after stop")
	}
	// timer and hooks came down, in registration order
	want := []string{"schedule", "cancel", "off-resize", "off-message"}
	if len(sched.events) != len(want) {
		t.Fatalf("events = %v, want %v", sched.events, want)
	}
	for i, ev := range want {
		if sched.events[i] != ev {
			t.Fatalf("events = %v, want %v", sched.events, want)
		}
	}
	for _, r := range surface.regions {
		if !r.destroyed {
			t.Fatalf("region not destroyed")
		}
		if r.text != "" {
			t.Fatalf("region text not cleared")
		}
	}
	if sched.tick != nil || sched.resize != nil || sched.beforeMsg != nil {
		t.Fatalf("callbacks still attached after stop")
	}

	// a second stop is a no-op
	l.Stop()
}

func TestLoop_StartTwiceIsNoop(t *testing.T) {
	surface := &fakeSurface{width: 80}
	l, _ := loopWith(t, surface, "hi")
	l.Start()
	l.Start()
	if len(surface.regions) != 2 {
		t.Fatalf("second start created regions: %d", len(surface.regions))
	}
}
