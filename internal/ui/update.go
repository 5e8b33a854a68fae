package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"trayline/internal/system"
	"trayline/internal/trayconf"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// mode switcher chips
		for _, mode := range demoModes {
			if zone.Get("mode." + mode).InBounds(msg) {
				m.eng.Resolver.SetMode(mode)
				m.sched.fireResize()
				return m, nil
			}
		}
		// segment chips: click flips the toggle override
		for _, name := range m.eng.Resolver.ToggleUniverse() {
			if zone.Get("seg." + name).InBounds(msg) {
				m.clickSegment(name)
				m.sched.fireResize()
				return m, nil
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.surface.width = msg.Width
		tiw := msg.Width - 5
		if tiw < 10 {
			tiw = 10
		}
		m.ti.Width = tiw
		m.sched.fireResize()
		return m, nil

	case tickMsg:
		if m.echo != "" && time.Now().After(m.echoUntil) {
			m.echo = ""
		}
		m.sched.fireTick()
		return m, tickCmd(m.eng.Loop.Interval)

	case watchStartedMsg:
		m.watchCh = msg.ch
		m.watchStop = msg.stop
		return m, watchSubscribeCmd(m.watchCh)

	case fileChangedMsg:
		f, err := trayconf.LoadFrom(m.cfgPath)
		if err != nil {
			system.Logger.Warn("config reload failed", "err", err)
		} else {
			m.eng.Reload(f)
			m.sched.fireResize()
		}
		return m, watchSubscribeCmd(m.watchCh)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.ti.Focused() {
			switch msg.String() {
			case "esc":
				m.ti.Blur()
				m.surface.prompt = false
				m.ti.SetValue("")
				return m, nil
			case "enter":
				text := m.ti.Value()
				m.ti.Blur()
				m.surface.prompt = false
				m.ti.SetValue("")
				if text != "" {
					m.say(text)
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.ti, cmd = m.ti.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q":
			return m.quit()
		case ":", "/":
			m.ti.Focus()
			m.surface.prompt = true
			return m, nil
		case "tab":
			m.cycleMode()
			m.sched.fireResize()
			return m, nil
		case "r":
			m.eng.Resolver.Toggles().Reset()
			m.sched.fireResize()
			return m, nil
		}
		return m, nil
	}
	return m, nil
}

// say routes a transient message the way a host editor would: the loop's
// before-message observer runs first, then the message lands in the echo
// area for a few seconds.
func (m *model) say(text string) {
	m.sched.fireBeforeMessage(text)
	m.echo = text
	m.echoUntil = time.Now().Add(4 * time.Second)
}

func (m *model) cycleMode() {
	cur := m.eng.Resolver.Mode()
	for i, mode := range demoModes {
		if mode == cur {
			m.eng.Resolver.SetMode(demoModes[(i+1)%len(demoModes)])
			return
		}
	}
	m.eng.Resolver.SetMode(demoModes[0])
}

// clickSegment flips one segment: shown segments get a force-exclude,
// hidden ones a force-include. A second click clears the override again.
func (m *model) clickSegment(name string) {
	tg := m.eng.Resolver.Toggles()
	shown := false
	for _, n := range m.eng.Resolver.Current() {
		if n == name {
			shown = true
			break
		}
	}
	if _, ok := tg.Get(name); ok {
		tg.Clear(name)
		return
	}
	tg.Set(name, !shown)
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.eng.Loop.Stop()
	if m.watchStop != nil {
		m.watchStop()
	}
	return m, tea.Quit
}
