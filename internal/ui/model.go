package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trayline/internal/engine"
	"trayline/internal/system"
	"trayline/internal/tray"
	"trayline/internal/trayconf"
)

// demoModes is the mode switcher's cycle; "prog/go" exercises the
// hierarchical rule fallback against a "prog" rule.
var demoModes = []string{"text", "prog", "prog/go"}

// Model for the demo host: a minimal editor surface whose message and idle
// areas are painted by the real refresh loop.
type model struct {
	surface *hostSurface
	sched   *hostSched
	eng     *engine.Engine

	cfgPath string

	width    int
	height   int
	quitting bool

	// prompt
	ti textinput.Model

	// transient message state
	echo      string
	echoUntil time.Time

	// config watcher
	watchCh   <-chan struct{}
	watchStop func()
}

func initialModel(f trayconf.File) model {
	surface := &hostSurface{}
	sched := &hostSched{}
	eng, err := engine.New(f, surface, sched)
	if err != nil {
		// only reachable through a broken builtin registration
		system.Logger.Fatal("engine init", "err", err)
	}

	ti := textinput.New()
	ti.Prompt = " : "
	ti.Placeholder = "type a message, Enter to echo it"
	ti.CharLimit = 256
	ti.Blur()

	m := model{
		surface: surface,
		sched:   sched,
		eng:     eng,
		ti:      ti,
	}
	if p, perr := trayconf.FilePath(); perr == nil {
		m.cfgPath = p
	}
	m.eng.Loop.Start()
	return m
}

// InitialModel is the public constructor for app.
func InitialModel(f trayconf.File) tea.Model { return initialModel(f) }

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.eng.Loop.Interval), startWatchCmd(m.cfgPath))
}

func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = tray.DefaultInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
