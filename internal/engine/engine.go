// Package engine assembles the status line core from a loaded configuration:
// registry, compiled rule table, resolver, pipeline and refresh loop.
package engine

import (
	"trayline/internal/segments"
	"trayline/internal/tray"
	"trayline/internal/trayconf"
)

// Engine bundles the wired core components for one host session.
type Engine struct {
	Registry *tray.Registry
	Resolver *tray.Resolver
	Pipeline *tray.Pipeline
	Loop     *tray.Loop
}

// New builds an engine from a config file. surface and sched may be nil for
// headless use (the CLI inspects the resolver without rendering); in that
// case Pipeline and Loop stay nil.
func New(f trayconf.File, surface tray.Surface, sched tray.Scheduler) (*Engine, error) {
	e := &Engine{Registry: tray.NewRegistry()}

	// the mode segment reads the resolver, which does not exist yet while
	// builtins register; route through the engine instead
	if err := segments.RegisterBuiltin(e.Registry, func() string {
		if e.Resolver == nil {
			return ""
		}
		return e.Resolver.Mode()
	}); err != nil {
		return nil, err
	}

	cfg := f.Engine()
	table := tray.Compile(cfg, e.Registry)

	var width func() int
	if surface != nil {
		width = surface.AvailableWidth
	}
	e.Resolver = tray.NewResolver(table, e.Registry, width)
	e.Resolver.SetMode(f.ActiveMode)
	applyStyle(e.Resolver, cfg.ShortWidth)

	if surface != nil {
		e.Pipeline = tray.NewPipeline(e.Resolver, e.Registry, tray.TerminalWidth{}, surface)
		e.Pipeline.Separator = cfg.Separator
		e.Pipeline.RightPadding = cfg.RightPadding
		if sched != nil {
			e.Loop = tray.NewLoop(e.Pipeline, surface, sched)
			e.Loop.Interval = cfg.Interval
		}
	}
	return e, nil
}

// Reload recompiles the rule table and refreshes the tuning knobs from a
// freshly loaded config. Session toggles survive a reload.
func (e *Engine) Reload(f trayconf.File) {
	cfg := f.Engine()
	e.Resolver.SetTable(tray.Compile(cfg, e.Registry))
	applyStyle(e.Resolver, cfg.ShortWidth)
	if e.Pipeline != nil {
		e.Pipeline.Separator = cfg.Separator
		e.Pipeline.RightPadding = cfg.RightPadding
	}
	if e.Loop != nil {
		e.Loop.Interval = cfg.Interval
	}
}

func applyStyle(res *tray.Resolver, shortWidth int) {
	res.StyleFor = func(w int) tray.Style {
		if w > 0 && w < shortWidth {
			return tray.StyleShort
		}
		return tray.StyleLong
	}
}
