package ui

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"trayline/internal/tray"
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	b := &strings.Builder{}
	b.WriteString("\n  trayline — status line host\n\n")

	// mode switcher
	b.WriteString("  mode: ")
	cur := m.eng.Resolver.Mode()
	for _, mode := range demoModes {
		style := modeOff()
		if mode == cur {
			style = modeOn()
		}
		b.WriteString(zone.Mark("mode."+mode, style.Render(mode)))
		b.WriteString(" ")
	}
	b.WriteString(dimStyle().Render("(tab or click to switch)"))
	b.WriteString("\n\n")

	// segment chips: click to toggle, active ones highlighted
	active := make(map[string]bool)
	for _, name := range m.eng.Resolver.Current() {
		active[name] = true
	}
	b.WriteString("  segments: ")
	for _, name := range m.eng.Resolver.ToggleUniverse() {
		style := chipOff()
		if active[name] {
			style = chipOn()
		}
		b.WriteString(zone.Mark("seg."+name, style.Render(name)))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle().Render("  click a chip to force it in or out · r resets toggles"))
	b.WriteString("\n\n")

	// filler so the bars sit near the bottom
	used := 11
	if m.ti.Focused() {
		used++
	}
	for i := 0; i < m.height-used; i++ {
		b.WriteString("\n")
	}

	// echo area shared with the message region
	b.WriteString(echoStyle().Render(placeRegion(" "+m.echo, m.eng.Loop.RegionText(tray.RegionMessage), m.width)))
	b.WriteString("\n")

	// always-visible placeholder bar
	b.WriteString(barStyle().Render(placeRegion("", m.eng.Loop.RegionText(tray.RegionPlaceholder), m.width)))
	b.WriteString("\n")

	if m.ti.Focused() {
		b.WriteString(m.ti.View())
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle().Render("  : message · q quit"))
		b.WriteString("\n")
	}

	return zone.Scan(b.String())
}
