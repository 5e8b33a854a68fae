package tray

import (
	xansi "github.com/charmbracelet/x/ansi"
	runewidth "github.com/mattn/go-runewidth"
)

// WidthService measures how many display columns a rendered string occupies.
// Graphical hosts with proportional fonts answer in pixels; character-cell
// hosts answer per rune. The asymmetry matters: with a proportional font the
// rune count is a poor proxy for the pixel layout.
type WidthService interface {
	MeasurePixelWidth(text string) int
	CellPixelWidth() int
	CellWidth(r rune) int
	IsGraphicalDisplay() bool
}

// DisplayWidth measures text against ws: pixel width rounded up to whole
// cells on a graphical display, summed per-rune cell widths otherwise.
// ANSI escape sequences never count toward the width.
func DisplayWidth(ws WidthService, text string) int {
	if ws.IsGraphicalDisplay() {
		cell := ws.CellPixelWidth()
		if cell <= 0 {
			cell = 1
		}
		px := ws.MeasurePixelWidth(text)
		return (px + cell - 1) / cell
	}
	w := 0
	for _, r := range xansi.Strip(text) {
		w += ws.CellWidth(r)
	}
	return w
}

// TerminalWidth is the character-cell WidthService for ordinary terminals.
// Wide (East Asian) runes count as two columns.
type TerminalWidth struct{}

func (TerminalWidth) MeasurePixelWidth(text string) int { return 0 }
func (TerminalWidth) CellPixelWidth() int               { return 1 }
func (TerminalWidth) CellWidth(r rune) int              { return runewidth.RuneWidth(r) }
func (TerminalWidth) IsGraphicalDisplay() bool          { return false }
