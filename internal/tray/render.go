package tray

import (
	"fmt"
	"strconv"
	"strings"

	"trayline/internal/system"
)

// ErrText is the literal shown when a render fails. The previous good frame
// stays cached, so the placeholder disappears on the next successful tick.
const ErrText = "[trayline error]"

// Pipeline turns the current segment selection into one width-safe display
// string. BuildInfo is total: it never panics and never returns an error.
type Pipeline struct {
	res     *Resolver
	reg     *Registry
	widths  WidthService
	surface Surface

	Separator    string
	RightPadding int

	// last successful render and its measured text width
	cached      string
	cachedWidth int
}

func NewPipeline(res *Resolver, reg *Registry, widths WidthService, surface Surface) *Pipeline {
	return &Pipeline{
		res:       res,
		reg:       reg,
		widths:    widths,
		surface:   surface,
		Separator: " ",
	}
}

// BuildInfo composes the status text for the current context. Without a live
// display target it returns the cached result unchanged; on any failure in a
// segment it returns ErrText and leaves the cache alone.
func (p *Pipeline) BuildInfo() string {
	if p.surface == nil || p.surface.AvailableWidth() <= 0 {
		return p.cached
	}
	text, width, err := p.compose()
	if err != nil {
		system.Logger.Warn("status render failed", "err", err)
		return ErrText
	}
	p.cached = text
	p.cachedWidth = width
	return text
}

// InfoWidth returns the measured text width of the last successful render,
// excluding the alignment marker and right padding.
func (p *Pipeline) InfoWidth() int { return p.cachedWidth }

// MeasureWidth measures arbitrary text with the pipeline's width service.
func (p *Pipeline) MeasureWidth(text string) int {
	return DisplayWidth(p.widths, text)
}

// compose runs every active segment and joins the non-empty outputs. Segment
// fetch code is third-party; a panic there is recovered and reported as the
// compose error.
func (p *Pipeline) compose() (text string, width int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("segment fetch panicked: %v", r)
		}
	}()

	// collected back-to-front, reversed before joining
	var parts []string
	for _, name := range p.res.Current() {
		seg, ok := p.reg.Lookup(name)
		if !ok {
			continue
		}
		if !seg.Activated {
			seg.Activated = true
			if seg.Setup != nil {
				seg.Setup()
			}
		}
		if seg.Refresh != nil {
			seg.Refresh()
		}
		if out := seg.Fetch(); out != "" {
			parts = append([]string{out}, parts...)
		}
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	joined := strings.Join(parts, p.Separator)

	width = DisplayWidth(p.widths, joined)
	reserve := width + p.RightPadding
	return alignMarker(p.surface.AvailableWidth(), reserve) + joined, width, nil
}

// alignMarker prefixes the escape sequence that parks the cursor so the text
// that follows fills the rightmost reserve columns of an avail-column row.
func alignMarker(avail, reserve int) string {
	col := avail - reserve
	if col <= 0 {
		return "\r"
	}
	return "\r\x1b[" + strconv.Itoa(col) + "C"
}
