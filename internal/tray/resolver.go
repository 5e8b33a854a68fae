package tray

import "strings"

// Toggles holds the session's forced include/exclude overrides, in the order
// they were made. Re-toggling a segment moves it to the end of the order.
type Toggles struct {
	order []string
	state map[string]bool
}

func NewToggles() *Toggles {
	return &Toggles{state: make(map[string]bool)}
}

// Set forces a segment in (include true) or out (include false).
func (t *Toggles) Set(name string, include bool) {
	if _, exists := t.state[name]; exists {
		// keep the most recent toggle last in order
		for i, n := range t.order {
			if n == name {
				t.order = append(t.order[:i], t.order[i+1:]...)
				break
			}
		}
	}
	t.state[name] = include
	t.order = append(t.order, name)
}

// Clear drops the override for one segment, if any.
func (t *Toggles) Clear(name string) {
	if _, exists := t.state[name]; !exists {
		return
	}
	delete(t.state, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Reset drops every override.
func (t *Toggles) Reset() {
	t.order = nil
	t.state = make(map[string]bool)
}

// Names returns the override keys in toggle order.
func (t *Toggles) Names() []string {
	return append([]string(nil), t.order...)
}

// Get reports the override for name, if one exists.
func (t *Toggles) Get(name string) (include bool, ok bool) {
	include, ok = t.state[name]
	return
}

// Resolver answers "which segments, in which order, right now". It combines
// the compiled rule table, the active mode, the width-driven style choice and
// the session toggles.
type Resolver struct {
	table   *Table
	reg     *Registry
	toggles *Toggles

	mode  string
	width func() int

	// StyleFor maps the live display width to a style. The default picks
	// short below DefaultShortWidth columns.
	StyleFor func(width int) Style
}

// NewResolver wires a resolver. width supplies the live display width for
// style selection; it may be nil, in which case the long style is used.
func NewResolver(table *Table, reg *Registry, width func() int) *Resolver {
	return &Resolver{
		table:   table,
		reg:     reg,
		toggles: NewToggles(),
		width:   width,
		StyleFor: func(w int) Style {
			if w > 0 && w < DefaultShortWidth {
				return StyleShort
			}
			return StyleLong
		},
	}
}

// SetTable swaps in a freshly compiled table (config reload).
func (r *Resolver) SetTable(t *Table) { r.table = t }

// SetMode records the active editing mode.
func (r *Resolver) SetMode(mode string) { r.mode = mode }

// Mode returns the active editing mode.
func (r *Resolver) Mode() string { return r.mode }

// Toggles exposes the session overrides for the toggle command.
func (r *Resolver) Toggles() *Toggles { return r.toggles }

// ActiveStyle resolves the style for the current display width.
func (r *Resolver) ActiveStyle() Style {
	if r.width == nil {
		return StyleLong
	}
	return r.StyleFor(r.width())
}

// Selected returns the merged segment list for a mode and style. Mode
// identifiers are hierarchical and slash-delimited; the most specific rule
// wins ("prog/go" before "prog"). With no matching rule the style's default
// list applies.
func (r *Resolver) Selected(mode string, style Style) []string {
	for m := mode; m != ""; {
		if mr, ok := r.table.Merged[m]; ok {
			if style == StyleShort {
				return append([]string(nil), mr.Short...)
			}
			return append([]string(nil), mr.Long...)
		}
		i := strings.LastIndex(m, "/")
		if i < 0 {
			break
		}
		m = m[:i]
	}
	return append([]string(nil), r.table.Defaults[style]...)
}

// Current returns the segment list to render now: the selection for the
// active mode and style with the session toggles applied. Toggled-out
// segments are removed in place; toggled-in segments append in toggle order.
func (r *Resolver) Current() []string {
	base := r.Selected(r.mode, r.ActiveStyle())
	out := make([]string, 0, len(base))
	present := make(map[string]bool, len(base))
	for _, name := range base {
		// overridden names leave the base walk either way: excludes drop
		// out, includes re-append below in toggle order, so a segment
		// toggled off and back on lands at the end rather than its old slot
		if _, overridden := r.toggles.Get(name); overridden {
			continue
		}
		out = append(out, name)
		present[name] = true
	}
	for _, name := range r.toggles.order {
		if r.toggles.state[name] && !present[name] && r.reg.Has(name) {
			out = append(out, name)
			present[name] = true
		}
	}
	return out
}

// ToggleUniverse lists every segment the toggle command may act on: the
// overridden ones first (in toggle order), then the currently shown ones,
// then every other registered segment.
func (r *Resolver) ToggleUniverse() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, name := range r.toggles.order {
		add(name)
	}
	for _, name := range r.Current() {
		add(name)
	}
	for _, name := range r.reg.Names() {
		add(name)
	}
	return out
}
