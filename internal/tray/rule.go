package tray

import (
	"time"

	"trayline/internal/system"
)

// Style selects between the roomy and the compact segment layouts.
type Style string

const (
	StyleLong  Style = "long"
	StyleShort Style = "short"
)

// DefaultShortWidth is the column threshold below which the short style is
// chosen by the default predicate.
const DefaultShortWidth = 120

// RuleEntry places one segment for a mode. Position 0 removes the segment
// from the style's default list; position >= 1 inserts it at that rank.
type RuleEntry struct {
	Name     string
	Position int
}

// Rule is one mode's overrides. Both applies to either style; Long and Short
// win over Both for the same segment name.
type Rule struct {
	Both  []RuleEntry
	Long  []RuleEntry
	Short []RuleEntry
}

// MergedRule is the per-mode result of merging a rule against the defaults.
type MergedRule struct {
	Long  []string
	Short []string
}

// EngineConfig is the full, explicit configuration the engine runs from.
// It is rebuilt wholesale on reload; nothing reads ambient globals.
type EngineConfig struct {
	Defaults     map[Style][]string
	Rules        map[string]Rule
	Separator    string
	RightPadding int
	Interval     time.Duration
	ShortWidth   int
}

// Table is the compiled per-mode segment layout plus the validated defaults.
type Table struct {
	Merged   map[string]MergedRule
	Defaults map[Style][]string
}

// Merge combines a rule with the style's default segment list into one
// ordered, duplicate-free list. valid filters out unknown segment names.
//
// Position 0 entries remove their segment from the defaults; position >= 1
// entries claim that exact rank. Ranks are filled in increasing order, the
// defaults (minus removed and claimed names) serving as fillers for
// unclaimed ranks; leftovers append after the last claimed rank. When two
// entries declare the same rank the first-declared keeps it and the later
// one shifts to the next free rank.
func Merge(rule Rule, style Style, defaults []string, valid func(string) bool) []string {
	styled := rule.Long
	if style == StyleShort {
		styled = rule.Short
	}

	// combine both + style entries; a style entry overrides the position a
	// both entry gave the same segment
	entries := make([]RuleEntry, 0, len(rule.Both)+len(styled))
	at := make(map[string]int)
	for _, e := range append(append([]RuleEntry{}, rule.Both...), styled...) {
		if !valid(e.Name) {
			system.Logger.Warn("statusline rule references unknown segment", "segment", e.Name)
			continue
		}
		if i, seen := at[e.Name]; seen {
			entries[i].Position = e.Position
			continue
		}
		at[e.Name] = len(entries)
		entries = append(entries, e)
	}

	removed := make(map[string]bool)
	var inserts []RuleEntry
	for _, e := range entries {
		if e.Position == 0 {
			removed[e.Name] = true
		} else {
			inserts = append(inserts, e)
		}
	}

	// duplicate ranks: first-declared wins, later entries shift upward
	byRank := make(map[int]string, len(inserts))
	claimed := make(map[string]bool, len(inserts))
	maxRank := 0
	for _, e := range inserts {
		p := e.Position
		for byRank[p] != "" {
			p++
		}
		byRank[p] = e.Name
		claimed[e.Name] = true
		if p > maxRank {
			maxRank = p
		}
	}

	// defaults minus removals and claimed names, original order, deduped
	var remainder []string
	seen := make(map[string]bool)
	for _, name := range defaults {
		if removed[name] || claimed[name] || seen[name] {
			continue
		}
		seen[name] = true
		remainder = append(remainder, name)
	}

	out := make([]string, 0, len(inserts)+len(remainder))
	pending := len(inserts)
	ri := 0
	for rank := 1; pending > 0 || ri < len(remainder); rank++ {
		if name := byRank[rank]; name != "" {
			out = append(out, name)
			pending--
			continue
		}
		if ri < len(remainder) {
			out = append(out, remainder[ri])
			ri++
		}
		// no filler left: skip forward to the next declared rank
	}
	return out
}

// Compile merges every configured rule against the registry once per config
// (re)load. Unknown segments in the defaults are dropped the same way rule
// entries are.
func Compile(cfg EngineConfig, reg *Registry) *Table {
	t := &Table{
		Merged:   make(map[string]MergedRule, len(cfg.Rules)),
		Defaults: make(map[Style][]string, 2),
	}
	for _, style := range []Style{StyleLong, StyleShort} {
		var kept []string
		seen := make(map[string]bool)
		for _, name := range cfg.Defaults[style] {
			if seen[name] {
				continue
			}
			if !reg.Has(name) {
				system.Logger.Warn("default segment list references unknown segment", "segment", name, "style", style)
				continue
			}
			seen[name] = true
			kept = append(kept, name)
		}
		t.Defaults[style] = kept
	}
	for mode, rule := range cfg.Rules {
		t.Merged[mode] = MergedRule{
			Long:  Merge(rule, StyleLong, t.Defaults[StyleLong], reg.Has),
			Short: Merge(rule, StyleShort, t.Defaults[StyleShort], reg.Has),
		}
	}
	return t
}
