package trayconf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"trayline/internal/tray"
)

// Entry places one segment inside a rule.
type Entry struct {
	Segment  string `json:"segment"`
	Position int    `json:"position" jsonschema:"minimum=0,description=0 removes the segment from the defaults; 1 and up inserts at that rank"`
}

// RuleSpec is the per-mode override block. Entries under long/short win over
// both for the same segment.
type RuleSpec struct {
	Both  []Entry `json:"both,omitempty"`
	Long  []Entry `json:"long,omitempty"`
	Short []Entry `json:"short,omitempty"`
}

// Defaults carries the global fallback segment order per style.
type Defaults struct {
	Long  []string `json:"long"`
	Short []string `json:"short"`
}

// File is the on-disk shape of tray.json.
type File struct {
	Separator    string              `json:"separator,omitempty"`
	RightPadding int                 `json:"right_padding,omitempty"`
	IntervalMS   int                 `json:"interval_ms,omitempty" jsonschema:"minimum=50"`
	ShortWidth   int                 `json:"short_width,omitempty" jsonschema:"description=columns below which the short style is used"`
	ActiveMode   string              `json:"active_mode,omitempty"`
	Defaults     Defaults            `json:"default_segments"`
	Rules        map[string]RuleSpec `json:"rules,omitempty"`
}

// Default returns the built-in configuration used when tray.json is absent.
func Default() File {
	return File{
		Separator:  " ",
		IntervalMS: 500,
		ShortWidth: tray.DefaultShortWidth,
		ActiveMode: "text",
		Defaults: Defaults{
			Long:  []string{"mode", "path", "git", "user", "date", "clock"},
			Short: []string{"mode", "git", "clock"},
		},
		Rules: map[string]RuleSpec{
			"prog": {
				Both: []Entry{{Segment: "user", Position: 0}, {Segment: "spinner", Position: 1}},
			},
		},
	}
}

// Load reads tray.json. A missing file yields the built-in defaults, not an
// error.
func Load() (File, error) {
	p, err := FilePath()
	if err != nil {
		return File{}, err
	}
	return LoadFrom(p)
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return File{}, err
	}
	f := Default()
	if err := json.Unmarshal(b, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Save writes the config to tray.json, creating the directory if needed.
func Save(f File) error {
	p, err := FilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Engine converts the file shape into the explicit EngineConfig the core
// consumes.
func (f File) Engine() tray.EngineConfig {
	cfg := tray.EngineConfig{
		Defaults: map[tray.Style][]string{
			tray.StyleLong:  append([]string(nil), f.Defaults.Long...),
			tray.StyleShort: append([]string(nil), f.Defaults.Short...),
		},
		Rules:        make(map[string]tray.Rule, len(f.Rules)),
		Separator:    f.Separator,
		RightPadding: f.RightPadding,
		Interval:     time.Duration(f.IntervalMS) * time.Millisecond,
		ShortWidth:   f.ShortWidth,
	}
	if cfg.Separator == "" {
		cfg.Separator = " "
	}
	if cfg.Interval <= 0 {
		cfg.Interval = tray.DefaultInterval
	}
	if cfg.ShortWidth <= 0 {
		cfg.ShortWidth = tray.DefaultShortWidth
	}
	for mode, rs := range f.Rules {
		cfg.Rules[mode] = tray.Rule{
			Both:  entries(rs.Both),
			Long:  entries(rs.Long),
			Short: entries(rs.Short),
		}
	}
	return cfg
}

func entries(in []Entry) []tray.RuleEntry {
	out := make([]tray.RuleEntry, 0, len(in))
	for _, e := range in {
		out = append(out, tray.RuleEntry{Name: e.Segment, Position: e.Position})
	}
	return out
}
