package trayconf

import (
	"testing"
	"time"

	tu "trayline/internal/testutil"
	"trayline/internal/tray"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback

	f, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(f.Defaults.Long) == 0 || len(f.Defaults.Short) == 0 {
		t.Fatalf("defaults empty: %+v", f.Defaults)
	}
	if f.IntervalMS <= 0 {
		t.Fatalf("no default interval: %d", f.IntervalMS)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	f := Default()
	f.Separator = " · "
	f.RightPadding = 2
	f.Rules["text"] = RuleSpec{
		Long: []Entry{{Segment: "date", Position: 1}},
	}
	if err := Save(f); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Separator != " · " || got.RightPadding != 2 {
		t.Fatalf("tuning lost: %+v", got)
	}
	rs, ok := got.Rules["text"]
	if !ok || len(rs.Long) != 1 || rs.Long[0].Segment != "date" || rs.Long[0].Position != 1 {
		t.Fatalf("rule lost: %+v", got.Rules)
	}
}

func TestEngine_Conversion(t *testing.T) {
	f := Default()
	f.IntervalMS = 250
	f.ShortWidth = 100
	cfg := f.Engine()
	if cfg.Interval != 250*time.Millisecond {
		t.Fatalf("interval = %v", cfg.Interval)
	}
	if cfg.ShortWidth != 100 {
		t.Fatalf("short width = %d", cfg.ShortWidth)
	}
	if len(cfg.Defaults[tray.StyleLong]) != len(f.Defaults.Long) {
		t.Fatalf("long defaults lost")
	}
	rule, ok := cfg.Rules["prog"]
	if !ok || len(rule.Both) == 0 {
		t.Fatalf("prog rule lost: %+v", cfg.Rules)
	}
}

func TestEngine_ZeroValuesGetDefaults(t *testing.T) {
	cfg := File{}.Engine()
	if cfg.Separator != " " {
		t.Fatalf("separator = %q", cfg.Separator)
	}
	if cfg.Interval != tray.DefaultInterval {
		t.Fatalf("interval = %v", cfg.Interval)
	}
	if cfg.ShortWidth != tray.DefaultShortWidth {
		t.Fatalf("short width = %d", cfg.ShortWidth)
	}
}

func TestSchema_Marshals(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("schema marshal: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("empty schema")
	}
}
