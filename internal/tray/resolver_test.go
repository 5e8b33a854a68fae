package tray

import (
	"reflect"
	"testing"
)

func testRegistry(t *testing.T, names ...string) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, name := range names {
		name := name
		if err := reg.Register(&Segment{Name: name, Fetch: func() string { return name }}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	return reg
}

func testResolver(t *testing.T, width int) *Resolver {
	t.Helper()
	reg := testRegistry(t, "clock", "git", "path", "user")
	cfg := EngineConfig{
		Defaults: map[Style][]string{
			StyleLong:  {"clock", "git", "path"},
			StyleShort: {"clock"},
		},
		Rules: map[string]Rule{
			"prog": {Both: []RuleEntry{{Name: "user", Position: 1}}},
		},
	}
	return NewResolver(Compile(cfg, reg), reg, func() int { return width })
}

func TestSelected_ExactAndFallback(t *testing.T) {
	r := testResolver(t, 200)
	if got := r.Selected("prog", StyleLong); !reflect.DeepEqual(got, []string{"user", "clock", "git", "path"}) {
		t.Fatalf("prog long = %v", got)
	}
	if got := r.Selected("text", StyleLong); !reflect.DeepEqual(got, []string{"clock", "git", "path"}) {
		t.Fatalf("text long should fall back to defaults, got %v", got)
	}
}

func TestSelected_ModeHierarchy(t *testing.T) {
	r := testResolver(t, 200)
	// prog/go has no rule of its own; the prog rule covers it
	if got := r.Selected("prog/go", StyleLong); !reflect.DeepEqual(got, []string{"user", "clock", "git", "path"}) {
		t.Fatalf("prog/go long = %v", got)
	}
}

func TestActiveStyle_WidthPredicate(t *testing.T) {
	if got := testResolver(t, 80).ActiveStyle(); got != StyleShort {
		t.Fatalf("80 cols should be short, got %s", got)
	}
	if got := testResolver(t, 200).ActiveStyle(); got != StyleLong {
		t.Fatalf("200 cols should be long, got %s", got)
	}
}

func TestCurrent_Idempotent(t *testing.T) {
	r := testResolver(t, 200)
	r.SetMode("prog")
	a := r.Current()
	b := r.Current()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("current not idempotent: %v vs %v", a, b)
	}
}

func TestCurrent_ToggleOffThenOnAppendsAtEnd(t *testing.T) {
	r := testResolver(t, 200)
	r.SetMode("text")
	r.Toggles().Set("clock", false)
	if got := r.Current(); !reflect.DeepEqual(got, []string{"git", "path"}) {
		t.Fatalf("after toggle off: %v", got)
	}
	r.Toggles().Set("clock", true)
	if got := r.Current(); !reflect.DeepEqual(got, []string{"git", "path", "clock"}) {
		t.Fatalf("after toggle back on: %v", got)
	}
}

func TestCurrent_ToggleInOrder(t *testing.T) {
	r := testResolver(t, 80) // short: only clock
	r.SetMode("text")
	r.Toggles().Set("user", true)
	r.Toggles().Set("git", true)
	if got := r.Current(); !reflect.DeepEqual(got, []string{"clock", "user", "git"}) {
		t.Fatalf("toggled-in order wrong: %v", got)
	}
}

func TestCurrent_UnknownToggleIgnored(t *testing.T) {
	r := testResolver(t, 200)
	r.SetMode("text")
	r.Toggles().Set("ghost", true)
	if got := r.Current(); !reflect.DeepEqual(got, []string{"clock", "git", "path"}) {
		t.Fatalf("unknown toggle leaked: %v", got)
	}
}

func TestToggles_Reset(t *testing.T) {
	r := testResolver(t, 200)
	r.SetMode("text")
	r.Toggles().Set("clock", false)
	r.Toggles().Reset()
	if got := r.Current(); !reflect.DeepEqual(got, []string{"clock", "git", "path"}) {
		t.Fatalf("reset did not restore: %v", got)
	}
}

func TestToggleUniverse_Order(t *testing.T) {
	r := testResolver(t, 200)
	r.SetMode("text")
	r.Toggles().Set("user", true)
	got := r.ToggleUniverse()
	// toggled first, then current, then the rest; duplicate-free
	if got[0] != "user" {
		t.Fatalf("toggled segment not first: %v", got)
	}
	seen := make(map[string]bool)
	for _, n := range got {
		if seen[n] {
			t.Fatalf("duplicate %q in universe %v", n, got)
		}
		seen[n] = true
	}
	for _, want := range []string{"clock", "git", "path", "user"} {
		if !seen[want] {
			t.Fatalf("universe missing %q: %v", want, got)
		}
	}
}
