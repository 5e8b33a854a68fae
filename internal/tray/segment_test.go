package tray

import "testing"

func TestRegistry_Validation(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&Segment{Name: "", Fetch: func() string { return "" }}); err == nil {
		t.Fatalf("empty name accepted")
	}
	if err := reg.Register(&Segment{Name: "x"}); err == nil {
		t.Fatalf("missing fetch accepted")
	}
	if err := reg.Register(&Segment{Name: "x", Fetch: func() string { return "" }}); err != nil {
		t.Fatalf("valid segment rejected: %v", err)
	}
	if err := reg.Register(&Segment{Name: "x", Fetch: func() string { return "" }}); err == nil {
		t.Fatalf("duplicate accepted")
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		if err := reg.Register(&Segment{Name: name, Fetch: func() string { return "" }}); err != nil {
			t.Fatalf("register: %v", err)
		}
	}
	names := reg.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("names = %v", names)
	}
}
