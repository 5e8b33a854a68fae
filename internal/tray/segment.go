package tray

import (
	"errors"
	"fmt"
	"sort"
)

// Segment is one named provider of status text.
//
// Fetch is required and returns the current display text (empty string means
// "nothing to show right now"). Setup, when present, runs exactly once before
// the first fetch. Refresh, when present, runs before every fetch once the
// segment has been activated.
type Segment struct {
	Name    string
	Setup   func()
	Fetch   func() string
	Refresh func()

	// Activated flips to true on first use and is never reset by the engine.
	Activated bool
}

// Registry holds every known segment by name. Segments are validated once at
// registration; lookups afterwards are cheap.
type Registry struct {
	byName map[string]*Segment
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Segment)}
}

// Register adds a segment to the registry. A segment must carry a non-empty
// name and a Fetch function; duplicate names are rejected.
func (r *Registry) Register(s *Segment) error {
	if s == nil || s.Name == "" {
		return errors.New("segment needs a name")
	}
	if s.Fetch == nil {
		return fmt.Errorf("segment %q has no fetch function", s.Name)
	}
	if _, exists := r.byName[s.Name]; exists {
		return fmt.Errorf("segment %q already registered", s.Name)
	}
	r.byName[s.Name] = s
	return nil
}

// Lookup returns the segment registered under name.
func (r *Registry) Lookup(name string) (*Segment, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Has reports whether name is a registered segment.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns all registered segment names, sorted for stable output.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
