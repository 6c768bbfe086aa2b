package catalog

import (
	"fmt"
	"strings"
)

// Catalog is an immutable, read-only table of creative interests.
// It is constructed once at startup and shared without locking.
type Catalog struct {
	entries []Entry
	byName  map[string]*Entry
}

// New builds a Catalog from entries, preserving definition order.
// Entry names must be non-empty and unique after normalization.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byName:  make(map[string]*Entry, len(entries)),
	}
	copy(c.entries, entries)

	for i := range c.entries {
		name := Normalize(c.entries[i].Name)
		if name == "" {
			return nil, fmt.Errorf("entry %d: empty name", i)
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("duplicate interest %q", name)
		}
		c.entries[i].Name = name
		c.byName[name] = &c.entries[i]
	}
	return c, nil
}

// Normalize applies the canonical input normalization: trim and lowercase.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Resolve looks up a recommendation by exact interest name.
// Input is normalized first; related terms do not participate — broad
// matching is for discovery (the ranker), exact matching is for commitment.
// The second return is false when no entry matches.
func (c *Catalog) Resolve(interest string) (Recommendation, bool) {
	e, ok := c.byName[Normalize(interest)]
	if !ok {
		return Recommendation{}, false
	}
	return Recommendation{Course: e.Course, Exercise: e.Exercise}, true
}

// Entries returns all entries in definition order.
// Callers must not mutate the returned slice.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Names returns all interest names in definition order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i := range c.entries {
		names[i] = c.entries[i].Name
	}
	return names
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
