package catalog

import (
	"strings"
	"testing"
)

func TestResolve_EveryDefaultEntry(t *testing.T) {
	c := Default()
	for _, e := range c.Entries() {
		rec, ok := c.Resolve(e.Name)
		if !ok {
			t.Errorf("Resolve(%q) not found", e.Name)
			continue
		}
		if rec.Course != e.Course || rec.Exercise != e.Exercise {
			t.Errorf("Resolve(%q) = %+v, want {%q %q}", e.Name, rec, e.Course, e.Exercise)
		}
	}
}

func TestResolve_NormalizesInput(t *testing.T) {
	c := Default()
	want, ok := c.Resolve("illustration")
	if !ok {
		t.Fatal("illustration missing from default catalog")
	}

	tests := []string{
		"  illustration  ",
		"ILLUSTRATION",
		" Illustration\t",
	}
	for _, input := range tests {
		got, ok := c.Resolve(input)
		if !ok {
			t.Errorf("Resolve(%q) not found", input)
			continue
		}
		if got != want {
			t.Errorf("Resolve(%q) = %+v, want %+v", input, got, want)
		}
	}
}

func TestResolve_Miss(t *testing.T) {
	c := Default()
	if _, ok := c.Resolve("not-a-real-interest"); ok {
		t.Error("expected miss for unknown interest")
	}
	if _, ok := c.Resolve(""); ok {
		t.Error("expected miss for empty interest")
	}
}

func TestResolve_IgnoresRelatedTerms(t *testing.T) {
	c := Default()
	// "wireframes" is a related term of "ux design" but not a canonical name.
	if _, ok := c.Resolve("wireframes"); ok {
		t.Error("related terms must not resolve")
	}
}

func TestNew_RejectsDuplicates(t *testing.T) {
	entries := []Entry{
		{Name: "painting", Course: "a", Exercise: "b"},
		{Name: " Painting ", Course: "c", Exercise: "d"},
	}
	if _, err := New(entries); err == nil {
		t.Error("expected duplicate-name error")
	}
}

func TestNew_RejectsEmptyName(t *testing.T) {
	if _, err := New([]Entry{{Name: "  ", Course: "a", Exercise: "b"}}); err == nil {
		t.Error("expected empty-name error")
	}
}

func TestDefault_NamesAreCanonical(t *testing.T) {
	c := Default()
	for _, name := range c.Names() {
		if name != strings.ToLower(strings.TrimSpace(name)) {
			t.Errorf("name %q is not normalized", name)
		}
	}
	if c.Len() != 25 {
		t.Errorf("default catalog has %d entries, want 25", c.Len())
	}
}
