package suggest

import (
	"testing"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Entry{
		{Name: "painting", RelatedTerms: []string{"fine art", "canvas"}, Course: "c1", Exercise: "e1"},
		{Name: "digital painting", RelatedTerms: []string{"concept art"}, Course: "c2", Exercise: "e2"},
		{Name: "sketching", RelatedTerms: []string{"painting basics"}, Course: "c3", Exercise: "e3"},
		{Name: "ceramics", RelatedTerms: []string{"clay"}, Course: "c4", Exercise: "e4"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func TestSuggest_ExactNameRanksFirst(t *testing.T) {
	r := New(testCatalog(t))

	got := r.Suggest("painting", 10)
	want := []string{"painting", "digital painting", "sketching"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSuggest_TieKeepsDefinitionOrder(t *testing.T) {
	r := New(testCatalog(t))

	// "digital painting" (name contains, +50) and "sketching" (related
	// contains +30, related prefix n/a) both trail the exact match; the
	// equal-score pair must keep catalog order.
	got := r.Suggest("painting", 10)
	if len(got) < 3 || got[1] != "digital painting" || got[2] != "sketching" {
		t.Errorf("tie order broken: %v", got)
	}
}

func TestSuggest_Scoring(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name  string
		entry int // index into the catalog
		query string
		want  int
	}{
		{"exact name plus prefix", 0, "painting", 140},
		{"name contains only", 1, "painting", 50},
		{"related contains plus prefix", 2, "painting", 50},
		{"exact related term", 0, "canvas", 80 + 20},
		{"short query no prefix bonus", 0, "pa", 50},
		{"no match", 3, "painting", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := c.Entries()[tt.entry]
			if got := scoreEntry(e, tt.query); got != tt.want {
				t.Errorf("scoreEntry(%q, %q) = %d, want %d", e.Name, tt.query, got, tt.want)
			}
		})
	}
}

func TestSuggest_EmptyQuery(t *testing.T) {
	r := New(testCatalog(t))
	for _, q := range []string{"", "   ", "\t"} {
		if got := r.Suggest(q, 5); len(got) != 0 {
			t.Errorf("Suggest(%q) = %v, want empty", q, got)
		}
	}
}

func TestSuggest_LimitAndUniqueness(t *testing.T) {
	r := New(catalog.Default())

	got := r.Suggest("design", 3)
	if len(got) > 3 {
		t.Fatalf("limit exceeded: %v", got)
	}
	seen := make(map[string]bool)
	for _, name := range got {
		if seen[name] {
			t.Errorf("duplicate suggestion %q", name)
		}
		seen[name] = true
	}
}

func TestSuggest_ZeroScoreExcluded(t *testing.T) {
	r := New(testCatalog(t))
	if got := r.Suggest("zzz", 10); len(got) != 0 {
		t.Errorf("got %v, want no matches", got)
	}
}

func TestSuggest_DefaultCatalogExactBeatsRelated(t *testing.T) {
	r := New(catalog.Default())

	// "animation" is the canonical name of one entry and a related term of
	// "motion design"; the canonical entry must rank first.
	got := r.Suggest("animation", 5)
	if len(got) == 0 || got[0] != "animation" {
		t.Errorf("got %v, want animation first", got)
	}
}
