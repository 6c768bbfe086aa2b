// Package suggest ranks catalog interests against a free-text query for
// autocomplete.
package suggest

import (
	"sort"
	"strings"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/catalog"
)

// Score bonuses. A single entry may accumulate several.
const (
	scoreNameExact     = 100
	scoreRelatedExact  = 80
	scoreNameContains  = 50
	scoreNamePrefix    = 40
	scoreRelatedSubstr = 30
	scoreRelatedPrefix = 20

	// Prefix bonuses only apply once the query is long enough to be
	// meaningful.
	prefixMinLen = 3
)

// Ranker scores catalog entries against query prefixes.
// It is pure and safe for shared use; the catalog is read-only.
type Ranker struct {
	catalog *catalog.Catalog
}

// New creates a Ranker over the given catalog.
func New(c *catalog.Catalog) *Ranker {
	return &Ranker{catalog: c}
}

type match struct {
	name  string
	score int
	order int // catalog definition order, tie-break key
}

// Suggest returns up to limit interest names ranked by descending score.
// An empty (or whitespace-only) query yields no suggestions. Ties keep
// catalog definition order; names are unique by construction.
func (r *Ranker) Suggest(query string, limit int) []string {
	q := catalog.Normalize(query)
	if q == "" {
		return nil
	}

	var matches []match
	for i, e := range r.catalog.Entries() {
		score := scoreEntry(e, q)
		if score == 0 {
			continue
		}
		matches = append(matches, match{name: e.Name, score: score, order: i})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}

// scoreEntry computes the additive score for one entry against a
// normalized query.
func scoreEntry(e catalog.Entry, q string) int {
	score := 0

	if strings.Contains(e.Name, q) {
		if e.Name == q {
			score += scoreNameExact
		} else {
			score += scoreNameContains
		}
	}

	for _, term := range e.RelatedTerms {
		if strings.Contains(term, q) {
			if term == q {
				score += scoreRelatedExact
			} else {
				score += scoreRelatedSubstr
			}
		}
	}

	if len(q) >= prefixMinLen {
		if strings.HasPrefix(e.Name, q) {
			score += scoreNamePrefix
		}
		for _, term := range e.RelatedTerms {
			if strings.HasPrefix(term, q) {
				score += scoreRelatedPrefix
			}
		}
	}

	return score
}
