package catalog

// Entry represents a single creative interest with its recommended
// learning path. Name is the canonical lowercase key; RelatedTerms feed
// search ranking only and are never consulted for resolution.
type Entry struct {
	Name         string   `json:"name"`
	RelatedTerms []string `json:"related_terms"`
	Course       string   `json:"course"`
	Exercise     string   `json:"exercise"`
}

// Recommendation is the course/exercise pair returned for a resolved interest.
type Recommendation struct {
	Course   string
	Exercise string
}
