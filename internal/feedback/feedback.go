// Package feedback maps free-text project descriptions to canned critique
// responses via keyword heuristics.
package feedback

// Kind is the tone of a feedback response.
type Kind string

const (
	KindPositive   Kind = "positive"
	KindSuggestion Kind = "suggestion"
)

// Rule maps a trigger keyword to a tone and a set of candidate responses.
// Responses must be non-empty.
type Rule struct {
	Keyword   string
	Kind      Kind
	Responses []string
}

// Response is one classified feedback result.
type Response struct {
	Feedback string
	Kind     Kind
}
