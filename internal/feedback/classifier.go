package feedback

import (
	"math/rand"
	"strings"
	"time"
)

// Classifier scans project descriptions against a keyword rule table.
// The random source is injectable so tests can pin response selection.
type Classifier struct {
	rules         []Rule
	imageFallback []string
	rng           *rand.Rand
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRules replaces the built-in rule table.
func WithRules(rules []Rule) Option {
	return func(c *Classifier) { c.rules = rules }
}

// WithImageFallback replaces the generic image-upload response set.
func WithImageFallback(responses []string) Option {
	return func(c *Classifier) { c.imageFallback = responses }
}

// WithRand sets the random source used for response selection.
func WithRand(rng *rand.Rand) Option {
	return func(c *Classifier) { c.rng = rng }
}

// NewClassifier creates a Classifier with the default tables and a
// time-seeded random source.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		rules:         defaultRules,
		imageFallback: defaultImageFallback,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns feedback for a project description. Rules are checked
// in definition order and the first keyword found as a substring wins; the
// response is picked uniformly from that rule's set. With no match, an
// uploaded image earns a generic positive response, otherwise the fixed
// fallback guides the user toward recognized keywords.
func (c *Classifier) Classify(description string, hasImage bool) Response {
	text := strings.ToLower(description)

	for _, rule := range c.rules {
		if strings.Contains(text, rule.Keyword) {
			return Response{
				Feedback: rule.Responses[c.rng.Intn(len(rule.Responses))],
				Kind:     rule.Kind,
			}
		}
	}

	if hasImage {
		return Response{
			Feedback: c.imageFallback[c.rng.Intn(len(c.imageFallback))],
			Kind:     KindPositive,
		}
	}

	return Response{Feedback: FallbackMessage, Kind: KindSuggestion}
}
