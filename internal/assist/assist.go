// Package assist exposes the creative-assistant operations behind a
// simulated backend boundary: results are computed synchronously from the
// in-memory tables, then delivery is delayed to model network latency.
package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/catalog"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/feedback"
)

// Config holds the simulated latency settings.
type Config struct {
	// ResponseDelay applies to skill-journey and feedback requests.
	ResponseDelay time.Duration
	// ListDelay applies to course listing requests.
	ListDelay time.Duration
	// SearchDelay applies to course search requests.
	SearchDelay time.Duration
}

// DefaultConfig returns the latency profile of the simulated backend.
func DefaultConfig() Config {
	return Config{
		ResponseDelay: time.Second,
		ListDelay:     500 * time.Millisecond,
		SearchDelay:   300 * time.Millisecond,
	}
}

// FeedbackInput describes a project submitted for feedback.
type FeedbackInput struct {
	Description string
	HasImage    bool
	FileName    string
}

// Service is the simulated assistant backend.
type Service struct {
	catalog    *catalog.Catalog
	courses    *catalog.CourseIndex
	classifier *feedback.Classifier
	cfg        Config
}

// NewService creates a Service over the given tables.
func NewService(c *catalog.Catalog, courses *catalog.CourseIndex, cl *feedback.Classifier, cfg Config) *Service {
	return &Service{catalog: c, courses: courses, classifier: cl, cfg: cfg}
}

// SkillJourney resolves an interest to a course/exercise recommendation.
// A miss is not an error: found is false and the caller renders guidance.
// The only error is context cancellation during the simulated delay.
func (s *Service) SkillJourney(ctx context.Context, interest string) (rec catalog.Recommendation, found bool, err error) {
	rec, found = s.catalog.Resolve(interest)
	if err := s.wait(ctx, s.cfg.ResponseDelay); err != nil {
		return catalog.Recommendation{}, false, err
	}
	return rec, found, nil
}

// ProjectFeedback classifies a submitted project. Classification happens
// before the delay, so cancellation never changes which rule matched —
// it only drops the delivery.
func (s *Service) ProjectFeedback(ctx context.Context, in FeedbackInput) (feedback.Response, error) {
	resp := s.classifier.Classify(in.Description, in.HasImage)
	if err := s.wait(ctx, s.cfg.ResponseDelay); err != nil {
		return feedback.Response{}, err
	}
	return resp, nil
}

// PopularCourses lists the most popular courses.
func (s *Service) PopularCourses(ctx context.Context, limit int) ([]catalog.Course, error) {
	out := s.courses.Popular(limit)
	if err := s.wait(ctx, s.cfg.ListDelay); err != nil {
		return nil, err
	}
	return out, nil
}

// CoursesByCategory lists courses for a category slug.
func (s *Service) CoursesByCategory(ctx context.Context, slug string, limit int) ([]catalog.Course, error) {
	out := s.courses.ByCategory(slug, limit)
	if err := s.wait(ctx, s.cfg.ListDelay); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchCourses searches courses by keyword.
func (s *Service) SearchCourses(ctx context.Context, query string, limit int) ([]catalog.Course, error) {
	out := s.courses.Search(query, limit)
	if err := s.wait(ctx, s.cfg.SearchDelay); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories returns the course categories. No simulated delay: the
// original serves these synchronously.
func (s *Service) Categories() []catalog.Category {
	return s.courses.Categories()
}

// ValidateInterest checks a skill-journey input before submission.
// Returns ok=false with a user-facing hint for empty or unknown interests.
func (s *Service) ValidateInterest(interest string) (ok bool, hint string) {
	if strings.TrimSpace(interest) == "" {
		return false, "Please enter a creative interest"
	}
	if _, found := s.catalog.Resolve(interest); !found {
		names := s.catalog.Names()
		sample := names
		if len(sample) > 3 {
			sample = sample[:3]
		}
		return false, fmt.Sprintf("Sorry, I don't have recommendations for %q yet. Try: %s, or other creative skills!",
			strings.TrimSpace(interest), strings.Join(sample, ", "))
	}
	return true, ""
}

// ValidateFeedbackInput checks a feedback submission.
func (s *Service) ValidateFeedbackInput(description string, hasFile bool) (ok bool, hint string) {
	if strings.TrimSpace(description) == "" && !hasFile {
		return false, "Please upload an image or describe your project to receive personalized feedback."
	}
	return true, ""
}

// wait blocks for the configured delay, honoring ctx for cancellation.
func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("assistant request cancelled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
