package assist

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/catalog"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/feedback"
)

// newTestService uses zero delays so tests run instantly.
func newTestService(t *testing.T) *Service {
	t.Helper()
	cl := feedback.NewClassifier(feedback.WithRand(rand.New(rand.NewSource(1))))
	return NewService(catalog.Default(), catalog.DefaultCourseIndex(), cl, Config{})
}

func TestSkillJourney_Hit(t *testing.T) {
	s := newTestService(t)

	rec, found, err := s.SkillJourney(context.Background(), "  Illustration ")
	if err != nil {
		t.Fatalf("SkillJourney: %v", err)
	}
	if !found {
		t.Fatal("expected a recommendation")
	}
	if rec.Course != "Introduction to Digital Illustration" {
		t.Errorf("course = %q", rec.Course)
	}
}

func TestSkillJourney_Miss(t *testing.T) {
	s := newTestService(t)

	_, found, err := s.SkillJourney(context.Background(), "underwater basket weaving")
	if err != nil {
		t.Fatalf("SkillJourney: %v", err)
	}
	if found {
		t.Error("expected a miss")
	}
}

func TestSkillJourney_Cancelled(t *testing.T) {
	cl := feedback.NewClassifier()
	s := NewService(catalog.Default(), catalog.DefaultCourseIndex(), cl, Config{ResponseDelay: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.SkillJourney(ctx, "illustration")
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestProjectFeedback_DelayDoesNotChangeResult(t *testing.T) {
	// Same seed with and without delay must match the same rule.
	mk := func(delay time.Duration) *Service {
		cl := feedback.NewClassifier(feedback.WithRand(rand.New(rand.NewSource(9))))
		return NewService(catalog.Default(), catalog.DefaultCourseIndex(), cl, Config{ResponseDelay: delay})
	}

	fast, err := mk(0).ProjectFeedback(context.Background(), FeedbackInput{Description: "my logo draft"})
	if err != nil {
		t.Fatalf("ProjectFeedback: %v", err)
	}
	slow, err := mk(5 * time.Millisecond).ProjectFeedback(context.Background(), FeedbackInput{Description: "my logo draft"})
	if err != nil {
		t.Fatalf("ProjectFeedback: %v", err)
	}
	if fast != slow {
		t.Errorf("delay changed classification: %+v vs %+v", fast, slow)
	}
}

func TestValidateInterest(t *testing.T) {
	s := newTestService(t)

	if ok, hint := s.ValidateInterest("   "); ok || hint != "Please enter a creative interest" {
		t.Errorf("empty input: ok=%v hint=%q", ok, hint)
	}

	ok, hint := s.ValidateInterest("cooking")
	if ok {
		t.Error("unknown interest validated")
	}
	if !strings.Contains(hint, "illustration") || !strings.Contains(hint, "Try:") {
		t.Errorf("hint should suggest catalog entries: %q", hint)
	}

	if ok, _ := s.ValidateInterest("UX Design"); !ok {
		t.Error("known interest rejected")
	}
}

func TestValidateFeedbackInput(t *testing.T) {
	s := newTestService(t)

	if ok, _ := s.ValidateFeedbackInput("", false); ok {
		t.Error("empty submission validated")
	}
	if ok, _ := s.ValidateFeedbackInput("", true); !ok {
		t.Error("image-only submission rejected")
	}
	if ok, _ := s.ValidateFeedbackInput("a sketch", false); !ok {
		t.Error("description-only submission rejected")
	}
}

func TestCourseOperations(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	popular, err := s.PopularCourses(ctx, 4)
	if err != nil || len(popular) != 4 {
		t.Fatalf("PopularCourses: %v (%d results)", err, len(popular))
	}

	design, err := s.CoursesByCategory(ctx, "design", 10)
	if err != nil || len(design) == 0 {
		t.Fatalf("CoursesByCategory: %v (%d results)", err, len(design))
	}

	found, err := s.SearchCourses(ctx, "photoshop", 10)
	if err != nil || len(found) != 1 {
		t.Fatalf("SearchCourses: %v (%d results)", err, len(found))
	}

	if len(s.Categories()) != 16 {
		t.Errorf("got %d categories", len(s.Categories()))
	}
}
