package ledger

import "time"

// Detail keys written by this package and the UI surfaces.
const (
	DetailPointsEarned = "points_earned"
	DetailFeedback     = "feedback"
	DetailRating       = "rating"
	DetailTitle        = "title"
	DetailFilename     = "filename"
)

// Event is one immutable record of a rewarded user action. Events are
// append-only: they are never updated after insertion.
type Event struct {
	ID       string
	UserID   string
	Kind     Kind
	Detail   map[string]any
	Sequence int64
	Time     time.Time
}

// Points reads the reward stored on the event, defaulting to 0 when the
// detail is missing or malformed.
func (e *Event) Points() int {
	v, ok := e.Detail[DetailPointsEarned]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		// JSON round-tripping turns numbers into float64.
		return int(n)
	default:
		return 0
	}
}

// Title reads the course/exercise title from the detail, if present.
func (e *Event) Title() string {
	s, _ := e.Detail[DetailTitle].(string)
	return s
}
