package ledger

// Kind identifies a rewarded user action.
type Kind string

const (
	KindProjectUpload    Kind = "project_upload"
	KindFeedbackReceived Kind = "feedback_received"
	KindCourseSelected   Kind = "course_selected"
	KindExerciseSelected Kind = "exercise_selected"
)

// AllKinds returns every activity kind in display order.
func AllKinds() []Kind {
	return []Kind{KindProjectUpload, KindFeedbackReceived, KindCourseSelected, KindExerciseSelected}
}

// Valid reports whether k is a known activity kind.
func (k Kind) Valid() bool {
	switch k {
	case KindProjectUpload, KindFeedbackReceived, KindCourseSelected, KindExerciseSelected:
		return true
	}
	return false
}

// Points returns the reward for an activity kind. The schedule is applied
// at event creation time only; stored events carry their own value so
// historical totals survive schedule changes.
func (k Kind) Points() int {
	switch k {
	case KindProjectUpload:
		return 20
	case KindFeedbackReceived:
		return 20
	case KindCourseSelected:
		return 50
	case KindExerciseSelected:
		return 50
	default:
		return 0
	}
}

// Label returns a short human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindProjectUpload:
		return "Project Upload"
	case KindFeedbackReceived:
		return "AI Feedback"
	case KindCourseSelected:
		return "Course Selected"
	case KindExerciseSelected:
		return "Exercise Completed"
	default:
		return "Activity"
	}
}

// Icon returns the glyph shown next to an activity entry.
func (k Kind) Icon() string {
	switch k {
	case KindProjectUpload:
		return "⬆"
	case KindFeedbackReceived:
		return "✉"
	case KindCourseSelected:
		return "▣"
	case KindExerciseSelected:
		return "✎"
	default:
		return "•"
	}
}

// EarnedMessage returns the toast-style message shown when points are
// granted for the kind.
func (k Kind) EarnedMessage() string {
	switch k {
	case KindProjectUpload:
		return "Great job uploading your project!"
	case KindFeedbackReceived:
		return "Thanks for getting AI feedback!"
	case KindCourseSelected:
		return "Keep learning with this course!"
	case KindExerciseSelected:
		return "Practice makes perfect!"
	default:
		return "Keep up the great work!"
	}
}
