package deck

import "strings"

// Bounds for LessonRequest fields. Context is capped for cost control:
// everything in it ends up in every prompt.
const (
	TopicMinLen   = 3
	TopicMaxLen   = 100
	GradeMinLen   = 1
	GradeMaxLen   = 50
	ContextMaxLen = 2000
	MinSlides     = 1
	MaxSlides     = 15
)

// LessonRequest is the validated input for one generation. NSlides counts
// content slides only; the produced deck has NSlides + 3 slides in total.
// Immutable once constructed.
type LessonRequest struct {
	Topic   string
	Grade   string
	Context string
	NSlides int
}

// NewLessonRequest trims and validates the request fields.
// Topic and Grade must be non-empty after trimming.
func NewLessonRequest(topic, grade, context string, nSlides int) (LessonRequest, error) {
	topic = strings.TrimSpace(topic)
	if len(topic) < TopicMinLen || len(topic) > TopicMaxLen {
		return LessonRequest{}, violation(KindFieldBounds,
			"topic must be %d-%d characters after trimming, got %d", TopicMinLen, TopicMaxLen, len(topic))
	}

	grade = strings.TrimSpace(grade)
	if len(grade) < GradeMinLen || len(grade) > GradeMaxLen {
		return LessonRequest{}, violation(KindFieldBounds,
			"grade must be %d-%d characters after trimming, got %d", GradeMinLen, GradeMaxLen, len(grade))
	}

	context = strings.TrimSpace(context)
	if len(context) > ContextMaxLen {
		return LessonRequest{}, violation(KindFieldBounds,
			"context must be at most %d characters, got %d", ContextMaxLen, len(context))
	}

	if nSlides < MinSlides || nSlides > MaxSlides {
		return LessonRequest{}, violation(KindFieldBounds,
			"n_slides must be between %d and %d, got %d", MinSlides, MaxSlides, nSlides)
	}

	return LessonRequest{
		Topic:   topic,
		Grade:   grade,
		Context: context,
		NSlides: nSlides,
	}, nil
}
