package deck

import "fmt"

// ViolationKind classifies why construction of a deck entity failed.
type ViolationKind string

const (
	// KindFieldBounds covers length and range violations on single fields.
	KindFieldBounds ViolationKind = "field_bounds"

	// KindStructure covers ordering and count rules across slides.
	KindStructure ViolationKind = "structure"

	// KindQuestionPlacement covers questions attached to non-content slides.
	KindQuestionPlacement ViolationKind = "question_placement"

	// KindAnswerNotInOptions covers answers that cannot be mapped to any
	// offered option.
	KindAnswerNotInOptions ViolationKind = "answer_not_in_options"
)

// ValidationError describes why a deck entity failed construction.
// These are deterministic contract checks over already-produced data:
// no retry, no recovery.
type ValidationError struct {
	Kind    ViolationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func violation(kind ViolationKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
