package server

import (
	"github.com/go-playground/validator/v10"

	"github.com/deckforge/deckforge/internal/deck"
)

var validate = validator.New()

// lessonRequestDTO is the JSON body of the generation endpoints. Tags mirror
// the deck bounds so obviously bad input is rejected before any trimming;
// deck.NewLessonRequest stays authoritative.
type lessonRequestDTO struct {
	Topic   string `json:"topic" validate:"required,min=3,max=100"`
	Grade   string `json:"grade" validate:"required,min=1,max=50"`
	Context string `json:"context" validate:"max=2000"`
	NSlides int    `json:"n_slides" validate:"required,min=1,max=15"`
}

// toLessonRequest validates the DTO and converts it to a domain request.
func (d lessonRequestDTO) toLessonRequest() (deck.LessonRequest, error) {
	if err := validate.Struct(d); err != nil {
		return deck.LessonRequest{}, err
	}
	return deck.NewLessonRequest(d.Topic, d.Grade, d.Context, d.NSlides)
}

// fieldError is one field-level validation failure in an error response.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse is the JSON error body for non-streaming endpoints.
type errorResponse struct {
	Error  string       `json:"error"`
	Detail string       `json:"detail,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

// formatValidationErrors renders validator failures as per-field messages.
func formatValidationErrors(err error) []fieldError {
	var out []fieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}

	for _, fe := range validationErrors {
		var message string
		switch fe.Tag() {
		case "required":
			message = fe.Field() + " is required"
		case "min":
			message = fe.Field() + " must be at least " + fe.Param()
		case "max":
			message = fe.Field() + " must be at most " + fe.Param()
		default:
			message = fe.Field() + " is invalid"
		}
		out = append(out, fieldError{Field: fe.Field(), Message: message})
	}

	return out
}
