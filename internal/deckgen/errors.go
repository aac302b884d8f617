package deckgen

import (
	"errors"
	"fmt"

	"github.com/deckforge/deckforge/internal/deck"
	"github.com/deckforge/deckforge/internal/llm"
)

// ErrSchemaMismatch indicates the model produced content that is not
// structurally a valid deck entity: the call itself succeeded but the
// result violates the deck contract. Deterministic, never retried here.
type ErrSchemaMismatch struct {
	Step string
	Err  error
}

func (e *ErrSchemaMismatch) Error() string {
	return fmt.Sprintf("%s: generated content does not match the expected schema: %v", e.Step, e.Err)
}

func (e *ErrSchemaMismatch) Unwrap() error { return e.Err }

// ErrGenerationFailure indicates the inference call itself failed: network,
// provider error, or output so malformed it could not be coerced.
type ErrGenerationFailure struct {
	Step string
	Err  error
}

func (e *ErrGenerationFailure) Error() string {
	return fmt.Sprintf("%s: generation failed: %v", e.Step, e.Err)
}

func (e *ErrGenerationFailure) Unwrap() error { return e.Err }

// classify maps an error from a generation step onto the two-way taxonomy.
// Schema-shaped failures (deck validation, provider-side schema validation,
// unparseable structured output) become ErrSchemaMismatch; everything else
// is a generation failure.
func classify(step string, err error) error {
	var vErr *deck.ValidationError
	if errors.As(err, &vErr) {
		return &ErrSchemaMismatch{Step: step, Err: err}
	}
	var invErr *llm.ErrInvalidResponse
	if errors.As(err, &invErr) {
		return &ErrSchemaMismatch{Step: step, Err: err}
	}
	return &ErrGenerationFailure{Step: step, Err: err}
}
