package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrEmptyInput is returned when the supplied text is empty or becomes
	// empty after normalization.
	ErrEmptyInput = errors.New("empty input")

	// ErrNoAnalyzableContent is returned when filtering leaves zero tokens,
	// e.g. the text was entirely punctuation, digits, or Latin letters.
	// Distinct from ErrEmptyInput to give a more specific diagnostic.
	ErrNoAnalyzableContent = errors.New("no analyzable content")

	// ErrVocabularyUnavailable is returned when the known-word source could
	// not be loaded. It always wraps a storage error; the analyzer itself
	// never generates it.
	ErrVocabularyUnavailable = errors.New("vocabulary unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
