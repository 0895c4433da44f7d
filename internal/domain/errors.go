package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers. ErrGeneration marks a generative
// service failure; callers fall back to a template instead of failing.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrGeneration    = errors.New("generation failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists what is wrong with one record of reference or user
// data: an anniversary row, a catalog event, a persona.
type ValidationError struct {
	Entity string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("invalid %s: %s: %s", e.Entity, e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(e.Fields(), ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the names of the offending fields in order.
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(entity, field, message string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
