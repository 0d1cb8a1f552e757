package validators

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	// ErrValidation is matched by every field-level validation failure.
	ErrValidation = errors.New("validation error")

	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrCategoryNotFound = errors.New("category does not exist")
	ErrCategoryNotOwned = errors.New("category belongs to another user")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// NonFieldErrorsKey collects messages that do not belong to a single field.
const NonFieldErrorsKey = "non_field_errors"

// FieldErrors is a validation failure carrying messages per JSON field name.
// It matches ErrValidation and, when set, its Cause with errors.Is.
type FieldErrors struct {
	Fields map[string][]string
	Cause  error
}

// NewFieldError builds a FieldErrors with a single message for field.
func NewFieldError(field, message string, cause error) *FieldErrors {
	return &FieldErrors{
		Fields: map[string][]string{field: {message}},
		Cause:  cause,
	}
}

// Add appends a message for field.
func (e *FieldErrors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *FieldErrors) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}
