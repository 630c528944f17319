package data

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidType is returned when a value has the wrong kind for a field,
	// e.g. a float where the duration needs an integer.
	ErrInvalidType = errors.New("invalid type")

	// ErrOutOfRange is returned when a value has the right kind but violates
	// the field's bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidRuntimeFormat is returned by Runtime.UnmarshalJSON.
	ErrInvalidRuntimeFormat = errors.New("invalid runtime format")
)

// FieldError describes a rejected assignment to a film field.
type FieldError struct {
	Field   string
	Message string
	Value   any
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("film %s %s", e.Field, e.Message)
}

// Unwrap returns the sentinel so callers can use errors.Is.
func (e *FieldError) Unwrap() error {
	return e.Err
}

func typeError(field, want string, value any) error {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf("must be %s, got %T", want, value),
		Value:   value,
		Err:     ErrInvalidType,
	}
}

func rangeError(field, bounds string, value any) error {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf("must be %s, got %v", bounds, value),
		Value:   value,
		Err:     ErrOutOfRange,
	}
}

// fieldMessage returns the bare message of a FieldError, or err.Error() for
// anything else.
func fieldMessage(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
