package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound is returned when the referenced room does not exist.
	ErrRoomNotFound = errors.New("room not found")
	// ErrBookingNotFound is returned when the referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
)

// Validation failure fields.
const (
	FieldAlignment = "alignment"
	FieldWindow    = "window"
)

// ValidationError reports a business-rule rejection of a booking request.
// A conflict is NOT a ValidationError: conflicts are an expected outcome
// signalled by a nil booking result, so series generation can skip and
// continue cheaply.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func newAlignmentError() *ValidationError {
	return &ValidationError{Field: FieldAlignment, Message: "time must be on the hour or half hour"}
}

func newWindowError(msg string) *ValidationError {
	return &ValidationError{Field: FieldWindow, Message: msg}
}

// IsValidationError reports whether err is a booking validation failure.
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
