package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request fails validation before dispatch.
	// It is usually wrapped by a ValidationError carrying the user-facing message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPayload is returned when a request body cannot be decoded.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrUnknownOperation is returned when an action name does not match any operation.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidPost is returned when a generated post does not have the agreed shape.
	ErrInvalidPost = errors.New("invalid post")
)

// ValidationError describes a request that was rejected before dispatch.
// Message is safe to show to end users.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
// A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying sentinel so errors.Is works on ValidationError.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports ErrValidation as matching every ValidationError, regardless of
// the more specific sentinel it wraps.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
