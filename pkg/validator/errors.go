package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidFormat is returned when a value cannot be parsed.
	ErrInvalidFormat = errors.New("invalid format")
)
