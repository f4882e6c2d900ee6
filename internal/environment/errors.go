package environment

import "errors"

// Validation errors returned (joined and wrapped with the field name) by
// [EnvironmentConfig.Validate].
var (
	// ErrEmptyField indicates that a required identifier is empty.
	ErrEmptyField = errors.New("required field is empty")
	// ErrInvalidURL indicates that a URL field is not an absolute URI.
	ErrInvalidURL = errors.New("invalid absolute url")
)
