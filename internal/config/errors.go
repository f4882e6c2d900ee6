package config

import "errors"

// Validation errors returned by [GetClientConfig] when the merged
// configuration is incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAuthConfigs indicates invalid login settings
	// (for example, a certificate without its key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
