package auth

import "errors"

var (
	// ErrLoginFailed is returned when Auth0 redirects back with an error.
	ErrLoginFailed = errors.New("login failed")
	// ErrMissingAccessToken is returned when the callback carries no token.
	ErrMissingAccessToken = errors.New("callback has no access token")
	// ErrInvalidToken is returned when a token cannot be decoded or its
	// claims do not match this environment.
	ErrInvalidToken = errors.New("invalid access token")
)
