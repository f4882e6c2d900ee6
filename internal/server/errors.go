package server

import "errors"

var (
	ErrTLSRequired        = errors.New("https callback url requires a certificate and key")
	ErrInvalidCallbackURL = errors.New("invalid callback url")
)
