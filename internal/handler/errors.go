package handler

import "errors"

var (
	ErrInvalidCallbackForm   = errors.New("invalid callback form")
	ErrTokenAlreadyDelivered = errors.New("access token already delivered")
)
