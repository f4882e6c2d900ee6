package client

import "errors"

var (
	ErrInvalidEnvironment = errors.New("invalid environment configuration")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingArguments   = errors.New("missing command arguments")
	ErrLoginRequired      = errors.New("login required: run 'login' or set COFFEE_AUTH_ACCESS_TOKEN")
	ErrMissingPermission  = errors.New("access token lacks permission")
)
