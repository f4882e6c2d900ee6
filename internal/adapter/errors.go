package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")

	ErrNoToken                 = errors.New("no access token set")
	ErrNoServerURL             = errors.New("api server url is empty")
	ErrInsecureTLSInProduction = errors.New("insecure tls is not allowed in production")
)
