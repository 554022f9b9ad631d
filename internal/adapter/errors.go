package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrUnexpectedPayload is returned when the upstream answers 2xx with a
	// body that is not a menu document.
	ErrUnexpectedPayload = errors.New("unexpected upstream payload")
)
