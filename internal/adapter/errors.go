package adapter

import "errors"

var (
	// ErrUnknownKey is returned when the server has no entry for the
	// requested configuration name.
	ErrUnknownKey = errors.New("unknown configuration name")
	// ErrServerError covers non-404 error responses from the server.
	ErrServerError = errors.New("server request failed")
)
