package service

import "errors"

var (
	// ErrNoExecutablePath is returned when the config service is built
	// without a usable executable path.
	ErrNoExecutablePath = errors.New("no executable path provided")

	// ErrVersionIsNotSpecified is returned when the app-info service is
	// built with an empty version string.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
