package handler

import "errors"

var (
	errNoServicesProvided = errors.New("no services are provided")
)
