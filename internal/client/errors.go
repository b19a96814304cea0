package client

import "errors"

// ErrUnknownEntry is returned when a requested name is not part of the
// configuration report.
var ErrUnknownEntry = errors.New("unknown configuration entry")
