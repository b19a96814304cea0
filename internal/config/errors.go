package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the
// merged configuration is unusable.
var (
	// ErrInvalidServerConfigs indicates invalid server settings (for
	// example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
