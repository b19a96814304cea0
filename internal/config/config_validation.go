// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultDSN            = "file:pgconfig?mode=memory&cache=shared"
)

// applyDefaults fills settings every deployment needs but few override:
// listen address, request timeout, and the in-memory sqlite DSN.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = defaultDSN
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
