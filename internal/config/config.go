// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// pg-config-view. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the product name used
	// in the VERSION report entry.
	App App `envPrefix:"APP_"`

	// Build holds overrides for the build-flag strings baked in at link
	// time. Deployments that cannot re-link can inject recorded values
	// here instead.
	Build Build `envPrefix:"BUILD_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the sqlite DSN backing the materialized config table.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Product is the product name prefixed to the VERSION report entry,
	// e.g. "PostgreSQL". Empty keeps the value baked into the binary.
	// Env: APP_PRODUCT
	Product string `env:"PRODUCT"`

	// Version overrides the version string baked into the binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Build carries recorded build-flag strings. Each field overrides the
// corresponding linker-injected value when non-empty; fields that end up
// empty everywhere are reported as "not recorded".
type Build struct {
	// Env: BUILD_CONFIGURE
	Configure string `env:"CONFIGURE"`
	// Env: BUILD_CC
	CC string `env:"CC"`
	// Env: BUILD_CPPFLAGS
	CPPFlags string `env:"CPPFLAGS"`
	// Env: BUILD_CFLAGS
	CFlags string `env:"CFLAGS"`
	// Env: BUILD_CFLAGS_SL
	CFlagsSL string `env:"CFLAGS_SL"`
	// Env: BUILD_LDFLAGS
	LDFlags string `env:"LDFLAGS"`
	// Env: BUILD_LDFLAGS_SL
	LDFlagsSL string `env:"LDFLAGS_SL"`
	// Env: BUILD_LIBS
	Libs string `env:"LIBS"`
}

// Server holds network and timeout settings for the inbound transport
// layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the sqlite database that materializes the
// config table for the query layer.
type Storage struct {
	// DSN is the sqlite Data Source Name. The default is an in-memory
	// database; the table is rebuilt at startup, so nothing persists
	// across runs regardless.
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
