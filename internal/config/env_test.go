// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_PRODUCT": "PostgreSQL",
		"APP_VERSION": "16.3",

		"BUILD_CONFIGURE":  "'--prefix=/usr/local/pgsql' '--with-openssl'",
		"BUILD_CC":         "gcc -std=gnu99",
		"BUILD_CPPFLAGS":   "-D_GNU_SOURCE",
		"BUILD_CFLAGS":     "-O2 -Wall",
		"BUILD_CFLAGS_SL":  "-fPIC",
		"BUILD_LDFLAGS":    "-Wl,--as-needed",
		"BUILD_LDFLAGS_SL": "-shared",
		"BUILD_LIBS":       "-lpgcommon -lz -lm",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DATABASE_URI": "file:test?mode=memory",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "PostgreSQL", cfg.App.Product)
	assert.Equal(t, "16.3", cfg.App.Version)

	assert.Equal(t, "gcc -std=gnu99", cfg.Build.CC)
	assert.Equal(t, "-fPIC", cfg.Build.CFlagsSL)
	assert.Equal(t, "-shared", cfg.Build.LDFlagsSL)
	assert.Equal(t, "-lpgcommon -lz -lm", cfg.Build.Libs)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "file:test?mode=memory", cfg.Storage.DSN)
}

func TestParseEnv_Empty(t *testing.T) {
	for _, k := range []string{"CONFIG", "APP_PRODUCT", "APP_VERSION", "SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "STORAGE_DATABASE_URI"} {
		t.Setenv(k, "")
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}
