package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeJSONConfig(t, `{
		"app": {"product": "PostgreSQL", "version": "16.3"},
		"build": {"cc": "clang", "cflags": "-O2", "libs": "-lz"},
		"server": {"http_address": "0.0.0.0:9999", "request_timeout": "45s"},
		"storage": {"dsn": "file:cfg?mode=memory"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL", cfg.App.Product)
	assert.Equal(t, "16.3", cfg.App.Version)
	assert.Equal(t, "clang", cfg.Build.CC)
	assert.Equal(t, "-O2", cfg.Build.CFlags)
	assert.Equal(t, "-lz", cfg.Build.Libs)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "file:cfg?mode=memory", cfg.Storage.DSN)
	assert.Empty(t, cfg.JSONFilePath, "file path never round-trips")
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeJSONConfig(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeJSONConfig(t, `{"server": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &StructuredConfig{Server: Server{RequestTimeout: -time.Second}}

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultDSN, cfg.Storage.DSN)

	// Explicit settings survive.
	cfg = &StructuredConfig{Server: Server{HTTPAddress: ":7777"}}
	cfg.applyDefaults()
	assert.Equal(t, ":7777", cfg.Server.HTTPAddress)
}
