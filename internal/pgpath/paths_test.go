// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

package pgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinDir(t *testing.T) {
	tests := []struct {
		name     string
		execPath string
		expected string
	}{
		{
			name:     "standard install",
			execPath: "/usr/local/pgsql/bin/postgres",
			expected: "/usr/local/pgsql/bin",
		},
		{
			name:     "bare program name",
			execPath: "postgres",
			expected: "",
		},
		{
			name:     "program in root",
			execPath: "/postgres",
			expected: "",
		},
		{
			name:     "relative path",
			execPath: "bin/postgres",
			expected: "bin",
		},
		{
			name:     "empty input",
			execPath: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BinDir(tt.execPath))
		})
	}
}

func TestRelativePath_ConfiguredTree(t *testing.T) {
	// Executable sits exactly where the layout was configured, so every
	// category resolves to its configured location.
	const exec = "/usr/local/pgsql/bin/postgres"

	assert.Equal(t, "/usr/local/pgsql/share/doc/postgresql", DocPath(exec))
	assert.Equal(t, "/usr/local/pgsql/share/doc/postgresql", HTMLPath(exec))
	assert.Equal(t, "/usr/local/pgsql/include", IncludePath(exec))
	assert.Equal(t, "/usr/local/pgsql/include", PkgIncludePath(exec))
	assert.Equal(t, "/usr/local/pgsql/include/server", IncludeServerPath(exec))
	assert.Equal(t, "/usr/local/pgsql/lib", LibPath(exec))
	assert.Equal(t, "/usr/local/pgsql/lib", PkgLibPath(exec))
	assert.Equal(t, "/usr/local/pgsql/share/locale", LocalePath(exec))
	assert.Equal(t, "/usr/local/pgsql/share/man", ManPath(exec))
	assert.Equal(t, "/usr/local/pgsql/share", SharePath(exec))
	assert.Equal(t, "/usr/local/pgsql/etc", EtcPath(exec))
}

func TestRelativePath_RelocatedTree(t *testing.T) {
	// The whole tree was moved to /opt/pg: the bin-directory tail still
	// matches, so every category follows the executable.
	const exec = "/opt/pg/bin/postgres"

	assert.Equal(t, "/opt/pg/share/doc/postgresql", DocPath(exec))
	assert.Equal(t, "/opt/pg/include/server", IncludeServerPath(exec))
	assert.Equal(t, "/opt/pg/lib", PkgLibPath(exec))
	assert.Equal(t, "/opt/pg/share", SharePath(exec))
	assert.Equal(t, "/opt/pg/etc", EtcPath(exec))
}

func TestRelativePath_UnrelatedLocation(t *testing.T) {
	// Executable directory does not end with the configured bin tail:
	// the configured locations win.
	const exec = "/home/alice/builds/postgres"

	assert.Equal(t, "/usr/local/pgsql/share/doc/postgresql", DocPath(exec))
	assert.Equal(t, "/usr/local/pgsql/lib", LibPath(exec))
}

func TestRelativePath_BareExecutableName(t *testing.T) {
	// No directory at all degrades to the configured layout rather than
	// failing.
	assert.Equal(t, "/usr/local/pgsql/share", SharePath("postgres"))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already canonical", input: "/usr/local/pgsql", expected: "/usr/local/pgsql"},
		{name: "trailing separator", input: "/usr/local/pgsql/", expected: "/usr/local/pgsql"},
		{name: "duplicate separators", input: "/usr//local///pgsql", expected: "/usr/local/pgsql"},
		{name: "root stays root", input: "/", expected: "/"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalize(tt.input))
		})
	}
}
