// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

// Package buildinfo holds the build-time values baked into the binary.
//
// Every variable below is a plain string so the build system can override
// it with the linker, for example:
//
//	go build -ldflags "\
//	  -X github.com/pgtools/pg-config-view/internal/buildinfo.version=16.3 \
//	  -X 'github.com/pgtools/pg-config-view/internal/buildinfo.cc=gcc -std=gnu99'"
//
// Build-flag values left empty are reported downstream as "not recorded".
// The product name and version always carry a usable default so the
// VERSION report entry is never empty.
package buildinfo

var (
	product = "PostgreSQL"
	version = "0.1.0-dev"

	configure string
	cc        string
	cppflags  string
	cflags    string
	cflagsSL  string
	ldflags   string
	ldflagsSL string
	libs      string
)

// Product returns the product name used in the VERSION report entry.
func Product() string { return product }

// Version returns the bare version string, without the product prefix.
func Version() string { return version }

// Configure returns the recorded configure invocation, or "" if the build
// did not record one.
func Configure() string { return configure }

// CC returns the recorded compiler command line.
func CC() string { return cc }

// CPPFlags returns the recorded preprocessor flags.
func CPPFlags() string { return cppflags }

// CFlags returns the recorded compiler flags.
func CFlags() string { return cflags }

// CFlagsSL returns the recorded shared-library compiler flags.
func CFlagsSL() string { return cflagsSL }

// LDFlags returns the recorded linker flags.
func LDFlags() string { return ldflags }

// LDFlagsSL returns the recorded shared-library linker flags.
func LDFlagsSL() string { return ldflagsSL }

// Libs returns the recorded extra-libraries string.
func Libs() string { return libs }
