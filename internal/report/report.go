// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

// Package report assembles the pg_config build-configuration table: 22
// fixed (name, setting) rows describing the installation directory layout
// and the flags the product was built with.
package report

import (
	"github.com/pgtools/pg-config-view/internal/buildinfo"
	"github.com/pgtools/pg-config-view/internal/pgpath"
	"github.com/pgtools/pg-config-view/models"
)

// NotRecorded is the sentinel setting for build flags that were not
// captured at build time. It is never used for the VERSION entry.
const NotRecorded = "not recorded"

// EntryCount is the fixed number of rows in a report.
const EntryCount = 22

// pgxsSuffix locates the extension-build makefile under the package
// library directory.
const pgxsSuffix = "/pgxs/src/makefiles/pgxs.mk"

// Flags carries the build-time strings that populate the non-path half of
// the table. Empty fields surface as NotRecorded, except Product and
// Version which always carry a value.
type Flags struct {
	Product   string
	Version   string
	Configure string
	CC        string
	CPPFlags  string
	CFlags    string
	CFlagsSL  string
	LDFlags   string
	LDFlagsSL string
	Libs      string
}

// DefaultFlags returns the flag values baked into this binary by the
// build system.
func DefaultFlags() Flags {
	return Flags{
		Product:   buildinfo.Product(),
		Version:   buildinfo.Version(),
		Configure: buildinfo.Configure(),
		CC:        buildinfo.CC(),
		CPPFlags:  buildinfo.CPPFlags(),
		CFlags:    buildinfo.CFlags(),
		CFlagsSL:  buildinfo.CFlagsSL(),
		LDFlags:   buildinfo.LDFlags(),
		LDFlagsSL: buildinfo.LDFlagsSL(),
		Libs:      buildinfo.Libs(),
	}
}

// Reporter computes configuration tables for one executable path. The
// zero value is not usable; construct with New.
type Reporter struct {
	execPath string
	flags    Flags
}

// New returns a Reporter for the executable at execPath using the flags
// baked into this binary. The path is taken as given: a malformed value
// degrades to meaningless but harmless settings, never an error.
func New(execPath string) *Reporter {
	return NewWithFlags(execPath, DefaultFlags())
}

// NewWithFlags returns a Reporter with explicit flag values, letting the
// host inject a build-configuration map (for example from environment
// variables) over the linker-injected defaults.
func NewWithFlags(execPath string, flags Flags) *Reporter {
	return &Reporter{execPath: execPath, flags: flags}
}

// Report computes the full table. It is rebuilt on every call, in the
// fixed declared order, always exactly EntryCount rows.
func (r *Reporter) Report() []models.ConfigEntry {
	exec := r.execPath

	return []models.ConfigEntry{
		{Name: "BINDIR", Setting: pgpath.Clean(pgpath.BinDir(exec))},
		{Name: "DOCDIR", Setting: pgpath.Clean(pgpath.DocPath(exec))},
		{Name: "HTMLDIR", Setting: pgpath.Clean(pgpath.HTMLPath(exec))},
		{Name: "INCLUDEDIR", Setting: pgpath.Clean(pgpath.IncludePath(exec))},
		{Name: "PKGINCLUDEDIR", Setting: pgpath.Clean(pgpath.PkgIncludePath(exec))},
		{Name: "INCLUDEDIR-SERVER", Setting: pgpath.Clean(pgpath.IncludeServerPath(exec))},
		{Name: "LIBDIR", Setting: pgpath.Clean(pgpath.LibPath(exec))},
		{Name: "PKGLIBDIR", Setting: pgpath.Clean(pgpath.PkgLibPath(exec))},
		{Name: "LOCALEDIR", Setting: pgpath.Clean(pgpath.LocalePath(exec))},
		{Name: "MANDIR", Setting: pgpath.Clean(pgpath.ManPath(exec))},
		{Name: "SHAREDIR", Setting: pgpath.Clean(pgpath.SharePath(exec))},
		{Name: "SYSCONFDIR", Setting: pgpath.Clean(pgpath.EtcPath(exec))},
		{Name: "PGXS", Setting: r.pgxsPath()},
		{Name: "CONFIGURE", Setting: orNotRecorded(r.flags.Configure)},
		{Name: "CC", Setting: orNotRecorded(r.flags.CC)},
		{Name: "CPPFLAGS", Setting: orNotRecorded(r.flags.CPPFlags)},
		{Name: "CFLAGS", Setting: orNotRecorded(r.flags.CFlags)},
		{Name: "CFLAGS_SL", Setting: orNotRecorded(r.flags.CFlagsSL)},
		{Name: "LDFLAGS", Setting: orNotRecorded(r.flags.LDFlags)},
		{Name: "LDFLAGS_SL", Setting: orNotRecorded(r.flags.LDFlagsSL)},
		{Name: "LIBS", Setting: orNotRecorded(r.flags.Libs)},
		{Name: "VERSION", Setting: r.flags.Product + " " + r.flags.Version},
	}
}

// pgxsPath composes the PGXS makefile location: the package library
// directory plus the fixed suffix, built through the bounded-capacity
// buffer convention so an oversized prefix truncates instead of growing
// past MaxPathLength.
func (r *Reporter) pgxsPath() string {
	buf := make([]byte, pgpath.MaxPathLength)
	pgpath.AppendBounded(buf, pgpath.PkgLibPath(r.execPath), pgpath.MaxPathLength)
	pgpath.AppendBounded(buf, pgxsSuffix, pgpath.MaxPathLength)
	return pgpath.Clean(pgpath.CString(buf))
}

// Report computes the table for the executable at execPath using the
// flags baked into this binary.
func Report(execPath string) []models.ConfigEntry {
	return New(execPath).Report()
}

func orNotRecorded(v string) string {
	if v == "" {
		return NotRecorded
	}
	return v
}
