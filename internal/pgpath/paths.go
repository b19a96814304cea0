// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 pg-config-view contributors

// Package pgpath resolves the installation directory layout relative to
// the running executable, following the PostgreSQL relocatable-install
// convention: each directory category has a configure-time default, and
// when the executable turns out to live in a relocated copy of the
// configured tree, the category paths move with it.
package pgpath

import (
	"runtime"
	"strings"
)

// MaxPathLength is the fixed capacity used when composing paths into
// bounded buffers, terminator included.
const MaxPathLength = 1024

// Configure-time installation layout. The build system overrides these
// with -ldflags -X; the defaults describe a standard /usr/local/pgsql
// tree. Because "pgsql" appears in the install prefix, the package
// include and lib directories collapse onto their parents, matching the
// upstream layout rules.
var (
	binDir           = "/usr/local/pgsql/bin"
	docDir           = "/usr/local/pgsql/share/doc/postgresql"
	htmlDir          = "/usr/local/pgsql/share/doc/postgresql"
	includeDir       = "/usr/local/pgsql/include"
	pkgIncludeDir    = "/usr/local/pgsql/include"
	includeServerDir = "/usr/local/pgsql/include/server"
	libDir           = "/usr/local/pgsql/lib"
	pkgLibDir        = "/usr/local/pgsql/lib"
	localeDir        = "/usr/local/pgsql/share/locale"
	manDir           = "/usr/local/pgsql/share/man"
	shareDir         = "/usr/local/pgsql/share"
	sysConfDir       = "/usr/local/pgsql/etc"
)

// BinDir returns the directory holding the executable at execPath: the
// path with its trailing segment stripped. A path without separators is a
// bare program name, so the directory is empty.
func BinDir(execPath string) string {
	i := lastSeparator(execPath)
	if i < 0 {
		return ""
	}
	return execPath[:i]
}

// DocPath returns the documentation directory for the given executable.
func DocPath(execPath string) string { return relativePath(docDir, execPath) }

// HTMLPath returns the HTML documentation directory.
func HTMLPath(execPath string) string { return relativePath(htmlDir, execPath) }

// IncludePath returns the C header directory.
func IncludePath(execPath string) string { return relativePath(includeDir, execPath) }

// PkgIncludePath returns the package-specific C header directory.
func PkgIncludePath(execPath string) string { return relativePath(pkgIncludeDir, execPath) }

// IncludeServerPath returns the server-side C header directory.
func IncludeServerPath(execPath string) string { return relativePath(includeServerDir, execPath) }

// LibPath returns the object-library directory.
func LibPath(execPath string) string { return relativePath(libDir, execPath) }

// PkgLibPath returns the package-specific library directory (loadable
// modules live here).
func PkgLibPath(execPath string) string { return relativePath(pkgLibDir, execPath) }

// LocalePath returns the locale data directory.
func LocalePath(execPath string) string { return relativePath(localeDir, execPath) }

// ManPath returns the manual-page directory.
func ManPath(execPath string) string { return relativePath(manDir, execPath) }

// SharePath returns the architecture-independent data directory.
func SharePath(execPath string) string { return relativePath(shareDir, execPath) }

// EtcPath returns the system configuration directory. The directory is
// not required to exist at query time.
func EtcPath(execPath string) string { return relativePath(sysConfDir, execPath) }

// relativePath re-anchors target under the actual install root when the
// executable lives in a relocated copy of the configured tree.
//
// The configured bin directory and target share some common parent in the
// configured layout. If the executable's directory ends with the bin
// directory's tail beyond that common parent, the executable's install
// root replaces the configured one and target's tail is spliced on.
// Otherwise target is returned exactly as configured. Either way the
// result is canonicalized but never validated against the filesystem.
func relativePath(target, execPath string) string {
	bin := binDir

	prefix := 0
	for i := 0; i < len(target) && i < len(bin); i++ {
		if isSeparator(target[i]) && isSeparator(bin[i]) {
			prefix = i + 1
		} else if target[i] != bin[i] {
			break
		}
	}
	if prefix == 0 {
		return canonicalize(target)
	}

	execDir := canonicalize(BinDir(execPath))
	tail := bin[prefix:]
	start := len(execDir) - len(tail)
	if start > 0 && isSeparator(execDir[start-1]) && segmentsEqual(execDir[start:], tail) {
		return canonicalize(execDir[:start-1] + "/" + target[prefix:])
	}

	return canonicalize(target)
}

// canonicalize collapses duplicate separators and trims a trailing one;
// the root directory keeps its single slash. It performs no filesystem
// access.
func canonicalize(p string) string {
	if runtime.GOOS == "windows" {
		p = strings.ReplaceAll(p, "\\", "/")
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	for len(p) > 1 && p[len(p)-1] == '/' {
		p = p[:len(p)-1]
	}
	return p
}

// segmentsEqual compares two path tails. Windows filesystems are
// case-insensitive, so the comparison follows the platform.
func segmentsEqual(a, b string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// isSeparator follows the platform's notion of a directory separator: a
// backslash is an ordinary filename byte on POSIX systems.
func isSeparator(c byte) bool {
	if runtime.GOOS == "windows" {
		return c == '/' || c == '\\'
	}
	return c == '/'
}

func lastSeparator(p string) int {
	for i := len(p) - 1; i >= 0; i-- {
		if isSeparator(p[i]) {
			return i
		}
	}
	return -1
}
