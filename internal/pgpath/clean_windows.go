//go:build windows

package pgpath

import (
	"strings"

	"golang.org/x/sys/windows"
)

// Clean rewrites path into its short (8.3) form and flips backslashes to
// forward slashes, so the result contains no spaces or special characters
// and is safe inside shell-invoked build recipes.
//
// Short-name resolution fails when the path does not exist or short names
// are disabled on the volume; both cases fall back to the original path
// with only the separator rewrite applied. This matters for SYSCONFDIR,
// which often does not exist at query time.
func Clean(path string) string {
	if p, err := windows.UTF16PtrFromString(path); err == nil {
		buf := make([]uint16, MaxPathLength)
		if n, err := windows.GetShortPathName(p, &buf[0], uint32(len(buf))); err == nil && int(n) < len(buf) {
			path = windows.UTF16ToString(buf[:n])
		}
	}

	return strings.ReplaceAll(path, "\\", "/")
}
