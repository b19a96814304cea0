//go:build !windows

package pgpath

// Clean normalizes a path for embedding in shell-invoked build recipes.
// Forward-slash paths are already canonical on POSIX systems, so this is
// the identity function here; see clean_windows.go for the short-path
// rewrite applied on drive-letter filesystems.
func Clean(path string) string {
	return path
}
