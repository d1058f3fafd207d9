// Package paths normalizes and shortens filesystem paths for display.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Normalize strips ".." sequences, converts Windows separators to forward
// slashes and collapses repeated slashes.
//
// Windows accepts both separator styles, even mixed, but string comparison
// of paths needs one.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "..", "")
	p = strings.ReplaceAll(p, `\`, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// Join builds a path from parts separated by "/". Parts are used verbatim.
//
//	Join("/this/is", "a", "path") // "/this/is/a/path"
func Join(parts ...string) string {
	return strings.Join(parts, "/")
}

// Shorten keeps the last two segments of a normalized path behind an
// ellipsis marker: "/var/www/plugin/src/File.php" becomes ".../src/File.php".
// Full paths differ between machines; the short form keeps log lines
// comparable.
func Shorten(p string) string {
	var segments []string
	for _, s := range strings.Split(Normalize(p), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) > 2 {
		segments = segments[len(segments)-2:]
	}
	return ".../" + strings.Join(segments, "/")
}

// EnsureDir creates p and any missing parents. It reports whether p is a
// directory afterwards; an existing regular file yields false.
func EnsureDir(p string) (bool, error) {
	if info, err := os.Stat(p); err == nil {
		return info.IsDir(), nil
	}

	if err := os.MkdirAll(filepath.Clean(p), 0o755); err != nil {
		return false, fmt.Errorf("ensure directory %s: %w", p, err)
	}

	info, err := os.Stat(p)
	if err != nil {
		return false, fmt.Errorf("ensure directory %s: %w", p, err)
	}
	return info.IsDir(), nil
}
