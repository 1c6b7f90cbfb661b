package tspath

import (
	"os"
	"strings"
)

// DefaultManifestNames are the filenames FindClosestManifestPath looks
// for, in preference order, matching Yarn's own installer output: the
// JavaScript-wrapped loader first, the plain JSON data file second.
var DefaultManifestNames = []string{".pnp.cjs", ".pnp.data.json"}

// FindClosestManifestPath walks upward from start looking for a file
// literally named one of names (DefaultManifestNames if names is empty).
// It is iterative, never recurses, and always terminates once it reaches
// the filesystem root — it never panics on a missing or unreadable
// ancestor directory, it simply keeps walking up.
//
// Grounded on pnpapi.go's findClosestPnpManifest, generalized to accept a
// caller-configurable manifest name set.
func FindClosestManifestPath(start string, names []string) (string, bool) {
	if len(names) == 0 {
		names = DefaultManifestNames
	}

	dir := Normalize(start)
	if !IsAbsolute(dir) {
		if wd, err := os.Getwd(); err == nil {
			dir = Join(wd, dir)
		}
	}

	for {
		for _, name := range names {
			candidate := Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parent, _ := Split(dir)
		if parent == "" || parent == dir || isRoot(dir) {
			return "", false
		}
		dir = parent
	}
}

func isRoot(p string) bool {
	if p == "/" {
		return true
	}
	drive, rest := splitDriveLetter(p)
	return drive != "" && (rest == "" || rest == "/") || strings.TrimSuffix(p, "/") == ""
}
