// Package tspath provides portable path handling for the PnP resolver:
// normalization, joining, splitting, and case-normalized comparison keys.
//
// Paths are passed around as owned strings rather than borrowed slices
// throughout this module's public signatures, since the resolver frequently
// needs to retain a path past the lifetime of whatever produced it.
package tspath

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
)

const Separator = "/"

// Normalize collapses "." and ".." segments and converts backslashes to
// forward slashes, and upper-cases a leading drive letter (see
// splitDriveLetter); the rest of the path's casing is left untouched. It
// does not resolve symlinks or consult the filesystem.
func Normalize(p string) string {
	if p == "" {
		return p
	}

	p = strings.ReplaceAll(p, "\\", "/")

	drive, rest := splitDriveLetter(p)
	rooted := strings.HasPrefix(rest, "/")

	cleaned := path.Clean(rest)
	if cleaned == "." {
		cleaned = ""
	}

	if rooted && !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}

	return drive + cleaned
}

// splitDriveLetter recognizes a leading "C:" style Windows drive prefix and
// upper-cases it, leaving the remainder of the path untouched. This is the
// one documented case-normalization rule this module applies unconditionally
// (see DESIGN.md, open question 2): upstream Node.js on Windows normalizes
// drive letters to uppercase via path.resolve, and nothing else about
// casing is touched without a filesystem round-trip.
func splitDriveLetter(p string) (drive string, rest string) {
	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		return strings.ToUpper(p[:1]) + ":", p[2:]
	}
	return "", p
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Join joins path segments and normalizes the result.
func Join(elems ...string) string {
	return Normalize(path.Join(elems...))
}

// Split splits p into its parent directory and final element.
func Split(p string) (dir string, base string) {
	p = Normalize(p)
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", p
	}
	return p[:idx], p[idx+1:]
}

// IsAbsolute reports whether p is an absolute path, either POSIX-rooted or
// carrying a Windows drive prefix.
func IsAbsolute(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	drive, rest := splitDriveLetter(p)
	return drive != "" && strings.HasPrefix(rest, "/")
}

// EnsureTrailingSeparator appends a trailing "/" if p doesn't already end
// with one. Package locations in the manifest always carry a trailing
// separator once normalized.
func EnsureTrailingSeparator(p string) string {
	if p == "" || strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// RemoveTrailingSeparator strips a single trailing "/" from p, if present,
// unless p is just "/".
func RemoveTrailingSeparator(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return p[:len(p)-1]
	}
	return p
}

// foldCaser performs Unicode case-folding, not simple ASCII lower-casing,
// so that non-ASCII package/file names on case-insensitive filesystems
// compare correctly, rather than only handling the ASCII subset a naive
// strings.ToLower would.
var foldCaser = cases.Fold()

// ComparisonKey returns the key used to compare p against other paths when
// caseSensitive is false. The original path casing is never discarded by
// the caller — only this derived key is folded.
func ComparisonKey(p string, caseSensitive bool) string {
	if caseSensitive {
		return p
	}
	return foldCaser.String(p)
}

// Rel returns the slash-separated path of target relative to base. Both
// paths are normalized first. Rel does not touch the filesystem.
func Rel(base, target string) string {
	base = Normalize(base)
	target = Normalize(target)

	baseSegs := splitSegments(base)
	targetSegs := splitSegments(target)

	common := 0
	for common < len(baseSegs) && common < len(targetSegs) && baseSegs[common] == targetSegs[common] {
		common++
	}

	var out []string
	for i := common; i < len(baseSegs); i++ {
		out = append(out, "..")
	}
	out = append(out, targetSegs[common:]...)

	if len(out) == 0 {
		return "."
	}
	return strings.Join(out, "/")
}

func splitSegments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
