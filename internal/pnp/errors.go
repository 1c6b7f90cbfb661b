package pnp

import (
	"fmt"
	"strings"
)

// ErrorKind classifies why a resolution failed.
//
//go:generate stringer -type=ErrorKind
type ErrorKind int

const (
	// UndeclaredDependency: a bare specifier isn't in the issuer's
	// dependencies and fallback is disabled, excluded, or also missed.
	UndeclaredDependency ErrorKind = iota
	// MissingPeerDependency: the dependency entry exists but its
	// reference is null (an unfulfilled peer dependency).
	MissingPeerDependency
	// QualifiedPathResolutionFailed: extension/index probing (C6)
	// exhausted every candidate.
	QualifiedPathResolutionFailed
	// ExportsNotFound: the exports evaluator rejected the subpath.
	ExportsNotFound
	// InvalidManifest: the parser hit a structural error.
	InvalidManifest
	// ZipCorrupted: C4 failed to parse a ZIP central directory.
	ZipCorrupted
	// ZipMissingEntry: C4 found no such entry in an opened archive.
	ZipMissingEntry
	// IoError: the underlying file oracle reported a failure.
	IoError
)

// Error carries the fields needed to explain a resolution failure: ident, parent, and specifier
// where applicable, plus the probed candidate list for
// QualifiedPathResolutionFailed.
type Error struct {
	Kind       ErrorKind
	Ident      Ident
	Parent     string
	Specifier  string
	Candidates []string
	inner      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case UndeclaredDependency:
		if e.Parent == "" {
			return fmt.Sprintf("Your application tried to access %s, but it isn't declared in your dependencies; "+
				"this makes the require call ambiguous and unsound.\n\nRequired package: %s\nRequired by: %s",
				e.Ident, e.Ident, "<workspace root>")
		}
		return fmt.Sprintf("%s tried to access %s, but it isn't declared in your dependencies; "+
			"this makes the require call ambiguous and unsound.\n\nRequired package: %s\nRequired by: %s",
			e.Parent, e.Ident, e.Ident, e.Parent)

	case MissingPeerDependency:
		if e.Parent == "" {
			return fmt.Sprintf("Your application tried to access %s (a peer dependency); this isn't allowed as "+
				"there is no ancestor to satisfy the requirement. Use a devDependency if needed.\n\n"+
				"Required package: %s\nRequired by: %s", e.Ident, e.Ident, "<workspace root>")
		}
		return fmt.Sprintf("%s tried to access %s (a peer dependency) but it isn't provided by its "+
			"ancestors/your application; this makes the require call ambiguous and unsound.\n\n"+
			"Required package: %s\nRequired by: %s", e.Parent, e.Ident, e.Ident, e.Parent)

	case QualifiedPathResolutionFailed:
		return fmt.Sprintf("Qualified path resolution failed for specifier %q from %q; probed:\n  %s",
			e.Specifier, e.Parent, strings.Join(e.Candidates, "\n  "))

	case ExportsNotFound:
		return fmt.Sprintf("Package %s has no \"exports\" entry matching %q (requested from %q)",
			e.Ident, e.Specifier, e.Parent)

	case InvalidManifest:
		if e.inner != nil {
			return fmt.Sprintf("Invalid PnP manifest: %s", e.inner.Error())
		}
		return "Invalid PnP manifest"

	case ZipCorrupted:
		return fmt.Sprintf("Corrupted ZIP archive at %q: %s", e.Parent, errString(e.inner))

	case ZipMissingEntry:
		return fmt.Sprintf("No such entry %q in archive %q", e.Specifier, e.Parent)

	case IoError:
		return fmt.Sprintf("I/O error resolving %q: %s", e.Parent, errString(e.inner))
	}

	return "unknown PnP resolution error"
}

// Unwrap exposes the underlying cause, if any, for errors.Is/As chains
// originating outside this package (e.g. an *fs.PathError from C4).
func (e *Error) Unwrap() error {
	return e.inner
}

func errString(err error) string {
	if err == nil {
		return "unknown cause"
	}
	return err.Error()
}
