// Package pnp resolves module specifiers to on-disk file paths under Yarn's
// Plug'n'Play installation strategy (https://yarnpkg.com/advanced/pnp-spec).
//
// A Manifest is parsed once from a manifest blob (C2), indexed for
// "which package owns this path" queries (C3), and then consulted by
// Resolve (C5 + C6) to turn a (parent file, specifier) pair into a target
// file, a Node builtin sentinel, or a request to bypass PnP entirely.
package pnp

import (
	"log/slog"
	"strings"
)

// Ident is a package name, e.g. "lodash" or "@scope/name".
type Ident string

// Reference uniquely identifies one installed instance of a package: a
// version, a URL, a workspace marker, or a portal marker. Opaque to the
// resolver.
type Reference string

// Locator is the universal key identifying one node in the package graph.
type Locator struct {
	Ident     Ident
	Reference Reference
}

// Top is the distinguished locator representing the project root.
var Top = Locator{Ident: "", Reference: ""}

func (l Locator) IsTop() bool {
	return l.Ident == "" && l.Reference == ""
}

func (l Locator) String() string {
	if l.IsTop() {
		return "<workspace root>"
	}
	return string(l.Ident) + "@" + string(l.Reference)
}

// LinkType distinguishes packages materialized on disk in the usual way
// (HARD) from portals (SOFT), whose location is user-authored code that
// falls back to ordinary Node resolution for anything PnP doesn't know
// about.
//
//go:generate stringer -type=LinkType
type LinkType int

const (
	LinkHard LinkType = iota
	LinkSoft
)

// DependencyTarget is a resolved entry in a package's dependency map: the
// value side of "Ident -> Reference | null | aliased-locator".
//
// Exactly one of these is true at any moment:
//   - Missing is true: the dependency was declared but not installed (a
//     peer dependency that wasn't satisfied).
//   - AliasIdent is non-empty: the dependency resolves to a *different*
//     package name at the given Reference (an aliased locator).
//   - otherwise: the dependency resolves to (the original Ident, Reference).
type DependencyTarget struct {
	Reference  Reference
	AliasIdent Ident
	Missing    bool
}

func (d DependencyTarget) IsAlias() bool {
	return d.AliasIdent != ""
}

// Locator resolves d against the ident it was looked up under.
func (d DependencyTarget) Locator(lookupIdent Ident) Locator {
	if d.IsAlias() {
		return Locator{Ident: d.AliasIdent, Reference: d.Reference}
	}
	return Locator{Ident: lookupIdent, Reference: d.Reference}
}

// PackageInfo is the per-locator record stored in the manifest's package
// registry.
type PackageInfo struct {
	// PackageLocation is relative to Manifest.ManifestDir and always ends
	// with a trailing separator once normalized.
	PackageLocation string

	// PackageDependencies maps an Ident to what it resolves to.
	PackageDependencies map[Ident]DependencyTarget

	// PackagePeers is the set of idents declared as peer dependencies.
	PackagePeers map[Ident]bool

	LinkType LinkType

	// DiscardFromLookup excludes this package from C3's reverse path->
	// locator lookup even though it still participates in graph walks.
	DiscardFromLookup bool
}

// Manifest is the parsed, immutable package graph plus the derived index
// used to answer "which package owns this path" queries. Construct one via
// ParseManifest or LoadManifest; never mutate a Manifest after construction.
type Manifest struct {
	// PackageRegistry maps Ident -> Reference -> PackageInfo.
	PackageRegistry map[Ident]map[Reference]*PackageInfo

	// FallbackPool maps Ident -> the locator consulted when lookup in a
	// package's own dependencies misses and fallback is enabled.
	FallbackPool map[Ident]DependencyTarget

	// FallbackExclusionList is the set of locators for which fallback is
	// disabled outright.
	FallbackExclusionList map[Locator]bool

	// IgnorePattern matches project-relative paths that PnP does not claim
	// authority over; nil if the manifest declared none.
	IgnorePattern IgnoreMatcher

	// ignorePatternSrc is IgnorePattern's original source text, kept
	// alongside the compiled matcher so EmitJSON can re-emit it verbatim.
	ignorePatternSrc string

	EnableTopLevelFallback bool

	// DependencyTreeRoots is the set of locators considered workspace
	// roots, eligible for fallback the same way TOP is.
	DependencyTreeRoots map[Locator]bool

	// ManifestDir is the absolute directory containing the manifest file;
	// every PackageLocation is resolved against it.
	ManifestDir string

	index  *manifestIndex
	logger *slog.Logger
}

// SetLogger attaches logger to m; cache hits/misses in the reverse-lookup
// index and the portal pass-through branch of Resolve are logged through
// it at slog.LevelDebug. A nil Manifest.logger (the default after
// ParseManifest) silently discards these breadcrumbs.
func (m *Manifest) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

func (m *Manifest) log() *slog.Logger {
	if m.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return m.logger
}

// SetCaseSensitive rebuilds m's reverse-lookup index (C3) to compare paths
// case-sensitively or case-insensitively, matching the host filesystem
// (the negation of pnp.Options.CaseInsensitive). ParseManifest defaults to
// case-sensitive; Loader calls this right after parsing, before the
// Manifest is cached and shared, so it is never called concurrently with
// Resolve or FindOwningLocator against the same Manifest.
func (m *Manifest) SetCaseSensitive(caseSensitive bool) {
	m.index = buildIndex(m, caseSensitive)
}

// IgnoreMatcher matches a project-relative path against the manifest's
// ignorePatternData. It is implemented with regexp2 (see parser.go) since
// Yarn's own ignore patterns use JS-only regex features (lookaheads) that
// Go's RE2-based regexp package cannot compile.
type IgnoreMatcher interface {
	MatchString(s string) (bool, error)
}

// packageInfo looks up a locator's PackageInfo; the second return is false
// if the locator isn't in the registry (shouldn't happen for a locator
// obtained from this same Manifest, but callers must not panic on
// untrusted manifests).
func (m *Manifest) packageInfo(loc Locator) (*PackageInfo, bool) {
	byRef, ok := m.PackageRegistry[loc.Ident]
	if !ok {
		return nil, false
	}
	info, ok := byRef[loc.Reference]
	return info, ok
}

// DependenciesOf returns the locators of every package declared as a direct
// dependency of the package that owns path, filtered to those whose ident
// has the given prefix (pass "" for no filtering). Generalizes the common
// "list this package's declared @types/* roots" query to an arbitrary
// ident-prefix filter.
func (m *Manifest) DependenciesOf(path string, identPrefix string) ([]Locator, error) {
	owner, err := m.FindOwningLocator(path)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}

	info, ok := m.packageInfo(*owner)
	if !ok {
		return nil, nil
	}

	var out []Locator
	for ident, dep := range info.PackageDependencies {
		if dep.Missing {
			continue
		}
		if identPrefix != "" && !strings.HasPrefix(string(ident), identPrefix) {
			continue
		}
		out = append(out, dep.Locator(ident))
	}
	return out, nil
}
