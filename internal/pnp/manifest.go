package pnp

import (
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/pnpgo/resolver/internal/tspath"
	"github.com/pnpgo/resolver/internal/vfs"
	"github.com/pnpgo/resolver/internal/vfs/zipvfs"
)

// isPortal reports whether loc's own PackageInfo is a SOFT link (a portal).
func (m *Manifest) isPortal(loc Locator) bool {
	info, ok := m.packageInfo(loc)
	return ok && info.LinkType == LinkSoft
}

// ResolutionKind classifies what Resolve found: a concrete file PnP is
// authoritative over, a Node builtin, or a specifier PnP has no opinion on
// (relative/absolute paths, URLs, and anything matched by ignorePatternData)
// that the caller should hand to ordinary filesystem-based resolution.
type ResolutionKind int

const (
	ResolutionFile ResolutionKind = iota
	ResolutionBuiltin
	ResolutionBypass
)

// Resolution is the result of a successful Resolve call.
type Resolution struct {
	Kind ResolutionKind

	// Path is the absolute resolved file (Kind == ResolutionFile) or the
	// original specifier, unchanged, for the caller to resolve itself
	// (Kind == ResolutionBypass).
	Path string

	// Builtin is the canonical builtin module name with any "node:"
	// prefix stripped (Kind == ResolutionBuiltin).
	Builtin string
}

// DefaultConditions is the condition set Resolve uses when the caller
// doesn't supply one: a CommonJS Node runtime evaluating "require".
var DefaultConditions = map[string]bool{
	"node":    true,
	"require": true,
	"default": true,
}

// Resolve implements the full resolve operation: classify specifier, and
// if it's a bare specifier PnP is authoritative over, walk locator
// resolution (including fallback) and qualified-path probing to a
// concrete file.
//
// parentFile is the absolute path of the file issuing the request; it is
// used both to find the issuing package (via the manifest index, C3) and
// to evaluate ignorePatternData.
func (m *Manifest) Resolve(fs vfs.FS, parentFile string, specifier string, conditions map[string]bool) (Resolution, error) {
	if conditions == nil {
		conditions = DefaultConditions
	}

	if IsBuiltin(specifier) {
		return Resolution{Kind: ResolutionBuiltin, Builtin: TrimBuiltinPrefix(specifier)}, nil
	}

	if m.IgnorePattern != nil {
		ignored, err := m.IgnorePattern.MatchString(tspath.Rel(m.ManifestDir, parentFile))
		if err != nil {
			return Resolution{}, &Error{Kind: InvalidManifest, inner: err}
		}
		if ignored {
			return Resolution{Kind: ResolutionBypass, Path: specifier}, nil
		}
	}

	if !IsBareSpecifier(specifier) {
		return Resolution{Kind: ResolutionBypass, Path: specifier}, nil
	}

	ident, rest := ParseBareIdentifier(specifier)

	// A request issued from inside a virtual package copy must be
	// classified by the real physical package it's a virtual instance of,
	// not by the synthetic "/__virtual__/<hash>/<depth>/..." path itself,
	// which the manifest index (C3) never registers a locator for.
	classifyFrom := parentFile
	if zipvfs.IsVirtualPath(parentFile) {
		if real, _, _ := zipvfs.ResolveVirtual(parentFile); real != "" {
			classifyFrom = real
		}
	}

	issuer := Top
	if owner, err := m.FindOwningLocator(classifyFrom); err == nil && owner != nil {
		issuer = *owner
	}

	loc, err := m.ResolveToLocator(issuer, ident, specifier, parentFile)
	if err != nil {
		var pnpErr *Error
		if errors.As(err, &pnpErr) && pnpErr.Kind == UndeclaredDependency && m.isPortal(issuer) {
			// Portals are plain symlinked directories that may not be PnP-
			// compliant themselves; an undeclared dependency from inside one
			// isn't this resolver's problem to enforce, so bypass instead of
			// failing the whole request.
			m.log().Debug("pnp: portal pass-through, bypassing undeclared dependency", "issuer", issuer.String(), "specifier", specifier)
			return Resolution{Kind: ResolutionBypass, Path: specifier}, nil
		}
		return Resolution{}, err
	}

	root, err := m.PackageLocation(loc)
	if err != nil {
		return Resolution{}, err
	}

	resolved, err := m.ResolveQualified(fs, root, rest, specifier, conditions)
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{Kind: ResolutionFile, Path: resolved}, nil
}

// loader caches parsed manifests keyed by manifest file path, so repeated
// LoadManifest calls against the same project (the common case: one
// resolver instance serving many resolve calls) reparse at most once, and
// concurrent first loads of the same path share a single parse via
// singleflight rather than racing (manifests are immutable once built, so
// sharing one is safe).
//
// Caches live on an explicit Loader value rather than a package-level
// global, so tests (and multiple independent resolvers in one process)
// don't share state through a singleton.
type Loader struct {
	fs      vfs.FS
	options Options

	mu    sync.RWMutex
	cache map[string]*Manifest

	group singleflight.Group
}

// NewLoader constructs a Loader that reads manifest files through fs, using
// DefaultOptions().
func NewLoader(fs vfs.FS) *Loader {
	return NewLoaderWithOptions(fs, DefaultOptions())
}

// NewLoaderWithOptions is NewLoader with caller-supplied Options (notably a
// non-discard Logger).
func NewLoaderWithOptions(fs vfs.FS, options Options) *Loader {
	return &Loader{
		fs:      fs,
		options: options,
		cache:   make(map[string]*Manifest),
	}
}

// LoadManifest parses and caches the manifest at manifestPath, or returns
// the cached Manifest from a prior call against the same path.
func (l *Loader) LoadManifest(manifestPath string) (*Manifest, error) {
	key := tspath.Normalize(manifestPath)

	l.mu.RLock()
	if m, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return m, nil
	}
	l.mu.RUnlock()

	v, err, _ := l.group.Do(key, func() (any, error) {
		l.mu.RLock()
		if m, ok := l.cache[key]; ok {
			l.mu.RUnlock()
			return m, nil
		}
		l.mu.RUnlock()

		blob, ok := l.fs.ReadFile(key)
		if !ok {
			return nil, &Error{Kind: IoError, Parent: key}
		}

		dir, _ := tspath.Split(key)
		m, err := ParseManifest([]byte(blob), dir)
		if err != nil {
			return nil, err
		}
		m.SetLogger(l.options.logger())
		m.SetCaseSensitive(!l.options.CaseInsensitive)

		packageCount := 0
		for _, byRef := range m.PackageRegistry {
			packageCount += len(byRef)
		}
		l.options.logger().Debug("pnp: manifest loaded", "path", key, "packageCount", packageCount)

		l.mu.Lock()
		l.cache[key] = m
		l.mu.Unlock()

		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Manifest), nil
}

// Reload forces manifestPath to be re-read and re-parsed on its next
// LoadManifest call, discarding any cached Manifest. Reload is always
// caller-invoked, typically in response to a package-manager install
// completing; this module never watches the filesystem on its own.
func (l *Loader) Reload(manifestPath string) {
	key := tspath.Normalize(manifestPath)
	l.mu.Lock()
	delete(l.cache, key)
	l.mu.Unlock()
}

// FindClosestManifestPath is a thin re-export of tspath's implementation,
// kept here so callers only need to import the pnp package for the whole
// public surface.
func FindClosestManifestPath(start string, names []string) (string, bool) {
	return tspath.FindClosestManifestPath(start, names)
}
