package pnp

import (
	"github.com/go-json-experiment/json"

	"github.com/pnpgo/resolver/internal/nodeexports"
	"github.com/pnpgo/resolver/internal/tspath"
	"github.com/pnpgo/resolver/internal/vfs"
)

// extensionCandidates lists the extensions probed, in order, when a
// resolved path names a file with no extension. Mirrors Node's own
// require.extensions precedence.
var extensionCandidates = []string{".js", ".json", ".node"}

// indexBasenames lists the index-file basenames probed when a resolved
// path names a directory with no "main"/"exports" field to consult.
var indexBasenames = []string{"index.js", "index.json", "index.node"}

// PackageLocation returns the absolute, normalized directory of loc within
// m (PackageLocation is relative to ManifestDir; TOP's location is
// ManifestDir itself, per the open question resolved in DESIGN.md).
func (m *Manifest) PackageLocation(loc Locator) (string, error) {
	if loc.IsTop() {
		return tspath.EnsureTrailingSeparator(m.ManifestDir), nil
	}
	info, ok := m.packageInfo(loc)
	if !ok {
		return "", &Error{Kind: UndeclaredDependency, Ident: loc.Ident, Parent: loc.String()}
	}
	return tspath.EnsureTrailingSeparator(tspath.Join(m.ManifestDir, info.PackageLocation)), nil
}

// ResolveQualified implements C6: turn an unqualified path into a concrete
// file on disk, probing extensions, package.json main/exports, and index
// files in Node's own precedence order. fs is consulted for existence
// checks only; it is expected to already transparently descend into ZIP
// storage (C4) when the path crosses a ".zip"-like boundary.
//
// root is the package's own directory (where its package.json lives) and
// rest is the subpath requested past the package ident ("" for the package
// root itself); unqualified is tspath.Join(root, rest) and is what
// extension/index probing is run against. Keeping root and rest separate
// from the joined path matters because package.json and its "exports" map
// always live at the package root, never at a subpath of it: joining them
// first would make resolvePackageJSONEntry look for package.json inside
// the subpath directory, and would forget the actual subpath request by
// the time nodeexports.Resolve is called.
func (m *Manifest) ResolveQualified(fs vfs.FS, root string, rest string, specifier string, conditions map[string]bool) (string, error) {
	unqualified := root
	if rest != "" {
		unqualified = tspath.Join(root, rest)
	}

	var candidates []string

	try := func(p string) (string, bool) {
		candidates = append(candidates, p)
		return p, fs.FileExists(p)
	}

	// A subpath request goes through the root package.json's "exports" map
	// (if any) before the literal subpath is probed.
	if rest != "" {
		if resolved, err := m.resolvePackageJSONEntry(fs, root, rest, specifier, conditions, &candidates); err != nil {
			return "", err
		} else if resolved != "" {
			return resolved, nil
		}
	}

	if p, ok := try(unqualified); ok {
		return p, nil
	}

	for _, ext := range extensionCandidates {
		if p, ok := try(unqualified + ext); ok {
			return p, nil
		}
	}

	if fs.DirectoryExists(unqualified) {
		if rest == "" {
			if resolved, err := m.resolvePackageJSONEntry(fs, root, rest, specifier, conditions, &candidates); err != nil {
				return "", err
			} else if resolved != "" {
				return resolved, nil
			}
		}

		for _, base := range indexBasenames {
			if p, ok := try(tspath.Join(unqualified, base)); ok {
				return p, nil
			}
		}
	}

	return "", &Error{
		Kind:       QualifiedPathResolutionFailed,
		Specifier:  specifier,
		Parent:     unqualified,
		Candidates: candidates,
	}
}

// resolvePackageJSONEntry reads <root>/package.json (if present) and
// resolves its "exports" field (preferred) or "main" field against rest,
// the subpath requested past the package ident. Returns ("", nil) — not an
// error — if there's no package.json or neither field applies, so the
// caller falls through to index-file probing. Only applies to rest == ""
// (the package root itself, eligible for "main"); a non-empty rest is
// handled exclusively through "exports", since Node never consults "main"
// for a subpath import.
func (m *Manifest) resolvePackageJSONEntry(fs vfs.FS, root string, rest string, specifier string, conditions map[string]bool, candidates *[]string) (string, error) {
	manifestPath := tspath.Join(root, "package.json")
	*candidates = append(*candidates, manifestPath)
	if !fs.FileExists(manifestPath) {
		return "", nil
	}

	data, ok := fs.ReadFile(manifestPath)
	if !ok {
		return "", &Error{Kind: IoError, Parent: manifestPath}
	}

	var pkg struct {
		Main    string `json:"main"`
		Exports any    `json:"exports"`
	}
	if err := json.Unmarshal([]byte(data), &pkg); err != nil {
		// A malformed package.json doesn't abort resolution; it just
		// can't contribute a main/exports entry.
		return "", nil
	}

	if pkg.Exports != nil {
		request := "."
		if rest != "" {
			request = "./" + rest
		}
		subpath, ok := nodeexports.Resolve(pkg.Exports, request, conditions)
		if ok {
			candidate := tspath.Join(root, subpath)
			*candidates = append(*candidates, candidate)
			if fs.FileExists(candidate) {
				return candidate, nil
			}
		}
		ident, _ := ParseBareIdentifier(specifier)
		return "", &Error{Kind: ExportsNotFound, Ident: ident, Specifier: specifier, Parent: root}
	}

	if rest != "" {
		return "", nil
	}

	if pkg.Main != "" {
		candidate := tspath.Join(root, pkg.Main)
		*candidates = append(*candidates, candidate)
		if fs.FileExists(candidate) {
			return candidate, nil
		}
		for _, ext := range extensionCandidates {
			if fs.FileExists(candidate + ext) {
				*candidates = append(*candidates, candidate+ext)
				return candidate + ext, nil
			}
		}
	}

	return "", nil
}
