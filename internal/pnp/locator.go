package pnp

import "strings"

// ParseBareIdentifier splits a bare specifier (e.g. "lodash",
// "@scope/pkg/sub/path", "lodash/fp") into its package ident and the
// remainder of the request (the part after the package name, with no
// leading separator; "" if the specifier names the package root).
//
// A specifier belongs to a scoped package when it starts with "@": the
// ident is then the first two "/"-separated segments; otherwise the ident
// is just the first segment.
func ParseBareIdentifier(specifier string) (ident Ident, rest string) {
	if specifier == "" {
		return "", ""
	}

	segments := strings.SplitN(specifier, "/", 3)

	if strings.HasPrefix(specifier, "@") {
		if len(segments) < 2 {
			return Ident(specifier), ""
		}
		identStr := segments[0] + "/" + segments[1]
		if len(segments) == 3 {
			return Ident(identStr), segments[2]
		}
		return Ident(identStr), ""
	}

	if len(segments) == 1 {
		return Ident(specifier), ""
	}
	return Ident(segments[0]), strings.Join(segments[1:], "/")
}

// IsBareSpecifier reports whether specifier is a bare module request (as
// opposed to relative, absolute, or URL-like) and therefore subject to PnP
// resolution at all.
func IsBareSpecifier(specifier string) bool {
	if specifier == "" {
		return false
	}
	if strings.HasPrefix(specifier, ".") || strings.HasPrefix(specifier, "/") {
		return false
	}
	if IsBuiltin(specifier) {
		return false
	}
	if strings.Contains(specifier, "://") {
		return false
	}
	return true
}

// ResolveToLocator implements C5: given the locator that owns the
// requesting file (issuer) and a bare specifier, find the locator the
// specifier's package ident resolves to.
//
// Resolution order:
//  1. the issuer's own packageDependencies map;
//  2. if unset there, fallback is enabled (the issuer is TOP with
//     enableTopLevelFallback set, or is a dependency-tree root), and the
//     issuer isn't in the fallback exclusion list: the top-level
//     dependencies, then the global fallback pool as a last resort for
//     packages used but never formally declared anywhere (covers
//     hoisted/implicit dependencies).
//
// An issuer that doesn't qualify for fallback never consults the fallback
// pool either: a miss in its own dependencies is an immediate
// UndeclaredDependency.
//
// See DESIGN.md for the reasoning behind this dependency-then-fallback
// ordering and the exclusion-list short-circuit.
func (m *Manifest) ResolveToLocator(issuer Locator, ident Ident, specifier string, parent string) (Locator, error) {
	issuerInfo, ok := m.packageInfo(issuer)
	if !ok {
		return Locator{}, &Error{Kind: UndeclaredDependency, Ident: ident, Parent: parent, Specifier: specifier}
	}

	if dep, ok := issuerInfo.PackageDependencies[ident]; ok {
		if dep.Missing {
			return Locator{}, &Error{Kind: MissingPeerDependency, Ident: ident, Parent: parent, Specifier: specifier}
		}
		return dep.Locator(ident), nil
	}

	if m.FallbackExclusionList[issuer] {
		return Locator{}, &Error{Kind: UndeclaredDependency, Ident: ident, Parent: parent, Specifier: specifier}
	}

	if (issuer.IsTop() && m.EnableTopLevelFallback) || m.DependencyTreeRoots[issuer] {
		if topInfo, ok := m.packageInfo(Top); ok {
			if dep, ok := topInfo.PackageDependencies[ident]; ok {
				if dep.Missing {
					return Locator{}, &Error{Kind: MissingPeerDependency, Ident: ident, Parent: parent, Specifier: specifier}
				}
				return dep.Locator(ident), nil
			}
		}

		if dep, ok := m.FallbackPool[ident]; ok {
			if dep.Missing {
				return Locator{}, &Error{Kind: MissingPeerDependency, Ident: ident, Parent: parent, Specifier: specifier}
			}
			return dep.Locator(ident), nil
		}
	}

	return Locator{}, &Error{Kind: UndeclaredDependency, Ident: ident, Parent: parent, Specifier: specifier}
}
