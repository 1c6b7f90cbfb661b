// Package nodeexports implements the subset of Node's package.json
// "exports"/"imports" conditional-resolution algorithm: given a decoded
// exports field, a request ("." or "./subpath"), and an active condition
// set, return the resolved relative path or report no match.
//
// This package exists so the path resolver can delegate "exports" field
// evaluation to a dedicated helper rather than reimplementing it inline.
// It is modeled on evanw-esbuild's internal/resolver/package_json.go peMap
// walk, simplified to the subset a CommonJS-focused resolver actually
// drives — esbuild's version also carries esbuild-specific concerns (the
// "browser" field, bundler platform conditions) this package has
// no use for.
package nodeexports

import "strings"

// Resolver is the interface C6 (internal/pnp) consumes; Resolve (below) is
// its only implementation in this module, but the interface exists so
// tests can substitute a mock (see exportstest) rather than constructing a
// package.json exports tree for every case.
//
//go:generate moq -out exportstest/resolver_mock.go -pkg exportstest . Resolver
type Resolver interface {
	Resolve(exportsField any, request string, conditions map[string]bool) (string, bool)
}

// Func adapts Resolve's own signature to the Resolver interface.
type Func func(exportsField any, request string, conditions map[string]bool) (string, bool)

func (f Func) Resolve(exportsField any, request string, conditions map[string]bool) (string, bool) {
	return f(exportsField, request, conditions)
}

// DefaultResolver is the package-level Resolve function exposed as a Resolver.
var DefaultResolver Resolver = Func(Resolve)

// Resolve evaluates exportsField (the already-JSON-decoded "exports" value
// from a package.json — string, []any, or map[string]any) against request
// ("." or "./subpath") and the active conditions, returning the resolved
// relative subpath (without a leading "./") on success.
func Resolve(exportsField any, request string, conditions map[string]bool) (string, bool) {
	if exportsField == nil {
		return "", false
	}

	request = normalizeRequest(request)

	switch v := exportsField.(type) {
	case string:
		if request != "." {
			return "", false
		}
		return resolveConditions(v, conditions)

	case []any:
		if request != "." {
			return "", false
		}
		return resolveConditions(v, conditions)

	case map[string]any:
		if isSubpathMap(v) {
			target, ok := matchSubpath(v, request)
			if !ok {
				return "", false
			}
			return resolveConditions(target, conditions)
		}
		if request != "." {
			return "", false
		}
		return resolveConditions(v, conditions)
	}

	return "", false
}

func normalizeRequest(request string) string {
	if request == "" || request == "/" {
		return "."
	}
	if !strings.HasPrefix(request, ".") {
		request = "./" + strings.TrimPrefix(request, "/")
	}
	return request
}

// isSubpathMap reports whether m's keys are themselves subpaths ("." or
// "./foo", "#foo") rather than condition names ("import", "require",
// "default", ...). Node requires a package.json's "exports" map to be
// either all-subpaths or all-conditions, never mixed.
func isSubpathMap(m map[string]any) bool {
	for k := range m {
		return strings.HasPrefix(k, ".") || strings.HasPrefix(k, "#")
	}
	return false
}

// matchSubpath finds the best match for request among m's subpath keys:
// an exact match wins; otherwise the longest pattern ending in "/*" or "*"
// whose fixed prefix matches request is used, with "*" substituted by the
// remainder of request.
func matchSubpath(m map[string]any, request string) (any, bool) {
	if target, ok := m[request]; ok {
		return target, true
	}

	var bestKey string
	var bestTarget any
	found := false

	for key, target := range m {
		prefix, hasStar := splitPattern(key)
		if !hasStar || !strings.HasPrefix(request, prefix) {
			continue
		}
		if !found || len(prefix) > len(bestKey) {
			bestKey = prefix
			bestTarget = target
			found = true
		}
	}

	if !found {
		return nil, false
	}

	remainder := strings.TrimPrefix(request, bestKey)
	return substituteStar(bestTarget, remainder), true
}

func splitPattern(key string) (prefix string, hasStar bool) {
	if idx := strings.Index(key, "*"); idx >= 0 {
		return key[:idx], true
	}
	return "", false
}

func substituteStar(target any, remainder string) any {
	switch v := target.(type) {
	case string:
		return strings.ReplaceAll(v, "*", remainder)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = substituteStar(item, remainder)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = substituteStar(item, remainder)
		}
		return out
	default:
		return target
	}
}

// resolveConditions walks a conditions tree (string leaf, array of
// fallback alternatives, or condition-name -> subtree map) and returns the
// first successfully-resolved leaf.
func resolveConditions(node any, conditions map[string]bool) (string, bool) {
	switch v := node.(type) {
	case nil:
		return "", false

	case string:
		return strings.TrimPrefix(v, "./"), true

	case []any:
		for _, alt := range v {
			if result, ok := resolveConditions(alt, conditions); ok {
				return result, true
			}
		}
		return "", false

	case map[string]any:
		for _, key := range orderedKeys(v) {
			if key == "default" || conditions[key] {
				if result, ok := resolveConditions(v[key], conditions); ok {
					return result, true
				}
			}
		}
		return "", false
	}

	return "", false
}

// orderedKeys approximates Node's condition-precedence evaluation without
// depending on JSON object key order, which Go's map type does not
// preserve: "default" is always tried last (Node defines it to be
// the catch-all), and every other condition is tried in whatever order the
// map yields. This is a documented simplification: a package.json
// declaring two non-default conditions that both match, with both present
// in the active condition set, is not a case C6's callers are expected to
// rely on for ordering — only "default" is required to act as the
// fallback.
func orderedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	var defaultKey string
	hasDefault := false
	for k := range m {
		if k == "default" {
			defaultKey = k
			hasDefault = true
			continue
		}
		keys = append(keys, k)
	}
	if hasDefault {
		keys = append(keys, defaultKey)
	}
	return keys
}
