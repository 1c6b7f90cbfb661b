package pnp

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/go-json-experiment/json"

	"github.com/pnpgo/resolver/internal/tspath"
)

// jsLiteralStartSentinel marks the start of the embedded JSON literal in a
// ".pnp.cjs" loader file; the literal ends at the first ';' after it. The JS
// source on either side is otherwise ignored — extraction is a byte-range
// operation, not a JS parse.
const jsLiteralStartSentinel = "const RAW_RUNTIME_STATE = "

// ParseManifest parses blob (the contents of a .pnp.cjs or .pnp.data.json
// file) into a Manifest, with ManifestDir set to manifestDir. It handles
// both the bare-JSON form and the JS-wrapped form.
//
// Grounded on evanw-esbuild's compileYarnPnPData field-by-field schema walk
// (internal/resolver/yarnpnp.go), adapted from an AST walk to a decoded-
// JSON-tree walk since this module only needs the JSON literal, not full JS
// semantics.
func ParseManifest(blob []byte, manifestDir string) (*Manifest, error) {
	literal, err := extractJSONLiteral(blob)
	if err != nil {
		return nil, &Error{Kind: InvalidManifest, inner: err}
	}

	var raw map[string]any
	if err := json.Unmarshal(literal, &raw); err != nil {
		return nil, &Error{Kind: InvalidManifest, inner: err}
	}

	m := &Manifest{
		PackageRegistry:       make(map[Ident]map[Reference]*PackageInfo),
		FallbackPool:          make(map[Ident]DependencyTarget),
		FallbackExclusionList: make(map[Locator]bool),
		DependencyTreeRoots:   make(map[Locator]bool),
		ManifestDir:           tspath.Normalize(manifestDir),
	}

	if v, ok := raw["enableTopLevelFallback"].(bool); ok {
		m.EnableTopLevelFallback = v
	}

	if v, ok := raw["ignorePatternData"].(string); ok && v != "" {
		pattern, err := regexp2.Compile(v, regexp2.None)
		if err != nil {
			return nil, &Error{Kind: InvalidManifest, inner: fmt.Errorf("ignorePatternData: %w", err)}
		}
		m.IgnorePattern = pattern
		m.ignorePatternSrc = v
	}

	if err := parseDependencyTreeRoots(raw["dependencyTreeRoots"], m); err != nil {
		return nil, err
	}
	if err := parseFallbackExclusionList(raw["fallbackExclusionList"], m); err != nil {
		return nil, err
	}
	if err := parseFallbackPool(raw["fallbackPool"], m); err != nil {
		return nil, err
	}
	if err := parsePackageRegistry(raw["packageRegistryData"], m); err != nil {
		return nil, err
	}

	m.index = buildIndex(m, true)
	return m, nil
}

// extractJSONLiteral returns the JSON literal embedded in blob. If blob
// looks like bare JSON (starts, after whitespace, with '{'), it is returned
// unchanged; otherwise the JS-wrapped form's sentinel is located and the
// literal between it and the first ';' after it is extracted (a ';' inside
// one of the literal's strings therefore ends it early).
func extractJSONLiteral(blob []byte) ([]byte, error) {
	trimmed := strings.TrimSpace(string(blob))
	if strings.HasPrefix(trimmed, "{") {
		return []byte(trimmed), nil
	}

	startIdx := strings.Index(trimmed, jsLiteralStartSentinel)
	if startIdx < 0 {
		return nil, fmt.Errorf("could not locate %q sentinel in manifest", jsLiteralStartSentinel)
	}
	jsonStart := startIdx + len(jsLiteralStartSentinel)

	endOffset := strings.Index(trimmed[jsonStart:], ";")
	if endOffset < 0 {
		return nil, fmt.Errorf("could not locate closing ';' after manifest literal")
	}
	endIdx := jsonStart + endOffset

	return []byte(strings.TrimSpace(trimmed[jsonStart:endIdx])), nil
}

func parseDependencyTreeRoots(raw any, m *Manifest) error {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := obj["name"].(string)
		reference, _ := obj["reference"].(string)
		m.DependencyTreeRoots[Locator{Ident: Ident(name), Reference: Reference(reference)}] = true
	}
	return nil
}

func parseFallbackExclusionList(raw any, m *Manifest) error {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	for _, item := range items {
		tuple, ok := item.([]any)
		if !ok || len(tuple) != 2 {
			continue
		}
		ident, ok := stringOrNull(tuple[0])
		if !ok {
			continue
		}
		refs, ok := tuple[1].([]any)
		if !ok {
			continue
		}
		for _, r := range refs {
			ref, ok := r.(string)
			if !ok {
				continue
			}
			m.FallbackExclusionList[Locator{Ident: Ident(ident), Reference: Reference(ref)}] = true
		}
	}
	return nil
}

func parseFallbackPool(raw any, m *Manifest) error {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	for _, item := range items {
		tuple, ok := item.([]any)
		if !ok || len(tuple) != 2 {
			continue
		}
		ident, ok := tuple[0].(string)
		if !ok {
			continue
		}
		target, ok := parseDependencyTarget(tuple[1])
		if !ok {
			continue
		}
		m.FallbackPool[Ident(ident)] = target
	}
	return nil
}

func parsePackageRegistry(raw any, m *Manifest) error {
	items, ok := raw.([]any)
	if !ok {
		return &Error{Kind: InvalidManifest, inner: fmt.Errorf("packageRegistryData missing or malformed")}
	}

	for _, item := range items {
		tuple, ok := item.([]any)
		if !ok || len(tuple) != 2 {
			return &Error{Kind: InvalidManifest, inner: fmt.Errorf("packageRegistryData entry malformed")}
		}
		ident, ok := stringOrNull(tuple[0])
		if !ok {
			return &Error{Kind: InvalidManifest, inner: fmt.Errorf("packageRegistryData ident malformed")}
		}

		refs, ok := tuple[1].([]any)
		if !ok {
			return &Error{Kind: InvalidManifest, inner: fmt.Errorf("packageRegistryData references malformed for %q", ident)}
		}

		byRef, exists := m.PackageRegistry[Ident(ident)]
		if !exists {
			byRef = make(map[Reference]*PackageInfo)
			m.PackageRegistry[Ident(ident)] = byRef
		}

		for _, refItem := range refs {
			refTuple, ok := refItem.([]any)
			if !ok || len(refTuple) != 2 {
				return &Error{Kind: InvalidManifest, inner: fmt.Errorf("packageRegistryData reference entry malformed for %q", ident)}
			}
			reference, ok := stringOrNull(refTuple[0])
			if !ok {
				return &Error{Kind: InvalidManifest, inner: fmt.Errorf("packageRegistryData reference malformed for %q", ident)}
			}

			info, err := parsePackageInfo(refTuple[1])
			if err != nil {
				return err
			}
			byRef[Reference(reference)] = info
		}
	}

	return nil
}

func parsePackageInfo(raw any) (*PackageInfo, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &Error{Kind: InvalidManifest, inner: fmt.Errorf("package info malformed")}
	}

	location, _ := obj["packageLocation"].(string)
	info := &PackageInfo{
		PackageLocation:     tspath.EnsureTrailingSeparator(location),
		PackageDependencies: make(map[Ident]DependencyTarget),
		PackagePeers:        make(map[Ident]bool),
	}

	if deps, ok := obj["packageDependencies"].([]any); ok {
		for _, depItem := range deps {
			depTuple, ok := depItem.([]any)
			if !ok || len(depTuple) != 2 {
				continue
			}
			depIdent, ok := depTuple[0].(string)
			if !ok {
				continue
			}
			target, ok := parseDependencyTarget(depTuple[1])
			if !ok {
				continue
			}
			info.PackageDependencies[Ident(depIdent)] = target
		}
	}

	if peers, ok := obj["packagePeers"].([]any); ok {
		for _, p := range peers {
			if s, ok := p.(string); ok {
				info.PackagePeers[Ident(s)] = true
			}
		}
	}

	switch strings.ToUpper(stringDefault(obj["linkType"], "HARD")) {
	case "SOFT":
		info.LinkType = LinkSoft
	default:
		info.LinkType = LinkHard
	}

	if v, ok := obj["discardFromLookup"].(bool); ok {
		info.DiscardFromLookup = v
	}

	return info, nil
}

// parseDependencyTarget parses the value side of a packageDependencies or
// fallbackPool entry: null (missing peer), a string (reference), or a
// 2-element array (aliased locator).
func parseDependencyTarget(raw any) (DependencyTarget, bool) {
	switch v := raw.(type) {
	case nil:
		return DependencyTarget{Missing: true}, true
	case string:
		return DependencyTarget{Reference: Reference(v)}, true
	case []any:
		if len(v) != 2 {
			return DependencyTarget{}, false
		}
		alias, ok1 := v[0].(string)
		ref, ok2 := v[1].(string)
		if !ok1 || !ok2 {
			return DependencyTarget{}, false
		}
		return DependencyTarget{AliasIdent: Ident(alias), Reference: Reference(ref)}, true
	}
	return DependencyTarget{}, false
}

func stringOrNull(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	}
	return "", false
}

func stringDefault(raw any, def string) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return def
}
