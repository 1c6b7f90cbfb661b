package pnp

import "github.com/go-json-experiment/json"

// EmitJSON serializes m back into the bare-JSON form ParseManifest accepts
// (the compact tuple-array schema), the inverse of parsePackageRegistry
// and its siblings. It exists to exercise the round-trip invariant: parsing
// EmitJSON's own output must reproduce an equivalent Manifest (see the
// go-cmp-backed test in manifest_roundtrip_test.go).
func (m *Manifest) EmitJSON() ([]byte, error) {
	raw := map[string]any{
		"enableTopLevelFallback": m.EnableTopLevelFallback,
		"dependencyTreeRoots":    emitDependencyTreeRoots(m.DependencyTreeRoots),
		"fallbackExclusionList":  emitFallbackExclusionList(m.FallbackExclusionList),
		"fallbackPool":           emitFallbackPool(m.FallbackPool),
		"packageRegistryData":    emitPackageRegistry(m.PackageRegistry),
	}
	if m.ignorePatternSrc != "" {
		raw["ignorePatternData"] = m.ignorePatternSrc
	}
	return json.Marshal(raw)
}

func emitDependencyTreeRoots(roots map[Locator]bool) []any {
	out := make([]any, 0, len(roots))
	for loc := range roots {
		out = append(out, map[string]any{
			"name":      string(loc.Ident),
			"reference": string(loc.Reference),
		})
	}
	return out
}

func emitFallbackExclusionList(list map[Locator]bool) []any {
	byIdent := make(map[Ident][]any)
	for loc := range list {
		byIdent[loc.Ident] = append(byIdent[loc.Ident], string(loc.Reference))
	}
	out := make([]any, 0, len(byIdent))
	for ident, refs := range byIdent {
		out = append(out, []any{identOrNull(ident), refs})
	}
	return out
}

func emitFallbackPool(pool map[Ident]DependencyTarget) []any {
	out := make([]any, 0, len(pool))
	for ident, target := range pool {
		out = append(out, []any{string(ident), emitDependencyTarget(target)})
	}
	return out
}

func emitPackageRegistry(registry map[Ident]map[Reference]*PackageInfo) []any {
	out := make([]any, 0, len(registry))
	for ident, byRef := range registry {
		refs := make([]any, 0, len(byRef))
		for ref, info := range byRef {
			refs = append(refs, []any{refOrNull(ref), emitPackageInfo(info)})
		}
		out = append(out, []any{identOrNull(ident), refs})
	}
	return out
}

func emitPackageInfo(info *PackageInfo) map[string]any {
	deps := make([]any, 0, len(info.PackageDependencies))
	for ident, target := range info.PackageDependencies {
		deps = append(deps, []any{string(ident), emitDependencyTarget(target)})
	}

	peers := make([]any, 0, len(info.PackagePeers))
	for ident := range info.PackagePeers {
		peers = append(peers, string(ident))
	}

	linkType := "HARD"
	if info.LinkType == LinkSoft {
		linkType = "SOFT"
	}

	return map[string]any{
		"packageLocation":     info.PackageLocation,
		"packageDependencies": deps,
		"packagePeers":        peers,
		"linkType":            linkType,
		"discardFromLookup":   info.DiscardFromLookup,
	}
}

func emitDependencyTarget(target DependencyTarget) any {
	switch {
	case target.Missing:
		return nil
	case target.IsAlias():
		return []any{string(target.AliasIdent), string(target.Reference)}
	default:
		return string(target.Reference)
	}
}

func identOrNull(ident Ident) any {
	if ident == "" {
		return nil
	}
	return string(ident)
}

func refOrNull(ref Reference) any {
	if ref == "" {
		return nil
	}
	return string(ref)
}
