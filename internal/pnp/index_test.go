package pnp_test

import (
	"testing"

	"github.com/pnpgo/resolver/internal/pnp"
	"gotest.tools/v3/assert"
)

func buildTestManifest(t *testing.T) *pnp.Manifest {
	t.Helper()
	m, err := pnp.ParseManifest([]byte(sampleManifestJSON), "/project")
	assert.NilError(t, err)
	return m
}

func TestFindOwningLocator_ExactPackageRoot(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)

	loc, err := m.FindOwningLocator("/project/.yarn/cache/lodash-npm-4.17.21/node_modules/lodash/index.js")
	assert.NilError(t, err)
	assert.Assert(t, loc != nil)
	assert.Equal(t, *loc, pnp.Locator{Ident: "lodash", Reference: "npm:4.17.21"})
}

func TestFindOwningLocator_TopLevel(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)

	loc, err := m.FindOwningLocator("/project/src/index.js")
	assert.NilError(t, err)
	assert.Assert(t, loc != nil)
	assert.Equal(t, loc.IsTop(), true)
}

func TestFindOwningLocator_OutsideTree(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)

	loc, err := m.FindOwningLocator("/somewhere/else/file.js")
	assert.NilError(t, err)
	assert.Assert(t, loc == nil)
}

func TestFindOwningLocator_CachedLookupMatchesFresh(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)

	path := "/project/.yarn/cache/real-pkg-npm-2.0.0/node_modules/real-pkg/lib/x.js"
	first, err := m.FindOwningLocator(path)
	assert.NilError(t, err)
	second, err := m.FindOwningLocator(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, first, second)
}

func TestDependenciesOf_FiltersMissingAndPrefix(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)

	deps, err := m.DependenciesOf("/project/src/index.js", "")
	assert.NilError(t, err)

	var hasLodash, hasLeftPad, hasAliased bool
	for _, d := range deps {
		switch {
		case d.Ident == "lodash":
			hasLodash = true
		case d.Ident == "left-pad":
			hasLeftPad = true
		case d.Ident == "real-pkg":
			hasAliased = true
		}
	}
	assert.Assert(t, hasLodash)
	assert.Assert(t, !hasLeftPad, "missing peer dependency must be excluded")
	assert.Assert(t, hasAliased, "aliased dependency target resolves to its alias ident")
}

func TestFindOwningLocator_CaseSensitiveByDefault(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)

	loc, err := m.FindOwningLocator("/project/.yarn/cache/LODASH-npm-4.17.21/node_modules/lodash/index.js")
	assert.NilError(t, err)
	assert.Assert(t, loc == nil, "a differently-cased path must not match under the case-sensitive default")
}

func TestFindOwningLocator_CaseInsensitiveFoldsQueryAndRegisteredPaths(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)
	m.SetCaseSensitive(false)

	loc, err := m.FindOwningLocator("/PROJECT/.yarn/cache/Lodash-npm-4.17.21/node_modules/lodash/index.js")
	assert.NilError(t, err)
	assert.Assert(t, loc != nil)
	assert.Equal(t, *loc, pnp.Locator{Ident: "lodash", Reference: "npm:4.17.21"})
}
