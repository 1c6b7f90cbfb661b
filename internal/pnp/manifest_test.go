package pnp_test

import (
	"errors"
	"testing"

	"github.com/pnpgo/resolver/internal/pnp"
	"github.com/pnpgo/resolver/internal/vfs/vfstest"
	"gotest.tools/v3/assert"
)

func TestResolve_BuiltinShortCircuits(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)
	fs := vfstest.FromMap(nil, true)

	res, err := m.Resolve(fs, "/project/src/index.js", "node:fs", nil)
	assert.NilError(t, err)
	assert.Equal(t, res.Kind, pnp.ResolutionBuiltin)
	assert.Equal(t, res.Builtin, "fs")
}

func TestResolve_RelativeSpecifierBypasses(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)
	fs := vfstest.FromMap(nil, true)

	res, err := m.Resolve(fs, "/project/src/index.js", "./sibling.js", nil)
	assert.NilError(t, err)
	assert.Equal(t, res.Kind, pnp.ResolutionBypass)
	assert.Equal(t, res.Path, "./sibling.js")
}

func TestResolve_BareDependencyToFile(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)
	fs := vfstest.FromMap(map[string]string{
		"/project/.yarn/cache/lodash-npm-4.17.21/node_modules/lodash/index.js": "module.exports = {};",
	}, true)

	res, err := m.Resolve(fs, "/project/src/index.js", "lodash", nil)
	assert.NilError(t, err)
	assert.Equal(t, res.Kind, pnp.ResolutionFile)
	assert.Equal(t, res.Path, "/project/.yarn/cache/lodash-npm-4.17.21/node_modules/lodash/index.js")
}

func TestResolve_MissingPeerDependencyErrors(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)
	fs := vfstest.FromMap(nil, true)

	_, err := m.Resolve(fs, "/project/src/index.js", "left-pad", nil)
	assert.ErrorContains(t, err, "peer dependency")
}

func TestResolve_PortalBypassesUndeclaredDependency(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)
	fs := vfstest.FromMap(nil, true)

	portalFile := "/project/../portal-pkg/src/index.js"
	res, err := m.Resolve(fs, portalFile, "some-unlisted-dep", nil)
	assert.NilError(t, err)
	assert.Equal(t, res.Kind, pnp.ResolutionBypass)
	assert.Equal(t, res.Path, "some-unlisted-dep")
}

// TestResolve_StripsVirtualSegmentForIssuerClassification covers a request
// issued from a "/__virtual__/..."
// path must be classified against its real, physical owning package (here,
// lodash), not whatever directory textually precedes the virtual segment
// (here, nested-pkg, whose own declared dependency on "unique-dep" would
// resolve immediately if the issuer were misclassified).
func TestResolve_StripsVirtualSegmentForIssuerClassification(t *testing.T) {
	t.Parallel()
	m := buildTestManifest(t)
	fs := vfstest.FromMap(nil, true)

	virtualParent := "/project/.yarn/cache/lodash-npm-4.17.21/node_modules/lodash/node_modules/nested-pkg/__virtual__/abc123/1/index.js"

	_, err := m.Resolve(fs, virtualParent, "unique-dep", nil)
	assert.Assert(t, err != nil)

	var perr *pnp.Error
	assert.Assert(t, errors.As(err, &perr))
	assert.Equal(t, perr.Kind, pnp.UndeclaredDependency,
		"issuer must resolve to lodash (no unique-dep dependency), not nested-pkg")
}

func TestLoader_CachesAcrossCalls(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/project/.pnp.data.json": sampleManifestJSON,
	}, true)

	loader := pnp.NewLoader(fs)

	m1, err := loader.LoadManifest("/project/.pnp.data.json")
	assert.NilError(t, err)
	m2, err := loader.LoadManifest("/project/.pnp.data.json")
	assert.NilError(t, err)
	assert.Assert(t, m1 == m2, "repeated loads of the same path must return the cached manifest")

	loader.Reload("/project/.pnp.data.json")
	m3, err := loader.LoadManifest("/project/.pnp.data.json")
	assert.NilError(t, err)
	assert.Assert(t, m1 != m3, "Reload must force a fresh parse")
}

func TestFindClosestManifestPath_NotFound(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, ok := pnp.FindClosestManifestPath(dir, nil)
	assert.Assert(t, !ok)
}
