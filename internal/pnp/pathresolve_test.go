package pnp_test

import (
	"errors"
	"testing"

	"github.com/pnpgo/resolver/internal/pnp"
	"github.com/pnpgo/resolver/internal/vfs/vfstest"
	"gotest.tools/v3/assert"
)

func TestResolveQualified_ExactMatch(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/project/lib/thing.js": "module.exports = {};",
	}, true)

	m := buildTestManifest(t)
	resolved, err := m.ResolveQualified(fs, "/project/lib/thing.js", "", "thing", pnp.DefaultConditions)
	assert.NilError(t, err)
	assert.Equal(t, resolved, "/project/lib/thing.js")
}

func TestResolveQualified_ExtensionProbing(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/project/lib/thing.js": "module.exports = {};",
	}, true)

	m := buildTestManifest(t)
	resolved, err := m.ResolveQualified(fs, "/project/lib/thing", "", "thing", pnp.DefaultConditions)
	assert.NilError(t, err)
	assert.Equal(t, resolved, "/project/lib/thing.js")
}

func TestResolveQualified_IndexFile(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/project/lib/index.js": "module.exports = {};",
	}, true)

	m := buildTestManifest(t)
	resolved, err := m.ResolveQualified(fs, "/project/lib", "", "lib", pnp.DefaultConditions)
	assert.NilError(t, err)
	assert.Equal(t, resolved, "/project/lib/index.js")
}

func TestResolveQualified_PackageJSONMain(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/project/lib/package.json": `{"main": "./dist/entry.js"}`,
		"/project/lib/dist/entry.js": "module.exports = {};",
	}, true)

	m := buildTestManifest(t)
	resolved, err := m.ResolveQualified(fs, "/project/lib", "", "lib", pnp.DefaultConditions)
	assert.NilError(t, err)
	assert.Equal(t, resolved, "/project/lib/dist/entry.js")
}

func TestResolveQualified_PackageJSONExports(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/project/lib/package.json": `{"exports": {".": {"require": "./cjs/index.js", "default": "./cjs/index.js"}}}`,
		"/project/lib/cjs/index.js": "module.exports = {};",
	}, true)

	m := buildTestManifest(t)
	resolved, err := m.ResolveQualified(fs, "/project/lib", "", "lib", pnp.DefaultConditions)
	assert.NilError(t, err)
	assert.Equal(t, resolved, "/project/lib/cjs/index.js")
}

// TestResolveQualified_PackageJSONExportsSubpath covers a subpath import
// (e.g. "lib/fp" -> root "/project/lib", rest "fp") against an exports map
// with multiple subpath keys: package.json must still be read from the
// package root, and the actual subpath ("./fp"), not ".", must be the
// request handed to the exports evaluator.
func TestResolveQualified_PackageJSONExportsSubpath(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/project/lib/package.json": `{"exports": {
			".": "./cjs/index.js",
			"./fp": "./cjs/fp.js",
			"./fp/*": "./cjs/fp/*.js"
		}}`,
		"/project/lib/cjs/index.js": "module.exports = {};",
		"/project/lib/cjs/fp.js":    "module.exports = {};",
		"/project/lib/cjs/fp/map.js": "module.exports = {};",
	}, true)

	m := buildTestManifest(t)

	resolved, err := m.ResolveQualified(fs, "/project/lib", "fp", "lib/fp", pnp.DefaultConditions)
	assert.NilError(t, err)
	assert.Equal(t, resolved, "/project/lib/cjs/fp.js")

	resolved, err = m.ResolveQualified(fs, "/project/lib", "fp/map", "lib/fp/map", pnp.DefaultConditions)
	assert.NilError(t, err)
	assert.Equal(t, resolved, "/project/lib/cjs/fp/map.js")
}

// TestResolveQualified_PackageJSONExportsSubpathNotFound covers a subpath
// request the exports map doesn't list: it must raise ExportsNotFound with
// Ident populated, not silently fall through to index-file probing (Node
// never consults a directory listing once a package declares "exports").
func TestResolveQualified_PackageJSONExportsSubpathNotFound(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{
		"/project/lib/package.json": `{"exports": {".": "./cjs/index.js"}}`,
		"/project/lib/cjs/index.js": "module.exports = {};",
		"/project/lib/unlisted/index.js": "module.exports = {};",
	}, true)

	m := buildTestManifest(t)
	_, err := m.ResolveQualified(fs, "/project/lib", "unlisted", "lib/unlisted", pnp.DefaultConditions)
	assert.ErrorContains(t, err, "no \"exports\" entry")

	var perr *pnp.Error
	assert.Assert(t, errors.As(err, &perr))
	assert.Equal(t, perr.Kind, pnp.ExportsNotFound)
	assert.Equal(t, perr.Ident, pnp.Ident("lib"))
}

func TestResolveQualified_ExhaustsCandidates(t *testing.T) {
	t.Parallel()
	fs := vfstest.FromMap(map[string]string{}, true)

	m := buildTestManifest(t)
	_, err := m.ResolveQualified(fs, "/project/lib/missing", "", "missing", pnp.DefaultConditions)
	assert.ErrorContains(t, err, "Qualified path resolution failed")

	var perr *pnp.Error
	assert.Assert(t, errors.As(err, &perr))
	assert.Equal(t, perr.Kind, pnp.QualifiedPathResolutionFailed)
	assert.Assert(t, len(perr.Candidates) > 1)
}
