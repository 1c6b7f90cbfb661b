package nodeexports_test

import (
	"testing"

	"github.com/pnpgo/resolver/internal/nodeexports"
	"gotest.tools/v3/assert"
)

func conditions(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func TestResolve_StringShorthand(t *testing.T) {
	t.Parallel()

	result, ok := nodeexports.Resolve("./index.js", ".", conditions("node", "default"))
	assert.Assert(t, ok)
	assert.Equal(t, result, "index.js")
}

func TestResolve_StringShorthandSubpathMiss(t *testing.T) {
	t.Parallel()

	_, ok := nodeexports.Resolve("./index.js", "./foo", conditions("default"))
	assert.Assert(t, !ok)
}

func TestResolve_ConditionsMap(t *testing.T) {
	t.Parallel()

	field := map[string]any{
		"import":  "./esm/index.js",
		"require": "./cjs/index.js",
		"default": "./cjs/index.js",
	}

	result, ok := nodeexports.Resolve(field, ".", conditions("import", "default"))
	assert.Assert(t, ok)
	assert.Equal(t, result, "esm/index.js")

	result, ok = nodeexports.Resolve(field, ".", conditions("require", "default"))
	assert.Assert(t, ok)
	assert.Equal(t, result, "cjs/index.js")
}

func TestResolve_SubpathMap(t *testing.T) {
	t.Parallel()

	field := map[string]any{
		".":        "./index.js",
		"./utils":  "./lib/utils.js",
		"./lib/*":  "./lib/*.js",
		"./hidden": nil,
	}

	result, ok := nodeexports.Resolve(field, ".", conditions("default"))
	assert.Assert(t, ok)
	assert.Equal(t, result, "index.js")

	result, ok = nodeexports.Resolve(field, "./utils", conditions("default"))
	assert.Assert(t, ok)
	assert.Equal(t, result, "lib/utils.js")

	result, ok = nodeexports.Resolve(field, "./lib/helpers", conditions("default"))
	assert.Assert(t, ok)
	assert.Equal(t, result, "lib/helpers.js")

	_, ok = nodeexports.Resolve(field, "./hidden", conditions("default"))
	assert.Assert(t, !ok)

	_, ok = nodeexports.Resolve(field, "./nonexistent", conditions("default"))
	assert.Assert(t, !ok)
}

func TestResolve_FallbackArray(t *testing.T) {
	t.Parallel()

	field := []any{
		map[string]any{"node": "./node.js"},
		"./default.js",
	}

	result, ok := nodeexports.Resolve(field, ".", conditions("browser"))
	assert.Assert(t, ok)
	assert.Equal(t, result, "default.js")

	result, ok = nodeexports.Resolve(field, ".", conditions("node"))
	assert.Assert(t, ok)
	assert.Equal(t, result, "node.js")
}

func TestResolve_NilExportsField(t *testing.T) {
	t.Parallel()

	_, ok := nodeexports.Resolve(nil, ".", conditions("default"))
	assert.Assert(t, !ok)
}
