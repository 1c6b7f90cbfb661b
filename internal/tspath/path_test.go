package tspath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pnpgo/resolver/internal/tspath"
	"gotest.tools/v3/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"/a/b/../c", "/a/c"},
		{"a\\b\\c", "a/b/c"},
		{"/a/./b/", "/a/b"},
		{"c:\\foo\\bar", "C:/foo/bar"},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, tspath.Normalize(c.in), c.want)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.Join("/a/b", "../c", "d"), "/a/c/d")
}

func TestSplit(t *testing.T) {
	t.Parallel()

	dir, base := tspath.Split("/a/b/c.js")
	assert.Equal(t, dir, "/a/b")
	assert.Equal(t, base, "c.js")

	dir, base = tspath.Split("/a")
	assert.Equal(t, dir, "")
	assert.Equal(t, base, "a")
}

func TestIsAbsolute(t *testing.T) {
	t.Parallel()
	assert.Assert(t, tspath.IsAbsolute("/a/b"))
	assert.Assert(t, tspath.IsAbsolute("C:/a/b"))
	assert.Assert(t, !tspath.IsAbsolute("a/b"))
	assert.Assert(t, !tspath.IsAbsolute("../a"))
}

func TestTrailingSeparator(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.EnsureTrailingSeparator("/a/b"), "/a/b/")
	assert.Equal(t, tspath.EnsureTrailingSeparator("/a/b/"), "/a/b/")
	assert.Equal(t, tspath.RemoveTrailingSeparator("/a/b/"), "/a/b")
	assert.Equal(t, tspath.RemoveTrailingSeparator("/"), "/")
}

func TestComparisonKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, tspath.ComparisonKey("/Foo/BAR", true), "/Foo/BAR")
	assert.Equal(t, tspath.ComparisonKey("/Foo/BAR", false), tspath.ComparisonKey("/foo/bar", false))

	// Unicode fold, not just ASCII: German sharp s folds to "ss".
	assert.Equal(t, tspath.ComparisonKey("stra\u00dfe", false), tspath.ComparisonKey("strasse", false))
}

func TestRel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tspath.Rel("/proj", "/proj/src/x.js"), "src/x.js")
	assert.Equal(t, tspath.Rel("/proj/a/b", "/proj/c"), "../../c")
	assert.Equal(t, tspath.Rel("/proj", "/proj"), ".")
}

func TestFindClosestManifestPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	assert.NilError(t, os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0o755))
	assert.NilError(t, os.WriteFile(filepath.Join(root, "a", ".pnp.cjs"), []byte("// stub"), 0o644))

	found, ok := tspath.FindClosestManifestPath(filepath.Join(root, "a", "b", "c"), nil)
	assert.Assert(t, ok)
	assert.Equal(t, found, filepath.ToSlash(filepath.Join(root, "a", ".pnp.cjs")))
}

func TestFindClosestManifestPathNotFound(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	assert.NilError(t, os.MkdirAll(filepath.Join(root, "x", "y"), 0o755))

	_, ok := tspath.FindClosestManifestPath(filepath.Join(root, "x", "y"), nil)
	assert.Assert(t, !ok)
}
