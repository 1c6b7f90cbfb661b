package pnp_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/pnpgo/resolver/internal/pnp"
	"github.com/pnpgo/resolver/internal/vfs/osvfs"
	"github.com/pnpgo/resolver/internal/vfs/zipvfs"
	"gotest.tools/v3/assert"
)

// TestResolve_ThroughZipDescent exercises path resolution against a
// package whose packageLocation points inside a real ".zip" archive (the
// storage format Yarn actually uses for its cache), proving locator
// resolution and transparent ZIP descent compose through the vfs.FS
// interface without either side knowing about the other.
func TestResolve_ThroughZipDescent(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	zipPath := filepath.Join(tmpDir, "lodash-npm-4.17.21.zip")

	zf, err := os.Create(zipPath)
	assert.NilError(t, err)
	w := zip.NewWriter(zf)
	f, err := w.Create("node_modules/lodash/index.js")
	assert.NilError(t, err)
	_, err = f.Write([]byte("module.exports = {};"))
	assert.NilError(t, err)
	assert.NilError(t, w.Close())
	assert.NilError(t, zf.Close())

	manifestBlob := `{
  "packageRegistryData": [
    [null, [
      [null, {
        "packageLocation": "./",
        "packageDependencies": [["lodash", "npm:4.17.21"]],
        "packagePeers": [],
        "linkType": "HARD",
        "discardFromLookup": false
      }]
    ]],
    ["lodash", [
      ["npm:4.17.21", {
        "packageLocation": "./lodash-npm-4.17.21.zip/node_modules/lodash/",
        "packageDependencies": [],
        "packagePeers": [],
        "linkType": "HARD",
        "discardFromLookup": false
      }]
    ]]
  ]
}`

	m, err := pnp.ParseManifest([]byte(manifestBlob), tmpDir)
	assert.NilError(t, err)

	fs := zipvfs.From(osvfs.FS())

	res, err := m.Resolve(fs, filepath.Join(tmpDir, "src", "index.js"), "lodash", nil)
	assert.NilError(t, err)
	assert.Equal(t, res.Kind, pnp.ResolutionFile)
	assert.Equal(t, res.Path, zipPath+"/node_modules/lodash/index.js")
}
