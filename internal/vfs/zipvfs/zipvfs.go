// Package zipvfs wraps a vfs.FS to give it two additional powers PnP trees
// need: transparent descent into ".zip"-suffixed paths, and
// translation of Yarn's "/__virtual__/<hash>/<depth>/..." virtual package
// paths back to their real, physical location.
//
// This package unifies what would otherwise be two near-identical copies of
// the same logic; Chtimes and the hardcoded case-sensitivity rule (PnP trees
// are always case-sensitive regardless of the host filesystem) are both
// kept here.
package zipvfs

import (
	"archive/zip"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pnpgo/resolver/internal/tspath"
	"github.com/pnpgo/resolver/internal/vfs"
	"github.com/pnpgo/resolver/internal/vfs/iovfs"
)

const maxOpenReadersDefault = 80

type cachedZipReader struct {
	reader   *zip.ReadCloser
	lastUsed time.Time
	zipMTime time.Time
}

type zipFS struct {
	fs                  vfs.FS
	maxOpenReaders      int
	cachedZipReadersMap map[string]*cachedZipReader
	cacheReaderMutex    sync.Mutex
}

var _ vfs.FS = (*zipFS)(nil)

// From wraps fs with ZIP descent and virtual-path translation.
func From(fs vfs.FS) vfs.FS {
	return &zipFS{
		fs:                  fs,
		maxOpenReaders:      maxOpenReadersDefault,
		cachedZipReadersMap: make(map[string]*cachedZipReader),
	}
}

func (z *zipFS) FileExists(p string) bool {
	p, _, _ = ResolveVirtual(p)
	if strings.HasSuffix(p, ".zip") {
		return z.fs.FileExists(p)
	}
	fs, formatted, _ := getMatchingFS(z, p)
	return fs.FileExists(formatted)
}

func (z *zipFS) DirectoryExists(p string) bool {
	p, _, _ = ResolveVirtual(p)
	if strings.HasSuffix(p, ".zip") {
		return z.fs.FileExists(p)
	}
	fs, formatted, _ := getMatchingFS(z, p)
	return fs.DirectoryExists(formatted)
}

func (z *zipFS) ReadFile(p string) (string, bool) {
	p, _, _ = ResolveVirtual(p)
	fs, formatted, _ := getMatchingFS(z, p)
	return fs.ReadFile(formatted)
}

func (z *zipFS) Stat(p string) vfs.FileInfo {
	p, _, _ = ResolveVirtual(p)
	fs, formatted, _ := getMatchingFS(z, p)
	return fs.Stat(formatted)
}

func (z *zipFS) Realpath(p string) string {
	p, hash, basePath := ResolveVirtual(p)
	fs, formatted, zipPath := getMatchingFS(z, p)
	full := path.Join(zipPath, fs.Realpath(formatted))
	return makeVirtualPath(basePath, hash, full)
}

func (z *zipFS) Remove(p string) error {
	p, _, _ = ResolveVirtual(p)
	fs, formatted, _ := getMatchingFS(z, p)
	return fs.Remove(formatted)
}

func (z *zipFS) WriteFile(p string, data string, bom bool) error {
	p, _, _ = ResolveVirtual(p)
	fs, formatted, _ := getMatchingFS(z, p)
	return fs.WriteFile(formatted, data, bom)
}

func (z *zipFS) GetAccessibleEntries(p string) vfs.Entries {
	p, hash, basePath := ResolveVirtual(p)
	fs, formatted, zipPath := getMatchingFS(z, p)
	entries := fs.GetAccessibleEntries(formatted)

	for i, dir := range entries.Directories {
		entries.Directories[i] = makeVirtualPath(basePath, hash, path.Join(zipPath, dir))
	}
	for i, file := range entries.Files {
		entries.Files[i] = makeVirtualPath(basePath, hash, path.Join(zipPath, file))
	}
	return entries
}

func (z *zipFS) WalkDir(root string, walkFn vfs.WalkDirFunc) error {
	root, hash, basePath := ResolveVirtual(root)
	fs, formatted, zipPath := getMatchingFS(z, root)
	return fs.WalkDir(formatted, func(p string, d vfs.DirEntry, err error) error {
		full := path.Join(zipPath, p)
		return walkFn(makeVirtualPath(basePath, hash, full), d, err)
	})
}

// Chtimes is not part of vfs.FS's minimal surface but PnP's virtual-package
// machinery historically needs to touch mtimes on generated shims; kept
// for that reason, exposed as a concrete method
// rather than widening the FS interface for every implementation.
func (z *zipFS) Chtimes(p string, mtime, atime time.Time) error {
	p, _, _ = ResolveVirtual(p)
	_, formatted, zipPath := getMatchingFS(z, p)
	if zipPath != "" {
		// ZIP archives are immutable once mounted; silently accept.
		return nil
	}
	if osChtimes, ok := z.fs.(interface {
		Chtimes(string, time.Time, time.Time) error
	}); ok {
		return osChtimes.Chtimes(formatted, mtime, atime)
	}
	return nil
}

func (z *zipFS) UseCaseSensitiveFileNames() bool {
	// PnP-managed trees are always treated as case-sensitive, independent of
	// the host filesystem: package locations and references come from the
	// manifest verbatim and must compare exactly.
	return true
}

func splitZipPath(p string) (zipPath string, internalPath string) {
	parts := strings.SplitN(p, ".zip/", 2)
	if len(parts) < 2 {
		return p, "/"
	}
	return parts[0] + ".zip", "/" + parts[1]
}

func getMatchingFS(z *zipFS, p string) (vfs.FS, string, string) {
	if !strings.Contains(p, ".zip/") && !strings.HasSuffix(p, ".zip") {
		return z.fs, p, ""
	}

	zipPath, internalPath := splitZipPath(p)

	zipStat := z.fs.Stat(zipPath)
	if zipStat == nil {
		return z.fs, p, ""
	}

	z.cacheReaderMutex.Lock()
	defer z.cacheReaderMutex.Unlock()

	zipMTime := zipStat.ModTime()

	cached, ok := z.cachedZipReadersMap[zipPath]
	var reader *cachedZipReader
	if ok && cached.zipMTime.Equal(zipMTime) {
		cached.lastUsed = time.Now()
		reader = cached
	} else {
		realPath := z.fs.Realpath(zipPath)
		zr, err := zip.OpenReader(realPath)
		if err != nil {
			return z.fs, p, ""
		}

		if len(z.cachedZipReadersMap) >= z.maxOpenReaders {
			z.deleteOldestReaderLocked()
		}

		reader = &cachedZipReader{reader: zr, lastUsed: time.Now(), zipMTime: zipMTime}
		z.cachedZipReadersMap[zipPath] = reader
	}

	return iovfs.From(reader.reader, true), internalPath, zipPath
}

func (z *zipFS) deleteOldestReaderLocked() {
	var oldestPath string
	var oldest *cachedZipReader
	for p, r := range z.cachedZipReadersMap {
		if oldest == nil || r.lastUsed.Before(oldest.lastUsed) {
			oldest = r
			oldestPath = p
		}
	}
	if oldest != nil {
		oldest.reader.Close()
		delete(z.cachedZipReadersMap, oldestPath)
	}
}

// ResolveVirtual rewrites a "/__virtual__/<hash>/<depth>/<subpath>" path to
// its real location by applying dirname <depth> times to the path prefix
// preceding "/__virtual__" and then appending subpath.
// Exported so pnp's issuer classification (C5) can strip a parent path's
// virtual segment before consulting the manifest index (C3).
func ResolveVirtual(p string) (realPath string, hash string, basePath string) {
	idx := strings.Index(p, "/__virtual__/")
	if idx == -1 {
		return p, "", ""
	}

	base := p[:idx]
	rest := p[idx+len("/__virtual__/"):]
	parts := strings.SplitN(rest, "/", 3)
	if len(parts) < 3 {
		return p, "", ""
	}

	hash = parts[0]
	subpath := parts[2]
	depth, err := strconv.Atoi(parts[1])
	if err != nil || depth < 0 {
		return p, "", ""
	}

	basePath = p[:idx] + "/__virtual__"

	for i := 0; i < depth; i++ {
		base, _ = tspath.Split(base)
	}

	if base == "" {
		return "/" + subpath, hash, basePath
	}
	return tspath.Join(base, subpath), hash, basePath
}

func makeVirtualPath(basePath string, hash string, targetPath string) string {
	if basePath == "" || hash == "" {
		return targetPath
	}

	relative := tspath.Rel(path.Dir(basePath), targetPath)
	segments := strings.Split(relative, "/")

	depth := 0
	for depth < len(segments) && segments[depth] == ".." {
		depth++
	}
	subPath := strings.Join(segments[depth:], "/")

	return path.Join(basePath, hash, strconv.Itoa(depth), subPath)
}

// IsVirtualPath reports whether p contains a Yarn "/__virtual__/" segment.
// Lives alongside the code that actually resolves virtual paths rather
// than in the top-level pnp package.
func IsVirtualPath(p string) bool {
	return strings.Contains(p, "/__virtual__/")
}

// IsZipPath reports whether p names a ZIP archive or a path inside one.
func IsZipPath(p string) bool {
	return strings.HasSuffix(p, ".zip") || strings.Contains(p, ".zip/")
}
