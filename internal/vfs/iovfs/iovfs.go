// Package iovfs adapts any io/fs.FS (notably an opened archive/zip.Reader)
// into the vfs.FS the rest of this module programs against, so zipvfs can
// treat "the inside of an opened archive" the same way it treats a real
// directory tree.
package iovfs

import (
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/pnpgo/resolver/internal/tspath"
	"github.com/pnpgo/resolver/internal/vfs"
)

type ioFS struct {
	inner         fs.FS
	caseSensitive bool
}

var _ vfs.FS = (*ioFS)(nil)

// From wraps inner (typically a *zip.ReadCloser) as a vfs.FS. Entry paths
// are interpreted relative to the archive root and use forward slashes,
// matching the ZIP format's own path conventions.
func From(inner fs.FS, caseSensitive bool) vfs.FS {
	return &ioFS{inner: inner, caseSensitive: caseSensitive}
}

func (i *ioFS) rel(path string) string {
	p := strings.TrimPrefix(tspath.Normalize(path), "/")
	if p == "" {
		return "."
	}
	return p
}

func (i *ioFS) FileExists(path string) bool {
	info, err := fs.Stat(i.inner, i.rel(path))
	return err == nil && !info.IsDir()
}

func (i *ioFS) DirectoryExists(path string) bool {
	info, err := fs.Stat(i.inner, i.rel(path))
	return err == nil && info.IsDir()
}

func (i *ioFS) ReadFile(path string) (string, bool) {
	f, err := i.inner.Open(i.rel(path))
	if err != nil {
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", false
	}
	return string(data), true
}

type fileInfo struct{ fs.FileInfo }

func (f fileInfo) IsDir() bool        { return f.FileInfo.IsDir() }
func (f fileInfo) ModTime() time.Time { return f.FileInfo.ModTime() }
func (f fileInfo) Size() int64        { return f.FileInfo.Size() }

func (i *ioFS) Stat(path string) vfs.FileInfo {
	info, err := fs.Stat(i.inner, i.rel(path))
	if err != nil {
		return nil
	}
	return fileInfo{info}
}

func (i *ioFS) Realpath(path string) string {
	return tspath.Normalize(path)
}

func (i *ioFS) Remove(path string) error {
	return fs.ErrPermission
}

func (i *ioFS) WriteFile(path string, data string, writeByteOrderMark bool) error {
	return fs.ErrPermission
}

func (i *ioFS) GetAccessibleEntries(path string) vfs.Entries {
	entries, err := fs.ReadDir(i.inner, i.rel(path))
	if err != nil {
		return vfs.Entries{}
	}

	var result vfs.Entries
	for _, e := range entries {
		if e.IsDir() {
			result.Directories = append(result.Directories, e.Name())
		} else {
			result.Files = append(result.Files, e.Name())
		}
	}
	return result
}

func (i *ioFS) WalkDir(root string, walkFn vfs.WalkDirFunc) error {
	return fs.WalkDir(i.inner, i.rel(root), func(path string, d fs.DirEntry, err error) error {
		var entry vfs.DirEntry
		if d != nil {
			entry = vfs.DirEntry{Name: d.Name(), IsDir: d.IsDir()}
		}
		return walkFn("/"+path, entry, err)
	})
}

func (i *ioFS) UseCaseSensitiveFileNames() bool {
	return i.caseSensitive
}
