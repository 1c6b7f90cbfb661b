// Package osvfs implements vfs.FS against the real operating-system
// filesystem.
package osvfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pnpgo/resolver/internal/vfs"
)

type osFS struct {
	caseSensitive bool
}

var _ vfs.FS = (*osFS)(nil)

// singleton, obtained via the bare FS() constructor below.
var instance = &osFS{caseSensitive: detectCaseSensitive()}

// FS returns the shared real-filesystem oracle.
func FS() vfs.FS { return instance }

func (o *osFS) FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && readable(path)
}

func (o *osFS) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (o *osFS) ReadFile(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

type fileInfo struct{ os.FileInfo }

func (f fileInfo) IsDir() bool        { return f.FileInfo.IsDir() }
func (f fileInfo) ModTime() time.Time { return f.FileInfo.ModTime() }
func (f fileInfo) Size() int64        { return f.FileInfo.Size() }

func (o *osFS) Stat(path string) vfs.FileInfo {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	return fileInfo{info}
}

func (o *osFS) Realpath(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(resolved)
}

func (o *osFS) Remove(path string) error {
	return os.Remove(path)
}

func (o *osFS) WriteFile(path string, data string, _ bool) error {
	return os.WriteFile(path, []byte(data), 0o644)
}

func (o *osFS) GetAccessibleEntries(path string) vfs.Entries {
	entries, err := os.ReadDir(path)
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

func (o *osFS) WalkDir(root string, walkFn vfs.WalkDirFunc) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		var entry vfs.DirEntry
		if d != nil {
			entry = vfs.DirEntry{Name: d.Name(), IsDir: d.IsDir()}
		}
		return walkFn(filepath.ToSlash(path), entry, err)
	})
}

func (o *osFS) UseCaseSensitiveFileNames() bool {
	return o.caseSensitive
}
