// Package vfstest provides an in-memory vfs.FS for tests via a FromMap
// constructor, so resolution logic can be exercised without touching a
// real filesystem.
package vfstest

import (
	"sort"
	"strings"
	"time"

	"github.com/pnpgo/resolver/internal/tspath"
	"github.com/pnpgo/resolver/internal/vfs"
)

type mapFS struct {
	files         map[string]string
	caseSensitive bool
	modTimes      map[string]time.Time
}

var _ vfs.FS = (*mapFS)(nil)

// FromMap builds an in-memory FS from a map of absolute path -> contents.
// Intermediate directories are synthesized from the file paths.
func FromMap(files map[string]string, caseSensitive bool) vfs.FS {
	fs := &mapFS{
		files:         make(map[string]string, len(files)),
		caseSensitive: caseSensitive,
		modTimes:      make(map[string]time.Time, len(files)),
	}
	now := time.Unix(0, 0)
	for path, contents := range files {
		fs.files[fs.key(path)] = contents
		fs.modTimes[fs.key(path)] = now
	}
	return fs
}

func (m *mapFS) key(path string) string {
	return tspath.ComparisonKey(tspath.Normalize(path), m.caseSensitive)
}

func (m *mapFS) FileExists(path string) bool {
	_, ok := m.files[m.key(path)]
	return ok
}

func (m *mapFS) DirectoryExists(path string) bool {
	prefix := tspath.EnsureTrailingSeparator(m.key(path))
	if prefix == "/" {
		return len(m.files) > 0
	}
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func (m *mapFS) ReadFile(path string) (string, bool) {
	contents, ok := m.files[m.key(path)]
	return contents, ok
}

type fileInfo struct {
	size int64
	dir  bool
	mod  time.Time
}

func (f fileInfo) IsDir() bool        { return f.dir }
func (f fileInfo) ModTime() time.Time { return f.mod }
func (f fileInfo) Size() int64        { return f.size }

func (m *mapFS) Stat(path string) vfs.FileInfo {
	if contents, ok := m.files[m.key(path)]; ok {
		return fileInfo{size: int64(len(contents)), mod: m.modTimes[m.key(path)]}
	}
	if m.DirectoryExists(path) {
		return fileInfo{dir: true}
	}
	return nil
}

func (m *mapFS) Realpath(path string) string {
	return tspath.Normalize(path)
}

func (m *mapFS) Remove(path string) error {
	delete(m.files, m.key(path))
	return nil
}

func (m *mapFS) WriteFile(path string, data string, _ bool) error {
	m.files[m.key(path)] = data
	m.modTimes[m.key(path)] = time.Now()
	return nil
}

func (m *mapFS) GetAccessibleEntries(path string) vfs.Entries {
	prefix := tspath.EnsureTrailingSeparator(m.key(path))
	seen := map[string]bool{}
	var result vfs.Entries

	for p := range m.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if rest == "" {
			continue
		}
		if idx := strings.Index(rest, "/"); idx >= 0 {
			dir := rest[:idx]
			if !seen[dir] {
				seen[dir] = true
				result.Directories = append(result.Directories, dir)
			}
		} else {
			result.Files = append(result.Files, rest)
		}
	}

	sort.Strings(result.Directories)
	sort.Strings(result.Files)
	return result
}

func (m *mapFS) WalkDir(root string, walkFn vfs.WalkDirFunc) error {
	prefix := tspath.EnsureTrailingSeparator(m.key(root))
	var paths []string
	for p := range m.files {
		if p == m.key(root) || strings.HasPrefix(p, prefix) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	for _, p := range paths {
		if err := walkFn(p, vfs.DirEntry{Name: p}, nil); err != nil {
			return err
		}
	}
	return nil
}

func (m *mapFS) UseCaseSensitiveFileNames() bool {
	return m.caseSensitive
}
