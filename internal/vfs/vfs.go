// Package vfs declares the file-oracle abstraction consumed by the PnP
// resolver: given an absolute path, report whether it names a
// file, a directory, or neither; read file contents; walk directories.
//
// Four implementations exist in this module: osvfs (the real filesystem),
// vfstest (an in-memory oracle for tests), iovfs (an adapter over any
// io/fs.FS, such as an opened ZIP archive), and zipvfs (a wrapper that
// transparently descends into ZIP archives and resolves Yarn's virtual
// package paths). All are interchangeable behind this interface.
package vfs

import "time"

// FileInfo is the minimal stat surface the resolver needs.
type FileInfo interface {
	IsDir() bool
	ModTime() time.Time
	Size() int64
}

// DirEntry names one child of a directory listing.
type DirEntry struct {
	Name  string
	IsDir bool
}

// Entries splits a directory listing into subdirectories and files, the
// shape zipvfs.go's GetAccessibleEntries callers expect.
type Entries struct {
	Directories []string
	Files       []string
}

// WalkDirFunc is called once per entry visited by WalkDir.
type WalkDirFunc func(path string, entry DirEntry, err error) error

// FS is the file oracle. Every method takes and returns absolute,
// slash-separated paths; implementations do not need to handle relative
// paths or backslashes — callers are expected to have normalized already
// (see internal/tspath).
//
//go:generate moq -out vfstest/fs_mock.go -pkg vfstest . FS
type FS interface {
	FileExists(path string) bool
	DirectoryExists(path string) bool
	ReadFile(path string) (contents string, ok bool)
	Stat(path string) FileInfo
	Realpath(path string) string
	Remove(path string) error
	WriteFile(path string, data string, writeByteOrderMark bool) error
	GetAccessibleEntries(path string) Entries
	WalkDir(root string, walkFn WalkDirFunc) error
	UseCaseSensitiveFileNames() bool
}
