package hostfs

import (
	"context"

	"lesiw.io/hostfs/path"
)

// An FS is a file system with the Lstat method.
//
// Names passed to an FS are native path text in the grammar reported by
// [StyleFS], or the native grammar of the running platform if the FS does
// not implement it.
type FS interface {
	// Lstat returns FileInfo describing the named file.
	// If the file is a symbolic link, the returned FileInfo
	// describes the symbolic link. Lstat makes no attempt to follow
	// the link.
	Lstat(ctx context.Context, name string) (FileInfo, error)
}

// A StyleFS is a file system with the Style method.
type StyleFS interface {
	FS

	// Style returns the path grammar of names in the file system.
	Style() path.Style
}

// Style returns the path grammar of fsys.
//
// Requires: [StyleFS] || (native grammar)
func Style(fsys FS) path.Style {
	if sfs, ok := fsys.(StyleFS); ok {
		return sfs.Style()
	}
	return path.Native
}

// Path returns s as a path in the grammar of fsys.
func Path(fsys FS, s string) path.Path {
	return Style(fsys).New(s)
}
