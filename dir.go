package hostfs

import (
	"context"
	"errors"
	"io"

	"lesiw.io/hostfs/path"
)

// A DirHandle is an open directory enumeration.
type DirHandle interface {
	// ReadName returns the name of the next entry in the directory.
	// It returns io.EOF once every entry has been read. The names "."
	// and ".." may be returned.
	ReadName() (string, error)

	// Close releases the enumeration.
	Close() error
}

// An OpenDirFS is a file system with the OpenDir method.
type OpenDirFS interface {
	FS

	// OpenDir opens the named directory for enumeration.
	OpenDir(ctx context.Context, name string) (DirHandle, error)
}

// A DirectoryIterator enumerates the entries of one directory.
//
// A DirectoryIterator owns the enumeration handle it opened. The handle is
// released when the iterator reaches its end, when reading fails, or when
// Close is called, whichever comes first.
//
// The zero DirectoryIterator is the end state. Every exhausted iterator is
// [DirectoryIterator.Equal] to it.
type DirectoryIterator struct {
	fsys  FS
	base  path.Path
	dir   DirHandle
	entry DirectoryEntry
}

// NewDirectoryIterator opens the directory p and positions the iterator at
// its first entry other than "." and "..".
//
// An empty p yields the end state. A directory that cannot be opened for
// lack of permission also yields the end state, with a nil error.
//
// Requires: [OpenDirFS]
func NewDirectoryIterator(
	ctx context.Context, fsys FS, p path.Path,
) (*DirectoryIterator, error) {
	it := &DirectoryIterator{fsys: fsys, base: p}
	if p.Empty() {
		return it, nil
	}
	odfs, ok := fsys.(OpenDirFS)
	if !ok {
		return nil, &PathError{
			Op: "opendir", Path: p.String(), Err: ErrUnsupported,
		}
	}
	dir, err := odfs.OpenDir(ctx, p.String())
	if errors.Is(err, ErrPermission) {
		Logger(ctx).Debug("opendir: permission denied", "path", p.String())
		return it, nil
	}
	if err != nil {
		return nil, newPathError("opendir", p.String(), err)
	}
	it.dir = dir
	if err = it.Increment(ctx); err != nil {
		return nil, err
	}
	return it, nil
}

// Entry returns the current entry.
// Its cached status persists until the iterator advances.
func (it *DirectoryIterator) Entry() *DirectoryEntry { return &it.entry }

// Path returns the path of the current entry, or the empty path at the end.
// A nil iterator is in the end state.
func (it *DirectoryIterator) Path() path.Path {
	if it == nil {
		return path.Path{}
	}
	return it.entry.path
}

// Done reports whether the iterator is in the end state.
func (it *DirectoryIterator) Done() bool { return it.Path().Empty() }

// Equal reports whether it and o are positioned at the same path.
// A nil iterator equals any iterator in the end state.
func (it *DirectoryIterator) Equal(o *DirectoryIterator) bool {
	return it.Path().Equal(o.Path())
}

// Increment advances to the next entry other than "." and "..".
//
// When the directory is exhausted, Increment releases the handle and moves
// to the end state. When reading fails, Increment releases the handle,
// moves to the end state and returns the error.
func (it *DirectoryIterator) Increment(ctx context.Context) error {
	if it.dir == nil {
		it.entry = DirectoryEntry{}
		return nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return errors.Join(err, it.Close())
		}
		name, err := it.dir.ReadName()
		if errors.Is(err, io.EOF) {
			return it.Close()
		}
		if err != nil {
			return errors.Join(
				newPathError("readdir", it.base.String(), err),
				it.Close(),
			)
		}
		if name == "." || name == ".." {
			continue
		}
		it.entry = NewDirectoryEntry(
			it.fsys, it.base.JoinPath(it.base.Style().New(name)),
		)
		return nil
	}
}

// Close releases the enumeration handle and moves to the end state.
// Close may be called any number of times.
func (it *DirectoryIterator) Close() error {
	it.entry = DirectoryEntry{}
	if it.dir == nil {
		return nil
	}
	dir := it.dir
	it.dir = nil
	return newPathError("closedir", it.base.String(), dir.Close())
}
