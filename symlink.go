package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// A SymlinkFS is a file system with the Symlink method.
type SymlinkFS interface {
	FS

	// Symlink creates newname as a symbolic link to oldname.
	// The target oldname is stored as given and is not resolved.
	Symlink(ctx context.Context, oldname, newname string) error
}

// A LinkFS is a file system with the Link method.
type LinkFS interface {
	FS

	// Link creates newname as a hard link to the oldname file.
	Link(ctx context.Context, oldname, newname string) error
}

// A ReadLinkFS is a file system with the ReadLink method.
type ReadLinkFS interface {
	FS

	// ReadLink returns the destination of the named symbolic link.
	// If the link destination is relative, ReadLink returns the relative
	// path without resolving it to an absolute one.
	ReadLink(ctx context.Context, name string) (string, error)
}

// CreateSymlink creates link as a symbolic link to target.
// Analogous to: [os.Symlink], ln -s.
//
// Requires: [SymlinkFS]
func CreateSymlink(
	ctx context.Context, fsys FS, target, link path.Path,
) error {
	if sfs, ok := fsys.(SymlinkFS); ok {
		err := sfs.Symlink(ctx, target.String(), link.String())
		if !errors.Is(err, ErrUnsupported) {
			return newLinkError("symlink", target.String(), link.String(),
				err)
		}
	}
	return &LinkError{
		Op:  "symlink",
		Old: target.String(),
		New: link.String(),
		Err: ErrUnsupported,
	}
}

// CreateHardlink creates link as a hard link to target.
// Analogous to: [os.Link], ln.
//
// Requires: [LinkFS]
func CreateHardlink(
	ctx context.Context, fsys FS, target, link path.Path,
) error {
	if lfs, ok := fsys.(LinkFS); ok {
		err := lfs.Link(ctx, target.String(), link.String())
		if !errors.Is(err, ErrUnsupported) {
			return newLinkError("link", target.String(), link.String(),
				err)
		}
	}
	return &LinkError{
		Op:  "link",
		Old: target.String(),
		New: link.String(),
		Err: ErrUnsupported,
	}
}

// ReadSymlink returns the target stored in the symbolic link p.
// Analogous to: [os.Readlink], readlink.
//
// ReadSymlink fails with [ErrInvalid] if p is not a symbolic link.
//
// Requires: [ReadLinkFS]
func ReadSymlink(
	ctx context.Context, fsys FS, p path.Path,
) (path.Path, error) {
	name := p.String()
	st, err := SymlinkStatus(ctx, fsys, p)
	switch {
	case err != nil:
		return path.Path{}, err
	case st.Type == TypeNotFound:
		return path.Path{}, &PathError{
			Op: "readlink", Path: name, Err: ErrNotExist,
		}
	case st.Type != TypeSymlink:
		return path.Path{}, &PathError{
			Op: "readlink", Path: name, Err: ErrInvalid,
		}
	}
	if rfs, ok := fsys.(ReadLinkFS); ok {
		target, rerr := rfs.ReadLink(ctx, name)
		if !errors.Is(rerr, ErrUnsupported) {
			if rerr != nil {
				return path.Path{}, newPathError("readlink", name, rerr)
			}
			return p.Style().New(target), nil
		}
	}
	return path.Path{}, &PathError{
		Op: "readlink", Path: name, Err: ErrUnsupported,
	}
}

// CopySymlink creates to as a symbolic link with the same target as the
// symbolic link from.
//
// Requires: [ReadLinkFS] && [SymlinkFS]
func CopySymlink(ctx context.Context, fsys FS, from, to path.Path) error {
	target, err := ReadSymlink(ctx, fsys, from)
	if err != nil {
		return err
	}
	return CreateSymlink(ctx, fsys, target, to)
}
