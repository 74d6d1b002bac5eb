package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// A RemoveFS is a file system with the Remove method.
type RemoveFS interface {
	FS

	// Remove removes the named file or empty directory.
	// It returns an error if the file does not exist or if a directory
	// is not empty.
	Remove(ctx context.Context, name string) error
}

// Remove removes the file or empty directory p and reports whether
// anything was removed.
// Analogous to: [os.Remove], rm, rmdir.
//
// If p does not exist, Remove returns false and a nil error.
//
// Requires: [RemoveFS]
func Remove(ctx context.Context, fsys FS, p path.Path) (bool, error) {
	name := p.String()
	if rfs, ok := fsys.(RemoveFS); ok {
		err := rfs.Remove(ctx, name)
		switch {
		case err == nil:
			return true, nil
		case notFound(err):
			return false, nil
		case !errors.Is(err, ErrUnsupported):
			return false, newPathError("remove", name, err)
		}
	}
	return false, &PathError{Op: "remove", Path: name, Err: ErrUnsupported}
}
