package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// A RenameFS is a file system with the Rename method.
type RenameFS interface {
	FS

	// Rename renames (moves) oldname to newname.
	// If newname already exists and is not a directory, Rename replaces it.
	Rename(ctx context.Context, oldname, newname string) error
}

// Move renames from to to.
// Analogous to: [os.Rename], mv.
//
// Moving a path onto itself does nothing. Failures are reported as a
// [*LinkError] naming both paths.
//
// Requires: [RenameFS]
func Move(ctx context.Context, fsys FS, from, to path.Path) error {
	if from.Equal(to) {
		return nil
	}
	if rfs, ok := fsys.(RenameFS); ok {
		err := rfs.Rename(ctx, from.String(), to.String())
		if !errors.Is(err, ErrUnsupported) {
			return newLinkError("rename", from.String(), to.String(), err)
		}
	}
	return &LinkError{
		Op:  "rename",
		Old: from.String(),
		New: to.String(),
		Err: ErrUnsupported,
	}
}
