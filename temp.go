package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// A TempDirFS is a file system with the TempDir method.
type TempDirFS interface {
	FS

	// TempDir returns the directory to use for temporary files.
	TempDir(ctx context.Context) (string, error)
}

// TempDirectoryPath returns the directory to use for temporary files.
// Analogous to: [os.TempDir].
//
// Requires: [TempDirFS]
func TempDirectoryPath(ctx context.Context, fsys FS) (path.Path, error) {
	if tfs, ok := fsys.(TempDirFS); ok {
		dir, err := tfs.TempDir(ctx)
		if err == nil {
			return Path(fsys, dir), nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return path.Path{}, newPathError("tempdir", "", err)
		}
	}
	return path.Path{}, &PathError{
		Op: "tempdir", Path: "", Err: ErrUnsupported,
	}
}
