package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// A GetwdFS is a file system with the Getwd method.
type GetwdFS interface {
	FS

	// Getwd returns the absolute path of the working directory.
	Getwd(ctx context.Context) (string, error)
}

// CurrentPath returns the working directory of fsys.
// Analogous to: [os.Getwd], pwd.
//
// A working directory set with [WithWorkDir] takes precedence when it is
// absolute. There is no fallback value: if the working directory cannot
// be determined, CurrentPath fails.
//
// Requires: [GetwdFS] || (absolute [WorkDir] in ctx)
func CurrentPath(ctx context.Context, fsys FS) (path.Path, error) {
	if dir := Path(fsys, WorkDir(ctx)); dir.IsAbsolute() {
		return dir, nil
	}
	if gfs, ok := fsys.(GetwdFS); ok {
		dir, err := gfs.Getwd(ctx)
		if err == nil {
			return Path(fsys, dir), nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return path.Path{}, newPathError("getwd", "", err)
		}
	}
	return path.Path{}, &PathError{
		Op: "getwd", Path: "", Err: ErrUnsupported,
	}
}
