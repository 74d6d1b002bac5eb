package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// A MkdirFS is a file system with the Mkdir method.
type MkdirFS interface {
	FS

	// Mkdir creates a new directory.
	//
	// The directory mode is obtained from DirMode(ctx). If not set in
	// the context, the default mode 0755 is used.
	//
	// Mkdir returns an error if the name already exists or if the
	// parent directory does not exist.
	Mkdir(ctx context.Context, name string) error
}

// Mkdir creates the directory p and reports whether it was created.
// Analogous to: [os.Mkdir], mkdir.
//
// The directory mode is obtained from [DirMode](ctx). If not set in the
// context, the default mode 0755 is used:
//
//	ctx = hostfs.WithDirMode(ctx, 0700)
//	hostfs.Mkdir(ctx, fsys, p) // Creates with mode 0700
//
// If p is already a directory, Mkdir returns false and a nil error.
//
// Requires: [MkdirFS]
func Mkdir(ctx context.Context, fsys FS, p path.Path) (bool, error) {
	name := p.String()
	mfs, ok := fsys.(MkdirFS)
	if !ok {
		return false, &PathError{
			Op: "mkdir", Path: name, Err: ErrUnsupported,
		}
	}
	err := mfs.Mkdir(ctx, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrExist) {
		if st, serr := Status(ctx, fsys, p); serr == nil &&
			st.IsDirectory() {
			return false, nil
		}
	}
	return false, newPathError("mkdir", name, err)
}
