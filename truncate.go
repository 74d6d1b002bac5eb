package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// A TruncateFS is a file system with the Truncate method.
type TruncateFS interface {
	FS

	// Truncate changes the size of the named file.
	// If the file is larger than size, it is truncated.
	// If it is smaller, it is extended with zeros.
	Truncate(ctx context.Context, name string, size int64) error
}

// ResizeFile changes the size of the file p names.
// Analogous to: [os.Truncate], truncate.
//
// If the file is larger than size, it is truncated. If it is smaller, it
// is extended with zeros.
//
// Requires: [TruncateFS]
func ResizeFile(
	ctx context.Context, fsys FS, p path.Path, size uint64,
) error {
	name := p.String()
	if int64(size) < 0 {
		return &PathError{Op: "truncate", Path: name, Err: ErrInvalid}
	}
	if tfs, ok := fsys.(TruncateFS); ok {
		err := tfs.Truncate(ctx, name, int64(size))
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("truncate", name, err)
		}
	}
	return &PathError{Op: "truncate", Path: name, Err: ErrUnsupported}
}
