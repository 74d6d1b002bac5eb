package hostfs

import (
	"context"
	"errors"
	"io"

	"lesiw.io/hostfs/path"
)

// A CreateFS is a file system with the Create method.
type CreateFS interface {
	FS

	// Create creates or truncates the named file for writing.
	//
	// The file mode is obtained from FileMode(ctx). If not set in the
	// context, the default mode 0644 is used.
	Create(ctx context.Context, name string) (io.WriteCloser, error)
}

// WriteFile writes data to the file p names, creating it or truncating
// it first.
// Analogous to: [os.WriteFile].
//
// The file is created with the mode from [FileMode](ctx). If the parent
// directory does not exist, WriteFile creates it and any missing ancestors
// with [Mkdirs] before retrying once.
//
// Requires: [CreateFS]
func WriteFile(
	ctx context.Context, fsys FS, p path.Path, data []byte,
) error {
	name := p.String()
	cfs, ok := fsys.(CreateFS)
	if !ok {
		return &PathError{Op: "create", Path: name, Err: ErrUnsupported}
	}
	w, err := cfs.Create(ctx, name)
	if errors.Is(err, ErrNotExist) && p.HasParent() {
		parent := p.Parent()
		made, merr := Mkdirs(ctx, fsys, parent)
		switch {
		case merr != nil:
			return errors.Join(newPathError("create", name, err), merr)
		case !made:
			return &PathError{Op: "create", Path: name, Err: ErrNotDir}
		}
		w, err = cfs.Create(ctx, name)
	}
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			return &PathError{
				Op: "create", Path: name, Err: ErrUnsupported,
			}
		}
		return newPathError("create", name, err)
	}
	_, writeErr := w.Write(data)
	closeErr := w.Close()
	if writeErr != nil {
		return &PathError{Op: "write", Path: name, Err: writeErr}
	}
	if closeErr != nil {
		return &PathError{Op: "close", Path: name, Err: closeErr}
	}
	return nil
}
