package hostfs

import (
	"context"
	"errors"
	"time"

	"lesiw.io/hostfs/path"
)

// FileIdentity identifies the file behind a path.
type FileIdentity struct {
	Device  uint64    // device or volume serial number
	Index   uint64    // inode or file index
	Size    uint64    // size in bytes
	ModTime time.Time // last write time
	Links   uint64    // number of hard links
}

// SameFile reports whether id and o describe the same file.
// The link count is not compared.
func (id FileIdentity) SameFile(o FileIdentity) bool {
	return id.Device == o.Device && id.Index == o.Index &&
		id.Size == o.Size && id.ModTime.Equal(o.ModTime)
}

// An IdentifyFS is a file system with the Identify method.
type IdentifyFS interface {
	FS

	// Identify returns the identity of the named file, following
	// symbolic links.
	Identify(ctx context.Context, name string) (FileIdentity, error)
}

func identify(
	ctx context.Context, fsys FS, p path.Path,
) (FileIdentity, error) {
	name := p.String()
	if ifs, ok := fsys.(IdentifyFS); ok {
		id, err := ifs.Identify(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return id, newPathError("identify", name, err)
		}
	}
	return FileIdentity{}, &PathError{
		Op: "identify", Path: name, Err: ErrUnsupported,
	}
}

// Equivalent reports whether a and b resolve to the same file.
// Two files are the same when their device, index, size and last write
// time all match.
//
// If only one of the paths can be identified, Equivalent returns the error
// for the other. If neither can be identified, Equivalent reports false
// with no error.
//
// Requires: [IdentifyFS]
func Equivalent(
	ctx context.Context, fsys FS, a, b path.Path,
) (bool, error) {
	ida, erra := identify(ctx, fsys, a)
	idb, errb := identify(ctx, fsys, b)
	switch {
	case errors.Is(erra, ErrUnsupported):
		return false, erra
	case erra != nil && errb != nil:
		return false, nil
	case erra != nil:
		return false, erra
	case errb != nil:
		return false, errb
	}
	return ida.SameFile(idb), nil
}
