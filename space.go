package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// SpaceInfo describes the capacity of a volume in bytes.
type SpaceInfo struct {
	Capacity  uint64 // total size
	Free      uint64 // unused
	Available uint64 // unused and usable by the caller
}

// A SpaceFS is a file system with the Space method.
type SpaceFS interface {
	FS

	// Space reports the capacity of the volume holding name.
	Space(ctx context.Context, name string) (SpaceInfo, error)
}

// Space reports the capacity of the volume holding p.
// Analogous to: statvfs, df.
//
// On failure it returns [UnknownSpace] and the error.
//
// Requires: [SpaceFS]
func Space(ctx context.Context, fsys FS, p path.Path) (SpaceInfo, error) {
	name := p.String()
	if sfs, ok := fsys.(SpaceFS); ok {
		info, err := sfs.Space(ctx, name)
		if err == nil {
			return info, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return UnknownSpace, newPathError("space", name, err)
		}
	}
	return UnknownSpace, &PathError{
		Op: "space", Path: name, Err: ErrUnsupported,
	}
}
