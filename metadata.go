package hostfs

import (
	"context"
	"errors"
	"time"

	"lesiw.io/hostfs/path"
)

// stat returns metadata for the entry p names, following symbolic links.
func stat(ctx context.Context, fsys FS, p path.Path) (FileInfo, error) {
	name := p.String()
	if sfs, ok := fsys.(StatFS); ok {
		info, err := sfs.Stat(ctx, name)
		if !errors.Is(err, ErrUnsupported) {
			return info, newPathError("stat", name, err)
		}
	}
	info, err := fsys.Lstat(ctx, name)
	if err != nil {
		return nil, newPathError("stat", name, err)
	}
	if info.Mode()&ModeSymlink != 0 {
		return nil, &PathError{Op: "stat", Path: name, Err: ErrUnsupported}
	}
	return info, nil
}

// FileSize returns the size in bytes of the file p names.
// On failure it returns [UnknownSize] and the error.
//
// Requires: [StatFS] || (p is not a symbolic link)
func FileSize(ctx context.Context, fsys FS, p path.Path) (uint64, error) {
	info, err := stat(ctx, fsys, p)
	if err != nil {
		return UnknownSize, err
	}
	return uint64(info.Size()), nil
}

// LastWriteTime returns the modification time of the file p names.
// On failure it returns [MinFileTime] and the error.
//
// Requires: [StatFS] || (p is not a symbolic link)
func LastWriteTime(
	ctx context.Context, fsys FS, p path.Path,
) (time.Time, error) {
	info, err := stat(ctx, fsys, p)
	if err != nil {
		return MinFileTime, err
	}
	return info.ModTime(), nil
}

// HardLinkCount returns the number of directory entries that refer to the
// file p names. On failure it returns [UnknownLinks] and the error.
//
// Requires: [IdentifyFS]
func HardLinkCount(
	ctx context.Context, fsys FS, p path.Path,
) (uint64, error) {
	id, err := identify(ctx, fsys, p)
	if err != nil {
		return UnknownLinks, err
	}
	return id.Links, nil
}
