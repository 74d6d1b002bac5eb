package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// An AbsFS is a file system with the Abs method.
type AbsFS interface {
	FS

	// Abs returns an absolute representation of name.
	// If name is not absolute, it is resolved against the working
	// directory of the file system.
	Abs(ctx context.Context, name string) (string, error)
}

// ToAbsolute returns an absolute form of p.
// Analogous to: [path/filepath.Abs], realpath.
//
// An absolute p is returned unchanged. Otherwise ToAbsolute asks the file
// system, falling back to joining p onto [CurrentPath].
//
// Requires: [AbsFS] || [GetwdFS] || (absolute [WorkDir] in ctx)
func ToAbsolute(
	ctx context.Context, fsys FS, p path.Path,
) (path.Path, error) {
	if p.IsAbsolute() {
		return p, nil
	}
	if afs, ok := fsys.(AbsFS); ok {
		abs, err := afs.Abs(ctx, p.String())
		if err == nil {
			return p.Style().New(abs), nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return path.Path{}, newPathError("abs", p.String(), err)
		}
	}
	cwd, err := CurrentPath(ctx, fsys)
	if err != nil {
		return path.Path{}, err
	}
	return cwd.JoinPath(p), nil
}
