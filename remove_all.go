package hostfs

import (
	"context"

	"lesiw.io/hostfs/path"
)

// RemoveAll removes p and, if it is a directory, everything it contains.
// It returns the number of entries removed.
// Analogous to: [os.RemoveAll], rm -r.
//
// Children are removed before their parent. A child directory is
// descended into; anything else, including a symbolic link to a
// directory, is removed as a single entry.
//
// If p does not exist, RemoveAll returns 0 and a nil error without
// modifying anything.
//
// RemoveAll refuses with [ErrRootRemoval], touching nothing, when p is a
// root directory. That covers a root written with dot segments, such as
// "/home/..", and a directory the file system identifies as the root of
// its volume.
//
// The first error stops the removal and is returned with [UnknownCount].
// Entries removed before the error stay removed.
//
// Requires: [RemoveFS] && [OpenDirFS]
func RemoveAll(ctx context.Context, fsys FS, p path.Path) (uint64, error) {
	if p.IsRoot() || dotsToRoot(p) || namesRoot(ctx, fsys, p) {
		return UnknownCount, &PathError{
			Op: "removeall", Path: p.String(), Err: ErrRootRemoval,
		}
	}
	return removeAll(ctx, fsys, p)
}

// dotsToRoot reports whether the dot segments of p climb back to its root
// directory.
func dotsToRoot(p path.Path) bool {
	if !p.HasRootDirectory() || !p.HasRelativePath() {
		return false
	}
	depth := 0
	for c := range p.RelativePath().Components() {
		switch c.String() {
		case "", ".":
		case "..":
			depth = max(depth-1, 0)
		default:
			depth++
		}
	}
	return depth == 0
}

// namesRoot reports whether the directory p is the root directory of its
// volume. Paths that cannot be identified are not the root.
func namesRoot(ctx context.Context, fsys FS, p path.Path) bool {
	st, err := SymlinkStatus(ctx, fsys, p)
	if err != nil || !st.IsDirectory() {
		return false
	}
	abs := p
	if !p.HasRootDirectory() {
		if abs, err = ToAbsolute(ctx, fsys, p); err != nil {
			return false
		}
	}
	root := abs.RootPath()
	if !root.HasRootDirectory() {
		return false
	}
	same, err := Equivalent(ctx, fsys, p, root)
	return err == nil && same
}

func removeAll(ctx context.Context, fsys FS, p path.Path) (uint64, error) {
	st, err := SymlinkStatus(ctx, fsys, p)
	if err != nil {
		return UnknownCount, err
	}
	if !st.Exists() {
		return 0, nil
	}
	var count uint64
	if st.IsDirectory() {
		if count, err = removeChildren(ctx, fsys, p); err != nil {
			return UnknownCount, err
		}
	}
	removed, err := Remove(ctx, fsys, p)
	if err != nil {
		return UnknownCount, err
	}
	if removed {
		count++
	}
	Logger(ctx).Debug("removeall", "path", p.String(), "count", count)
	return count, nil
}

func removeChildren(
	ctx context.Context, fsys FS, dir path.Path,
) (uint64, error) {
	it, err := NewDirectoryIterator(ctx, fsys, dir)
	if err != nil {
		return 0, err
	}
	defer it.Close()

	var count uint64
	for !it.Done() {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		var st FileStatus
		if st, err = it.Entry().SymlinkStatus(ctx); err != nil {
			return 0, err
		}
		child := it.Path()
		if st.IsDirectory() {
			var n uint64
			if n, err = removeAll(ctx, fsys, child); err != nil {
				return 0, err
			}
			count += n
		} else {
			var removed bool
			if removed, err = Remove(ctx, fsys, child); err != nil {
				return 0, err
			}
			if removed {
				count++
			}
		}
		if err = it.Increment(ctx); err != nil {
			return 0, err
		}
	}
	return count, nil
}
