package hostfs

import (
	"context"
	"iter"
	"slices"

	"lesiw.io/hostfs/path"
)

// ReadDir returns an iterator over the entries of the directory p, other
// than "." and "..", in the order the file system returns them.
// Analogous to: [os.ReadDir], ls.
//
// The directory handle is released when the iteration ends, including
// when the loop body breaks early. An error ends the iteration.
//
// Requires: [OpenDirFS]
func ReadDir(
	ctx context.Context, fsys FS, p path.Path,
) iter.Seq2[DirectoryEntry, error] {
	return func(yield func(DirectoryEntry, error) bool) {
		it, err := NewDirectoryIterator(ctx, fsys, p)
		if err != nil {
			yield(DirectoryEntry{}, err)
			return
		}
		defer it.Close()
		for !it.Done() {
			if !yield(*it.Entry(), nil) {
				return
			}
			if err = it.Increment(ctx); err != nil {
				yield(DirectoryEntry{}, err)
				return
			}
		}
	}
}

// walkItem is a directory waiting to be read by Walk.
type walkItem struct {
	dir   path.Path
	depth int
}

// Walk traverses the tree rooted at root breadth-first.
// Analogous to: [io/fs.WalkDir], find.
//
// The depth parameter controls how deep to traverse (like find -maxdepth):
//   - depth <= 0: unlimited depth
//   - depth >= 1: root directory plus n-1 levels of subdirectories
//
// Entries within each directory are yielded in lexical order. Walk does
// not follow symbolic links. Entries are yielded for symbolic links
// themselves, but they are not traversed.
//
// If an error occurs reading a directory, the iteration yields a zero
// DirectoryEntry and the error. The caller can choose to continue
// iterating (skip that directory) or break to stop the walk.
//
// Requires: [OpenDirFS]
func Walk(
	ctx context.Context, fsys FS, root path.Path, depth int,
) iter.Seq2[DirectoryEntry, error] {
	return func(yield func(DirectoryEntry, error) bool) {
		queue := []walkItem{{root, 0}}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			var entries []DirectoryEntry
			for entry, err := range ReadDir(ctx, fsys, current.dir) {
				if err != nil {
					if !yield(DirectoryEntry{}, err) {
						return
					}
					break
				}
				entries = append(entries, entry)
			}
			slices.SortFunc(entries, func(a, b DirectoryEntry) int {
				return a.path.Compare(b.path)
			})

			for i := range entries {
				entry := &entries[i]
				if !yield(*entry, nil) {
					return
				}
				st, err := entry.SymlinkStatus(ctx)
				if err != nil {
					if !yield(DirectoryEntry{}, err) {
						return
					}
					continue
				}
				next := current.depth + 1
				if st.IsDirectory() && (depth <= 0 || next < depth) {
					queue = append(queue, walkItem{entry.path, next})
				}
			}
		}
	}
}
