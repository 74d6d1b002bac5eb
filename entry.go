package hostfs

import (
	"context"

	"lesiw.io/hostfs/path"
)

// A DirectoryEntry is a path produced by directory enumeration, along with
// lazily cached status.
//
// Status and SymlinkStatus are each read at most once until Refresh is
// called. Failed queries are not cached.
type DirectoryEntry struct {
	fsys FS
	path path.Path

	status, symlinkStatus       FileStatus
	hasStatus, hasSymlinkStatus bool
}

// NewDirectoryEntry returns an entry for p in fsys with nothing cached.
func NewDirectoryEntry(fsys FS, p path.Path) DirectoryEntry {
	return DirectoryEntry{fsys: fsys, path: p}
}

// Path returns the path of the entry.
func (e *DirectoryEntry) Path() path.Path { return e.path }

// Name returns the filename of the entry.
func (e *DirectoryEntry) Name() string { return e.path.Filename().String() }

// Status returns the entry's status, following symbolic links.
func (e *DirectoryEntry) Status(ctx context.Context) (FileStatus, error) {
	if e.hasStatus {
		return e.status, nil
	}
	st, err := Status(ctx, e.fsys, e.path)
	if err != nil {
		return st, err
	}
	e.status, e.hasStatus = st, true
	return st, nil
}

// SymlinkStatus returns the entry's own status without following
// symbolic links.
func (e *DirectoryEntry) SymlinkStatus(
	ctx context.Context,
) (FileStatus, error) {
	if e.hasSymlinkStatus {
		return e.symlinkStatus, nil
	}
	st, err := SymlinkStatus(ctx, e.fsys, e.path)
	if err != nil {
		return st, err
	}
	e.symlinkStatus, e.hasSymlinkStatus = st, true
	return st, nil
}

// Refresh discards both cached statuses.
func (e *DirectoryEntry) Refresh() {
	e.hasStatus, e.hasSymlinkStatus = false, false
}
