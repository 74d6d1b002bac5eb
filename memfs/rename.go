package memfs

import (
	"context"

	"lesiw.io/hostfs"
)

var _ hostfs.RenameFS = (*FS)(nil)

// Rename implements hostfs.RenameFS
func (f *FS) Rename(ctx context.Context, oldname, newname string) error {
	f.Lock()
	defer f.Unlock()

	oldDir, oldBase, err := f.lookupParent(ctx, "rename", oldname)
	if err != nil {
		return err
	}
	n, ok := oldDir.nodes[oldBase]
	if !ok {
		return &hostfs.PathError{
			Op: "rename", Path: oldname, Err: hostfs.ErrNotExist,
		}
	}
	newDir, newBase, err := f.lookupParent(ctx, "rename", newname)
	if err != nil {
		return err
	}
	if dst, exists := newDir.nodes[newBase]; exists && dst != n {
		switch {
		case dst.isDir() && !n.isDir():
			return &hostfs.PathError{
				Op: "rename", Path: newname, Err: errIsDir,
			}
		case !dst.isDir() && n.isDir():
			return &hostfs.PathError{
				Op: "rename", Path: newname, Err: hostfs.ErrNotDir,
			}
		case dst.isDir() && len(dst.nodes) > 0:
			return &hostfs.PathError{
				Op: "rename", Path: newname, Err: errDirNotEmpty,
			}
		}
		dst.nlink--
	}
	delete(oldDir.nodes, oldBase)
	newDir.nodes[newBase] = n
	return nil
}
