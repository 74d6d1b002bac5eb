package memfs

import (
	"context"

	"lesiw.io/hostfs"
)

var _ hostfs.RemoveFS = (*FS)(nil)

// Remove implements hostfs.RemoveFS
func (f *FS) Remove(ctx context.Context, name string) error {
	f.Lock()
	defer f.Unlock()

	dir, base, err := f.lookupParent(ctx, "remove", name)
	if err != nil {
		return err
	}
	n, ok := dir.nodes[base]
	if !ok {
		return &hostfs.PathError{
			Op: "remove", Path: name, Err: hostfs.ErrNotExist,
		}
	}
	if n.isDir() && len(n.nodes) > 0 {
		return &hostfs.PathError{
			Op: "remove", Path: name, Err: errDirNotEmpty,
		}
	}
	if dir.mode.Perm()&0200 == 0 {
		return &hostfs.PathError{
			Op: "remove", Path: name, Err: hostfs.ErrPermission,
		}
	}
	delete(dir.nodes, base)
	n.nlink--
	return nil
}
