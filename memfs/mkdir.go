package memfs

import (
	"context"

	"lesiw.io/hostfs"
)

var _ hostfs.MkdirFS = (*FS)(nil)

// Mkdir implements hostfs.MkdirFS
func (f *FS) Mkdir(ctx context.Context, name string) error {
	f.Lock()
	defer f.Unlock()

	dir, base, err := f.lookupParent(ctx, "mkdir", name)
	if err != nil {
		if len(f.split(ctx, name)) == 0 {
			return &hostfs.PathError{
				Op: "mkdir", Path: name, Err: hostfs.ErrExist,
			}
		}
		return err
	}
	if _, exists := dir.nodes[base]; exists {
		return &hostfs.PathError{
			Op: "mkdir", Path: name, Err: hostfs.ErrExist,
		}
	}
	if dir.mode.Perm()&0200 == 0 {
		return &hostfs.PathError{
			Op: "mkdir", Path: name, Err: hostfs.ErrPermission,
		}
	}
	dir.nodes[base] = f.newNode(hostfs.ModeDir | hostfs.DirMode(ctx))
	return nil
}
