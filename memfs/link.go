package memfs

import (
	"context"

	"lesiw.io/hostfs"
)

var (
	_ hostfs.SymlinkFS  = (*FS)(nil)
	_ hostfs.LinkFS     = (*FS)(nil)
	_ hostfs.ReadLinkFS = (*FS)(nil)
)

// Symlink implements hostfs.SymlinkFS
//
// The target is stored as given. It need not exist.
func (f *FS) Symlink(ctx context.Context, oldname, newname string) error {
	f.Lock()
	defer f.Unlock()

	dir, base, err := f.lookupParent(ctx, "symlink", newname)
	if err != nil {
		return err
	}
	if _, exists := dir.nodes[base]; exists {
		return &hostfs.PathError{
			Op: "symlink", Path: newname, Err: hostfs.ErrExist,
		}
	}
	n := f.newNode(hostfs.ModeSymlink | 0777)
	n.target = oldname
	dir.nodes[base] = n
	return nil
}

// Link implements hostfs.LinkFS
func (f *FS) Link(ctx context.Context, oldname, newname string) error {
	f.Lock()
	defer f.Unlock()

	n, err := f.lookup(ctx, "link", oldname, false)
	if err != nil {
		return err
	}
	if n.isDir() {
		return &hostfs.PathError{
			Op: "link", Path: oldname, Err: hostfs.ErrPermission,
		}
	}
	dir, base, err := f.lookupParent(ctx, "link", newname)
	if err != nil {
		return err
	}
	if _, exists := dir.nodes[base]; exists {
		return &hostfs.PathError{
			Op: "link", Path: newname, Err: hostfs.ErrExist,
		}
	}
	dir.nodes[base] = n
	n.nlink++
	return nil
}

// ReadLink implements hostfs.ReadLinkFS
func (f *FS) ReadLink(ctx context.Context, name string) (string, error) {
	f.RLock()
	defer f.RUnlock()

	n, err := f.lookup(ctx, "readlink", name, false)
	if err != nil {
		return "", err
	}
	if !n.isSymlink() {
		return "", &hostfs.PathError{
			Op: "readlink", Path: name, Err: hostfs.ErrInvalid,
		}
	}
	return n.target, nil
}
