package memfs

import (
	"context"
	"io"
	"maps"
	"slices"

	"lesiw.io/hostfs"
)

var _ hostfs.OpenDirFS = (*FS)(nil)

// OpenDir implements hostfs.OpenDirFS
//
// The names are read when the directory is opened. Changes made to the
// directory afterwards are not seen by the handle.
func (f *FS) OpenDir(
	ctx context.Context, name string,
) (hostfs.DirHandle, error) {
	f.Lock()
	defer f.Unlock()

	n, err := f.lookup(ctx, "opendir", name, true)
	if err != nil {
		return nil, err
	}
	if !n.isDir() {
		return nil, &hostfs.PathError{
			Op: "opendir", Path: name, Err: hostfs.ErrNotDir,
		}
	}
	if n.mode.Perm()&0400 == 0 {
		return nil, &hostfs.PathError{
			Op: "opendir", Path: name, Err: hostfs.ErrPermission,
		}
	}
	names := append(
		[]string{".", ".."}, slices.Sorted(maps.Keys(n.nodes))...,
	)
	f.handles++
	return &dirHandle{fs: f, name: name, names: names}, nil
}

type dirHandle struct {
	fs     *FS
	name   string
	names  []string
	closed bool
}

func (d *dirHandle) ReadName() (string, error) {
	d.fs.RLock()
	defer d.fs.RUnlock()
	if d.closed {
		return "", &hostfs.PathError{
			Op: "readdir", Path: d.name, Err: hostfs.ErrClosed,
		}
	}
	if err := d.fs.fault("readdir", d.name); err != nil {
		return "", err
	}
	if len(d.names) == 0 {
		return "", io.EOF
	}
	name := d.names[0]
	d.names = d.names[1:]
	return name, nil
}

func (d *dirHandle) Close() error {
	d.fs.Lock()
	defer d.fs.Unlock()
	if !d.closed {
		d.closed = true
		d.fs.handles--
	}
	return nil
}
