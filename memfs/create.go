package memfs

import (
	"context"
	"io"
	"time"

	"lesiw.io/hostfs"
)

var (
	_ hostfs.CreateFS   = (*FS)(nil)
	_ hostfs.TruncateFS = (*FS)(nil)
)

// Create implements hostfs.CreateFS
func (f *FS) Create(
	ctx context.Context, name string,
) (io.WriteCloser, error) {
	f.Lock()
	defer f.Unlock()

	n, err := f.lookup(ctx, "create", name, true)
	switch {
	case err == nil && n.isDir():
		return nil, &hostfs.PathError{
			Op: "create", Path: name, Err: errIsDir,
		}
	case err == nil:
		n.data = nil
		return &writer{fs: f, n: n}, nil
	case f.trailing(name):
		return nil, &hostfs.PathError{
			Op: "create", Path: name, Err: errIsDir,
		}
	}
	dir, base, err := f.lookupParent(ctx, "create", name)
	if err != nil {
		return nil, err
	}
	n = f.newNode(hostfs.FileMode(ctx))
	dir.nodes[base] = n
	return &writer{fs: f, n: n}, nil
}

// Truncate implements hostfs.TruncateFS
func (f *FS) Truncate(ctx context.Context, name string, size int64) error {
	f.Lock()
	defer f.Unlock()

	n, err := f.lookup(ctx, "truncate", name, true)
	if err != nil {
		return err
	}
	if n.isDir() {
		return &hostfs.PathError{Op: "truncate", Path: name, Err: errIsDir}
	}
	if size < 0 {
		return &hostfs.PathError{
			Op: "truncate", Path: name, Err: hostfs.ErrInvalid,
		}
	}
	if int64(len(n.data)) >= size {
		n.data = n.data[:size]
	} else {
		n.data = append(n.data, make([]byte, size-int64(len(n.data)))...)
	}
	n.modTime = time.Now()
	return nil
}
