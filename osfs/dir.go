package osfs

import (
	"context"
	"io"
	"os"

	"lesiw.io/hostfs"
)

// dirBatch is the number of names read from the host at a time.
const dirBatch = 64

// dirHandle implements hostfs.DirHandle over an open directory.
type dirHandle struct {
	f     *os.File
	names []string
}

// OpenDir implements hostfs.OpenDirFS
func (f *FS) OpenDir(
	ctx context.Context, name string,
) (hostfs.DirHandle, error) {
	file, err := os.Open(f.resolvePath(ctx, name))
	if err != nil {
		return nil, translate(err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if !info.IsDir() {
		file.Close()
		return nil, &os.PathError{
			Op: "opendir", Path: name, Err: hostfs.ErrNotDir,
		}
	}
	return &dirHandle{f: file}, nil
}

func (d *dirHandle) ReadName() (string, error) {
	if len(d.names) == 0 {
		names, err := d.f.Readdirnames(dirBatch)
		if len(names) == 0 {
			if err == nil {
				err = io.EOF
			}
			return "", err
		}
		d.names = names
	}
	name := d.names[0]
	d.names = d.names[1:]
	return name, nil
}

func (d *dirHandle) Close() error { return d.f.Close() }
