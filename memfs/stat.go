package memfs

import (
	"context"
	"time"

	"lesiw.io/hostfs"
)

var (
	_ hostfs.FS     = (*FS)(nil)
	_ hostfs.StatFS = (*FS)(nil)
)

// Lstat implements hostfs.FS
func (f *FS) Lstat(
	ctx context.Context, name string,
) (hostfs.FileInfo, error) {
	f.RLock()
	defer f.RUnlock()

	n, err := f.lookup(ctx, "lstat", name, false)
	if err != nil {
		return nil, err
	}
	return &fileInfo{name: f.style.New(name).Filename().String(), n: n}, nil
}

// Stat implements hostfs.StatFS
func (f *FS) Stat(
	ctx context.Context, name string,
) (hostfs.FileInfo, error) {
	f.RLock()
	defer f.RUnlock()

	n, err := f.lookup(ctx, "stat", name, true)
	if err != nil {
		return nil, err
	}
	return &fileInfo{name: f.style.New(name).Filename().String(), n: n}, nil
}

var _ hostfs.FileInfo = (*fileInfo)(nil)

type fileInfo struct {
	name string
	n    *node
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Mode() hostfs.Mode  { return fi.n.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.n.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.n.isDir() }
func (fi *fileInfo) Sys() any           { return nil }

func (fi *fileInfo) Size() int64 {
	if fi.n.isSymlink() {
		return int64(len(fi.n.target))
	}
	return int64(len(fi.n.data))
}
