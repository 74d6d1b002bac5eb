package memfs

import (
	"context"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

var (
	_ hostfs.ChmodFS    = (*FS)(nil)
	_ hostfs.IdentifyFS = (*FS)(nil)
	_ hostfs.SpaceFS    = (*FS)(nil)
	_ hostfs.TempDirFS  = (*FS)(nil)
	_ hostfs.GetwdFS    = (*FS)(nil)
	_ hostfs.AbsFS      = (*FS)(nil)
)

// Chmod implements hostfs.ChmodFS
func (f *FS) Chmod(
	ctx context.Context, name string, mode hostfs.Mode,
) error {
	f.Lock()
	defer f.Unlock()

	n, err := f.lookup(ctx, "chmod", name, true)
	if err != nil {
		return err
	}
	n.mode = n.mode.Type() | mode.Perm()
	return nil
}

// Identify implements hostfs.IdentifyFS
func (f *FS) Identify(
	ctx context.Context, name string,
) (hostfs.FileIdentity, error) {
	f.RLock()
	defer f.RUnlock()

	n, err := f.lookup(ctx, "identify", name, true)
	if err != nil {
		return hostfs.FileIdentity{}, err
	}
	return hostfs.FileIdentity{
		Device:  1,
		Index:   n.ino,
		Size:    uint64(len(n.data)),
		ModTime: n.modTime,
		Links:   n.nlink,
	}, nil
}

// Space implements hostfs.SpaceFS
func (f *FS) Space(
	ctx context.Context, name string,
) (hostfs.SpaceInfo, error) {
	f.RLock()
	defer f.RUnlock()

	if _, err := f.lookup(ctx, "space", name, true); err != nil {
		return hostfs.SpaceInfo{}, err
	}
	used := min(usage(f.root, make(map[*node]bool)), f.capacity)
	return hostfs.SpaceInfo{
		Capacity:  f.capacity,
		Free:      f.capacity - used,
		Available: f.capacity - used,
	}, nil
}

// TempDir implements hostfs.TempDirFS
//
// The directory is not created.
func (f *FS) TempDir(ctx context.Context) (string, error) {
	if f.style == path.Windows {
		return `C:\Temp`, nil
	}
	return "/tmp", nil
}

// Getwd implements hostfs.GetwdFS
func (f *FS) Getwd(ctx context.Context) (string, error) {
	if wd := hostfs.WorkDir(ctx); wd != "" {
		return f.abs(wd), nil
	}
	return f.abs(""), nil
}

// Abs implements hostfs.AbsFS
func (f *FS) Abs(ctx context.Context, name string) (string, error) {
	p := f.style.New(name)
	if p.HasRootDirectory() {
		return f.abs(name), nil
	}
	wd, _ := f.Getwd(ctx)
	return f.style.New(wd).JoinPath(p.RelativePath()).String(), nil
}

// abs roots name at the volume root.
func (f *FS) abs(name string) string {
	p := f.style.New(name)
	if p.IsAbsolute() {
		return name
	}
	root := "/"
	if f.style == path.Windows {
		root = `C:\`
	}
	return f.style.New(root).JoinPath(p.RelativePath()).String()
}
