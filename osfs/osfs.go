// Package osfs implements lesiw.io/hostfs.FS using the host operating
// system.
//
// Names are native paths. Relative names are resolved against the root the
// FS was created with, joined with any working directory carried by the
// context. Absolute names are used as given.
//
// Platform-specific capabilities use golang.org/x/sys: symbolic link
// targets, file identity and volume capacity are read with the native
// system calls of each platform. On platforms without such support those
// capabilities report hostfs.ErrUnsupported.
//
// # Context Handling
//
// Host filesystem calls cannot be canceled, so context cancelation does not
// interrupt a call in progress. The context is used only for request-scoped
// values such as the working directory and creation modes.
package osfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

// FS implements lesiw.io/hostfs.FS using the host filesystem.
//
// FS also implements io.Closer. If the filesystem was created with an empty
// root (which creates a temporary directory), Close removes the temporary
// directory.
type FS struct {
	root      string
	cleanupFn func() error
}

// New creates a new host filesystem rooted at the specified directory.
//
// If root is empty (""), a temporary directory is created and the filesystem
// is rooted there. Call Close to remove the temporary directory when done.
//
// If root is ".", it uses the current working directory.
//
// Returns an error if the current working directory cannot be determined
// when root is ".", or if a temporary directory cannot be created when root
// is empty.
func New(root string) (*FS, error) {
	var cleanupFn func() error
	var err error

	switch root {
	case "":
		root, err = os.MkdirTemp("", "osfs-*")
		if err != nil {
			return nil, fmt.Errorf("creating temp directory: %w", err)
		}
		cleanupFn = func() error {
			return os.RemoveAll(root)
		}
	case ".":
		root, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	default:
		root, err = filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolving root: %w", err)
		}
	}

	return &FS{root: root, cleanupFn: cleanupFn}, nil
}

// TempFS returns a filesystem rooted in a new temporary directory, along
// with ctx. It panics if the directory cannot be created.
// Close the filesystem to remove the directory.
func TempFS(ctx context.Context) (*FS, context.Context) {
	fsys, err := New("")
	if err != nil {
		panic(err)
	}
	return fsys, ctx
}

// Root returns the directory relative names are resolved against.
func (f *FS) Root() string { return f.root }

// resolvePath converts a name to an absolute host path.
// If ctx contains a working directory via hostfs.WorkDir, relative names
// are resolved against that directory within the filesystem root.
func (f *FS) resolvePath(ctx context.Context, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	base := f.root
	if workDir := hostfs.WorkDir(ctx); workDir != "" {
		if filepath.IsAbs(workDir) {
			base = workDir
		} else {
			base = filepath.Join(f.root, workDir)
		}
	}
	return filepath.Join(base, name)
}

// Style implements hostfs.StyleFS
func (f *FS) Style() path.Style { return path.Native }

// Lstat implements hostfs.FS
func (f *FS) Lstat(
	ctx context.Context, name string,
) (hostfs.FileInfo, error) {
	info, err := os.Lstat(f.resolvePath(ctx, name))
	return info, translate(err)
}

// Stat implements hostfs.StatFS
func (f *FS) Stat(
	ctx context.Context, name string,
) (hostfs.FileInfo, error) {
	info, err := os.Stat(f.resolvePath(ctx, name))
	return info, translate(err)
}

// ReadLink implements hostfs.ReadLinkFS
func (f *FS) ReadLink(ctx context.Context, name string) (string, error) {
	return readlink(f.resolvePath(ctx, name))
}

// Create implements hostfs.CreateFS
func (f *FS) Create(
	ctx context.Context, name string,
) (io.WriteCloser, error) {
	p := f.resolvePath(ctx, name)
	perm := hostfs.FileMode(ctx)
	return os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
}

// Remove implements hostfs.RemoveFS
func (f *FS) Remove(ctx context.Context, name string) error {
	return translate(os.Remove(f.resolvePath(ctx, name)))
}

// Mkdir implements hostfs.MkdirFS
func (f *FS) Mkdir(ctx context.Context, name string) error {
	return os.Mkdir(f.resolvePath(ctx, name), hostfs.DirMode(ctx))
}

// Rename implements hostfs.RenameFS
func (f *FS) Rename(ctx context.Context, oldname, newname string) error {
	return os.Rename(
		f.resolvePath(ctx, oldname), f.resolvePath(ctx, newname),
	)
}

// Chmod implements hostfs.ChmodFS
func (f *FS) Chmod(
	ctx context.Context, name string, mode hostfs.Mode,
) error {
	return os.Chmod(f.resolvePath(ctx, name), mode)
}

// Truncate implements hostfs.TruncateFS
func (f *FS) Truncate(ctx context.Context, name string, size int64) error {
	return os.Truncate(f.resolvePath(ctx, name), size)
}

// Link implements hostfs.LinkFS
func (f *FS) Link(ctx context.Context, oldname, newname string) error {
	return os.Link(
		f.resolvePath(ctx, oldname), f.resolvePath(ctx, newname),
	)
}

// Identify implements hostfs.IdentifyFS
func (f *FS) Identify(
	ctx context.Context, name string,
) (hostfs.FileIdentity, error) {
	id, err := identify(f.resolvePath(ctx, name))
	return id, translate(err)
}

// Space implements hostfs.SpaceFS
func (f *FS) Space(
	ctx context.Context, name string,
) (hostfs.SpaceInfo, error) {
	return space(f.resolvePath(ctx, name))
}

// TempDir implements hostfs.TempDirFS
func (f *FS) TempDir(ctx context.Context) (string, error) {
	return tempDir(), nil
}

// Getwd implements hostfs.GetwdFS
func (f *FS) Getwd(ctx context.Context) (string, error) {
	return f.resolvePath(ctx, "."), nil
}

// Abs implements hostfs.AbsFS
func (f *FS) Abs(ctx context.Context, name string) (string, error) {
	return f.resolvePath(ctx, name), nil
}

// Close removes the temporary directory if this filesystem was created with
// New(""). If the filesystem was created with a specific root directory,
// Close does nothing and returns nil.
//
// Close implements io.Closer.
func (f *FS) Close() error {
	if f.cleanupFn != nil {
		return f.cleanupFn()
	}
	return nil
}

// Compile-time interface checks
var (
	_ hostfs.FS         = (*FS)(nil)
	_ hostfs.StyleFS    = (*FS)(nil)
	_ hostfs.StatFS     = (*FS)(nil)
	_ hostfs.ReadLinkFS = (*FS)(nil)
	_ hostfs.SymlinkFS  = (*FS)(nil)
	_ hostfs.LinkFS     = (*FS)(nil)
	_ hostfs.CreateFS   = (*FS)(nil)
	_ hostfs.RemoveFS   = (*FS)(nil)
	_ hostfs.MkdirFS    = (*FS)(nil)
	_ hostfs.RenameFS   = (*FS)(nil)
	_ hostfs.ChmodFS    = (*FS)(nil)
	_ hostfs.TruncateFS = (*FS)(nil)
	_ hostfs.OpenDirFS  = (*FS)(nil)
	_ hostfs.IdentifyFS = (*FS)(nil)
	_ hostfs.SpaceFS    = (*FS)(nil)
	_ hostfs.TempDirFS  = (*FS)(nil)
	_ hostfs.GetwdFS    = (*FS)(nil)
	_ hostfs.AbsFS      = (*FS)(nil)
	_ io.Closer         = (*FS)(nil)
)
