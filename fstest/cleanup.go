package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

// testDir creates a directory for one test and registers its removal
// using t.Cleanup.
func testDir(
	ctx context.Context, t *testing.T, fsys hostfs.FS, name string,
) path.Path {
	t.Helper()
	dir := hostfs.Path(fsys, name)
	if _, err := hostfs.Mkdirs(ctx, fsys, dir); err != nil {
		if errors.Is(err, hostfs.ErrUnsupported) {
			t.Skip("MkdirFS not supported")
		}
		t.Fatalf("Mkdirs(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if _, err := hostfs.RemoveAll(ctx, fsys, dir); err != nil {
			t.Errorf("cleanup: RemoveAll(%q): %v", dir, err)
		}
	})
	return dir
}

// writeFile writes data to p, skipping the test if the file system cannot
// create files.
func writeFile(
	ctx context.Context, t *testing.T, fsys hostfs.FS, p path.Path,
	data string,
) {
	t.Helper()
	if err := hostfs.WriteFile(ctx, fsys, p, []byte(data)); err != nil {
		if errors.Is(err, hostfs.ErrUnsupported) {
			t.Skip("CreateFS not supported")
		}
		t.Fatalf("WriteFile(%q): %v", p, err)
	}
}

// symlink creates link pointing at target, skipping the test if the file
// system cannot create symbolic links.
func symlink(
	ctx context.Context, t *testing.T, fsys hostfs.FS, target, link path.Path,
) {
	t.Helper()
	if err := hostfs.CreateSymlink(ctx, fsys, target, link); err != nil {
		if errors.Is(err, hostfs.ErrUnsupported) {
			t.Skip("SymlinkFS not supported")
		}
		t.Fatalf("CreateSymlink(%q, %q): %v", target, link, err)
	}
}

func status(
	ctx context.Context, t *testing.T, fsys hostfs.FS, p path.Path,
) hostfs.FileStatus {
	t.Helper()
	st, err := hostfs.Status(ctx, fsys, p)
	if err != nil {
		t.Fatalf("Status(%q): %v", p, err)
	}
	return st
}
