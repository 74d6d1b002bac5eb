package hostfs_test

import (
	"errors"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

func TestFileSize(t *testing.T) {
	ctx := t.Context()
	fsys := newFS(t, "dir/file")
	if err := fsys.Symlink(ctx, "dir/file", "link"); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"dir/file", "link"} {
		size, err := hostfs.FileSize(ctx, fsys, path.Posix.New(name))
		if want := uint64(len("dir/file")); err != nil || size != want {
			t.Errorf("FileSize(%q) = %d, %v, want %d", name, size, err, want)
		}
	}

	size, err := hostfs.FileSize(ctx, lstatFS{fsys}, path.Posix.New("link"))
	if !errors.Is(err, hostfs.ErrUnsupported) || size != hostfs.UnknownSize {
		t.Errorf("FileSize(link) without StatFS = %d, %v", size, err)
	}
	size, err = hostfs.FileSize(ctx, lstatFS{fsys}, path.Posix.New("dir/file"))
	if err != nil || size != uint64(len("dir/file")) {
		t.Errorf("FileSize(dir/file) without StatFS = %d, %v", size, err)
	}
}

func TestResizeFile(t *testing.T) {
	ctx := t.Context()
	fsys := newFS(t, "file")
	p := path.Posix.New("file")

	for _, want := range []uint64{100, 3, 0} {
		if err := hostfs.ResizeFile(ctx, fsys, p, want); err != nil {
			t.Fatalf("ResizeFile(%d): %v", want, err)
		}
		if size, err := hostfs.FileSize(ctx, fsys, p); err != nil ||
			size != want {
			t.Errorf("FileSize after ResizeFile(%d) = %d, %v",
				want, size, err)
		}
	}
	err := hostfs.ResizeFile(ctx, lstatFS{fsys}, p, 1)
	if !errors.Is(err, hostfs.ErrUnsupported) {
		t.Errorf("ResizeFile(lstat only) = %v, want ErrUnsupported", err)
	}
}

func TestLastWriteTime(t *testing.T) {
	ctx := t.Context()
	fsys := newFS(t, "file")

	mtime, err := hostfs.LastWriteTime(ctx, fsys, path.Posix.New("file"))
	if err != nil || mtime.IsZero() {
		t.Errorf("LastWriteTime(file) = %v, %v", mtime, err)
	}
	mtime, err = hostfs.LastWriteTime(ctx, fsys, path.Posix.New("missing"))
	if err == nil || !mtime.Equal(hostfs.MinFileTime) {
		t.Errorf("LastWriteTime(missing) = %v, %v, want MinFileTime",
			mtime, err)
	}
}
