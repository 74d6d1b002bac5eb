package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

func testFileSize(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_file_size")
	file := dir.Join("file.txt")
	writeFile(ctx, t, fsys, file, "hello")

	size, err := hostfs.FileSize(ctx, fsys, file)
	if err != nil || size != 5 {
		t.Errorf("FileSize(%q) = %d, %v, want 5, <nil>", file, size, err)
	}
	missing := dir.Join("missing")
	size, err = hostfs.FileSize(ctx, fsys, missing)
	if err == nil || size != hostfs.UnknownSize {
		t.Errorf("FileSize(%q) = %d, %v, want UnknownSize and an error",
			missing, size, err)
	}

	mtime, err := hostfs.LastWriteTime(ctx, fsys, file)
	if err != nil || mtime.IsZero() {
		t.Errorf("LastWriteTime(%q) = %v, %v", file, mtime, err)
	}
	mtime, err = hostfs.LastWriteTime(ctx, fsys, missing)
	if err == nil || !mtime.Equal(hostfs.MinFileTime) {
		t.Errorf("LastWriteTime(%q) = %v, %v, want MinFileTime and an error",
			missing, mtime, err)
	}
}

func testResizeFile(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_resize")
	file := dir.Join("file.txt")
	writeFile(ctx, t, fsys, file, "hello")

	for _, want := range []uint64{10, 2, 0} {
		err := hostfs.ResizeFile(ctx, fsys, file, want)
		if errors.Is(err, hostfs.ErrUnsupported) {
			t.Skip("TruncateFS not supported")
		}
		if err != nil {
			t.Fatalf("ResizeFile(%q, %d): %v", file, want, err)
		}
		size, err := hostfs.FileSize(ctx, fsys, file)
		if err != nil || size != want {
			t.Errorf("FileSize after ResizeFile(%q, %d) = %d, %v",
				file, want, size, err)
		}
	}
}

func testEquivalent(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_equivalent")
	a, b := dir.Join("a.txt"), dir.Join("b.txt")
	writeFile(ctx, t, fsys, a, "data")
	writeFile(ctx, t, fsys, b, "data")
	missing := dir.Join("missing")

	same, err := hostfs.Equivalent(ctx, fsys, a, a)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("IdentifyFS not supported")
	}
	if err != nil || !same {
		t.Errorf("Equivalent(%q, %q) = %v, %v, want true, <nil>",
			a, a, same, err)
	}
	if same, err = hostfs.Equivalent(ctx, fsys, a, b); err != nil || same {
		t.Errorf("Equivalent(%q, %q) = %v, %v, want false, <nil>",
			a, b, same, err)
	}
	same, err = hostfs.Equivalent(ctx, fsys, missing, missing)
	if err != nil || same {
		t.Errorf("Equivalent(missing, missing) = %v, %v, want false, <nil>",
			same, err)
	}
	if _, err = hostfs.Equivalent(ctx, fsys, a, missing); err == nil {
		t.Errorf("Equivalent(%q, missing): expected error", a)
	}
	if _, err = hostfs.Equivalent(ctx, fsys, missing, a); err == nil {
		t.Errorf("Equivalent(missing, %q): expected error", a)
	}

	link := dir.Join("link")
	symlink(ctx, t, fsys, hostfs.Path(fsys, "a.txt"), link)
	for _, pair := range [][2]path.Path{{a, link}, {link, a}} {
		same, err = hostfs.Equivalent(ctx, fsys, pair[0], pair[1])
		if err != nil || !same {
			t.Errorf("Equivalent(%q, %q) = %v, %v, want true, <nil>",
				pair[0], pair[1], same, err)
		}
	}
}
