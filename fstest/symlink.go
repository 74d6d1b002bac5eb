package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/hostfs"
)

func testSymlink(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_symlink")
	file := dir.Join("target.txt")
	writeFile(ctx, t, fsys, file, "data")

	target := hostfs.Path(fsys, "target.txt")
	link := dir.Join("link")
	symlink(ctx, t, fsys, target, link)

	got, err := hostfs.ReadSymlink(ctx, fsys, link)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("ReadLinkFS not supported")
	}
	if err != nil {
		t.Fatalf("ReadSymlink(%q): %v", link, err)
	}
	if !got.Equal(target) {
		t.Errorf("ReadSymlink(%q) = %q, want %q", link, got, target)
	}

	if _, err = hostfs.ReadSymlink(ctx, fsys, file); !errors.Is(
		err, hostfs.ErrInvalid,
	) {
		t.Errorf("ReadSymlink(%q) error = %v, want ErrInvalid", file, err)
	}
	missing := dir.Join("missing")
	if _, err = hostfs.ReadSymlink(ctx, fsys, missing); !errors.Is(
		err, hostfs.ErrNotExist,
	) {
		t.Errorf("ReadSymlink(%q) error = %v, want ErrNotExist",
			missing, err)
	}

	if err = hostfs.CreateSymlink(ctx, fsys, target, link); err == nil {
		t.Errorf("CreateSymlink over %q: expected error", link)
	}
}

func testCopySymlink(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_copy_symlink")
	target := hostfs.Path(fsys, "nowhere")
	link := dir.Join("link")
	symlink(ctx, t, fsys, target, link)

	dup := dir.Join("dup")
	err := hostfs.CopySymlink(ctx, fsys, link, dup)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("ReadLinkFS not supported")
	}
	if err != nil {
		t.Fatalf("CopySymlink(%q, %q): %v", link, dup, err)
	}
	got, err := hostfs.ReadSymlink(ctx, fsys, dup)
	if err != nil {
		t.Fatalf("ReadSymlink(%q): %v", dup, err)
	}
	if !got.Equal(target) {
		t.Errorf("ReadSymlink(%q) = %q, want %q", dup, got, target)
	}
}

func testHardlink(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_hardlink")
	file := dir.Join("file.txt")
	writeFile(ctx, t, fsys, file, "data")

	link := dir.Join("link.txt")
	err := hostfs.CreateHardlink(ctx, fsys, file, link)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("LinkFS not supported")
	}
	if err != nil {
		t.Fatalf("CreateHardlink(%q, %q): %v", file, link, err)
	}

	n, err := hostfs.HardLinkCount(ctx, fsys, file)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("IdentifyFS not supported")
	}
	if err != nil || n != 2 {
		t.Errorf("HardLinkCount(%q) = %d, %v, want 2, <nil>", file, n, err)
	}
	same, err := hostfs.Equivalent(ctx, fsys, file, link)
	if err != nil || !same {
		t.Errorf("Equivalent(%q, %q) = %v, %v, want true, <nil>",
			file, link, same, err)
	}

	if _, err = hostfs.Remove(ctx, fsys, link); err != nil {
		t.Fatalf("Remove(%q): %v", link, err)
	}
	n, err = hostfs.HardLinkCount(ctx, fsys, file)
	if err != nil || n != 1 {
		t.Errorf("HardLinkCount(%q) after Remove = %d, %v, want 1, <nil>",
			file, n, err)
	}
}
