package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/hostfs"
)

func testRemove(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_remove")
	file := dir.Join("file.txt")
	writeFile(ctx, t, fsys, file, "data")

	removed, err := hostfs.Remove(ctx, fsys, file)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("RemoveFS not supported")
	}
	if err != nil || !removed {
		t.Fatalf("Remove(%q) = %v, %v, want true, <nil>", file, removed, err)
	}
	if st := status(ctx, t, fsys, file); st.Exists() {
		t.Errorf("Status(%q) after Remove: file still exists", file)
	}

	removed, err = hostfs.Remove(ctx, fsys, file)
	if err != nil || removed {
		t.Errorf("Remove(%q) again = %v, %v, want false, <nil>",
			file, removed, err)
	}

	nonempty := dir.Join("nonempty")
	writeFile(ctx, t, fsys, nonempty.Join("file.txt"), "")
	if _, err = hostfs.Remove(ctx, fsys, nonempty); err == nil {
		t.Errorf("Remove(%q): expected error for non-empty directory",
			nonempty)
	}
}

func testRemoveAll(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_removeall")
	tree := dir.Join("a")
	if _, err := hostfs.Mkdirs(ctx, fsys, tree.Join("b", "c")); err != nil {
		t.Fatalf("Mkdirs: %v", err)
	}
	writeFile(ctx, t, fsys, tree.Join("f.txt"), "data")

	n, err := hostfs.RemoveAll(ctx, fsys, tree)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("RemoveFS or OpenDirFS not supported")
	}
	if err != nil || n != 4 {
		t.Fatalf("RemoveAll(%q) = %d, %v, want 4, <nil>", tree, n, err)
	}
	if st := status(ctx, t, fsys, tree); st.Exists() {
		t.Errorf("Status(%q) after RemoveAll: still exists", tree)
	}

	n, err = hostfs.RemoveAll(ctx, fsys, tree)
	if err != nil || n != 0 {
		t.Errorf("RemoveAll(missing) = %d, %v, want 0, <nil>", n, err)
	}

	file := dir.Join("file.txt")
	writeFile(ctx, t, fsys, file, "data")
	n, err = hostfs.RemoveAll(ctx, fsys, file)
	if err != nil || n != 1 {
		t.Errorf("RemoveAll(%q) = %d, %v, want 1, <nil>", file, n, err)
	}

	empty := dir.Join("empty")
	if _, err = hostfs.Mkdir(ctx, fsys, empty); err != nil {
		t.Fatalf("Mkdir(%q): %v", empty, err)
	}
	n, err = hostfs.RemoveAll(ctx, fsys, empty)
	if err != nil || n != 1 {
		t.Errorf("RemoveAll(%q) = %d, %v, want 1, <nil>", empty, n, err)
	}
}

func testRemoveAllSymlink(
	ctx context.Context, t *testing.T, fsys hostfs.FS,
) {
	dir := testDir(ctx, t, fsys, "test_removeall_symlink")
	keep := dir.Join("keep", "file.txt")
	writeFile(ctx, t, fsys, keep, "data")

	tree := dir.Join("tree")
	if _, err := hostfs.Mkdir(ctx, fsys, tree); err != nil {
		t.Fatalf("Mkdir(%q): %v", tree, err)
	}
	symlink(ctx, t, fsys, hostfs.Path(fsys, "../keep"), tree.Join("link"))

	n, err := hostfs.RemoveAll(ctx, fsys, tree)
	if err != nil || n != 2 {
		t.Fatalf("RemoveAll(%q) = %d, %v, want 2, <nil>", tree, n, err)
	}
	if st := status(ctx, t, fsys, keep); !st.IsRegular() {
		t.Errorf("Status(%q).Type = %v after removing a link to it",
			keep, st.Type)
	}
}

func testRemoveAllRoot(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	root := hostfs.Path(fsys, string(hostfs.Style(fsys).Separator()))
	n, err := hostfs.RemoveAll(ctx, fsys, root)
	if !errors.Is(err, hostfs.ErrRootRemoval) {
		t.Errorf("RemoveAll(%q) error = %v, want ErrRootRemoval", root, err)
	}
	if n != hostfs.UnknownCount {
		t.Errorf("RemoveAll(%q) = %d, want UnknownCount", root, n)
	}
}
