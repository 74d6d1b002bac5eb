package fstest

import (
	"context"
	"errors"
	"slices"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

func testReadDir(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_readdir")
	for _, name := range []string{"b.txt", "a.txt", "c.txt"} {
		writeFile(ctx, t, fsys, dir.Join(name), name)
	}
	if _, err := hostfs.Mkdir(ctx, fsys, dir.Join("sub")); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	var names []string
	for entry, err := range hostfs.ReadDir(ctx, fsys, dir) {
		if errors.Is(err, hostfs.ErrUnsupported) {
			t.Skip("OpenDirFS not supported")
		}
		if err != nil {
			t.Fatalf("ReadDir(%q): %v", dir, err)
		}
		if parent := entry.Path().Parent(); !parent.Equal(dir) {
			t.Errorf("entry %q: parent = %q, want %q",
				entry.Path(), parent, dir)
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	want := []string{"a.txt", "b.txt", "c.txt", "sub"}
	if !slices.Equal(names, want) {
		t.Errorf("ReadDir(%q) names = %q, want %q", dir, names, want)
	}

	for _, err := range hostfs.ReadDir(ctx, fsys, dir.Join("missing")) {
		if err == nil {
			t.Errorf("ReadDir(missing): expected error")
		}
	}
}

func testDirectoryIterator(
	ctx context.Context, t *testing.T, fsys hostfs.FS,
) {
	dir := testDir(ctx, t, fsys, "test_diriter")
	writeFile(ctx, t, fsys, dir.Join("file.txt"), "data")
	if _, err := hostfs.Mkdir(ctx, fsys, dir.Join("sub")); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	it, err := hostfs.NewDirectoryIterator(ctx, fsys, dir)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("OpenDirFS not supported")
	}
	if err != nil {
		t.Fatalf("NewDirectoryIterator(%q): %v", dir, err)
	}
	defer it.Close()

	kinds := make(map[string]hostfs.FileType)
	for !it.Done() {
		st, serr := it.Entry().Status(ctx)
		if serr != nil {
			t.Fatalf("Status(%q): %v", it.Path(), serr)
		}
		kinds[it.Entry().Name()] = st.Type
		if err = it.Increment(ctx); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}
	if got := kinds["file.txt"]; got != hostfs.TypeRegular {
		t.Errorf("file.txt type = %v, want regular", got)
	}
	if got := kinds["sub"]; got != hostfs.TypeDirectory {
		t.Errorf("sub type = %v, want directory", got)
	}
	if len(kinds) != 2 {
		t.Errorf("iterated %d entries, want 2", len(kinds))
	}

	if end := new(hostfs.DirectoryIterator); !it.Equal(end) {
		t.Errorf("exhausted iterator at %q, want end", it.Path())
	}
	if err = it.Increment(ctx); err != nil {
		t.Errorf("Increment at end: %v", err)
	}

	empty, err := hostfs.NewDirectoryIterator(ctx, fsys, path.Path{})
	if err != nil || !empty.Done() {
		t.Errorf("NewDirectoryIterator(\"\") = done %v, %v, want end",
			empty != nil && empty.Done(), err)
	}
}
