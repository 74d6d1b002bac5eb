package fstest

import (
	"context"
	"testing"

	"lesiw.io/hostfs"
)

func testMkdir(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_mkdir")
	sub := dir.Join("sub")

	created, err := hostfs.Mkdir(ctx, fsys, sub)
	if err != nil || !created {
		t.Fatalf("Mkdir(%q) = %v, %v, want true, <nil>", sub, created, err)
	}
	if st := status(ctx, t, fsys, sub); !st.IsDirectory() {
		t.Errorf("Status(%q).Type = %v, want directory", sub, st.Type)
	}

	created, err = hostfs.Mkdir(ctx, fsys, sub)
	if err != nil || created {
		t.Errorf("Mkdir(%q) again = %v, %v, want false, <nil>",
			sub, created, err)
	}

	orphan := dir.Join("missing", "child")
	if _, err = hostfs.Mkdir(ctx, fsys, orphan); err == nil {
		t.Errorf("Mkdir(%q): expected error for missing parent", orphan)
	}
}

func testMkdirs(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_mkdirs")
	deep := dir.Join("a", "b", "c")

	for range 2 {
		created, err := hostfs.Mkdirs(ctx, fsys, deep)
		if err != nil || !created {
			t.Fatalf("Mkdirs(%q) = %v, %v, want true, <nil>",
				deep, created, err)
		}
	}
	for p := deep; !p.Equal(dir); p = p.Parent() {
		if st := status(ctx, t, fsys, p); !st.IsDirectory() {
			t.Errorf("Status(%q).Type = %v, want directory", p, st.Type)
		}
	}

	trailing := dir.Join("d", "")
	if created, err := hostfs.Mkdirs(ctx, fsys, trailing); err != nil ||
		!created {
		t.Errorf("Mkdirs(%q) = %v, %v, want true, <nil>",
			trailing, created, err)
	}
}

func testMkdirsNotDirectory(
	ctx context.Context, t *testing.T, fsys hostfs.FS,
) {
	dir := testDir(ctx, t, fsys, "test_mkdirs_file")
	file := dir.Join("file")
	writeFile(ctx, t, fsys, file, "data")

	p := file.Join("child")
	created, err := hostfs.Mkdirs(ctx, fsys, p)
	if err != nil || created {
		t.Errorf("Mkdirs(%q) = %v, %v, want false, <nil>", p, created, err)
	}
}
