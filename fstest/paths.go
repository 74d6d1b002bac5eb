package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/hostfs"
)

func testCurrentPath(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	cwd, err := hostfs.CurrentPath(ctx, fsys)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("GetwdFS not supported")
	}
	if err != nil {
		t.Fatalf("CurrentPath: %v", err)
	}
	if !cwd.IsAbsolute() {
		t.Errorf("CurrentPath = %q, want an absolute path", cwd)
	}

	dir := cwd.Join("elsewhere")
	got, err := hostfs.CurrentPath(hostfs.WithWorkDir(ctx, dir.String()), fsys)
	if err != nil || !got.Equal(dir) {
		t.Errorf("CurrentPath with WorkDir %q = %q, %v", dir, got, err)
	}
}

func testToAbsolute(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	rel := hostfs.Path(fsys, "some_file.txt")
	abs, err := hostfs.ToAbsolute(ctx, fsys, rel)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("AbsFS not supported")
	}
	if err != nil {
		t.Fatalf("ToAbsolute(%q): %v", rel, err)
	}
	if !abs.IsAbsolute() {
		t.Errorf("ToAbsolute(%q) = %q, want an absolute path", rel, abs)
	}
	if got := abs.Filename(); !got.Equal(rel) {
		t.Errorf("ToAbsolute(%q).Filename() = %q, want %q", rel, got, rel)
	}

	again, err := hostfs.ToAbsolute(ctx, fsys, abs)
	if err != nil || !again.Equal(abs) {
		t.Errorf("ToAbsolute(%q) = %q, %v, want unchanged", abs, again, err)
	}
}

func testTempDir(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir, err := hostfs.TempDirectoryPath(ctx, fsys)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("TempDirFS not supported")
	}
	if err != nil {
		t.Fatalf("TempDirectoryPath: %v", err)
	}
	if dir.Empty() {
		t.Errorf("TempDirectoryPath = %q, want a directory", dir)
	}
}

func testSpace(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_space")
	info, err := hostfs.Space(ctx, fsys, dir)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("SpaceFS not supported")
	}
	if err != nil {
		t.Fatalf("Space(%q): %v", dir, err)
	}
	if info.Capacity == 0 || info.Free > info.Capacity ||
		info.Available > info.Capacity {
		t.Errorf("Space(%q) = %+v, want free and available within capacity",
			dir, info)
	}

	missing := dir.Join("missing")
	info, err = hostfs.Space(ctx, fsys, missing)
	if err == nil || info != hostfs.UnknownSpace {
		t.Errorf("Space(%q) = %+v, %v, want UnknownSpace and an error",
			missing, info, err)
	}
}
