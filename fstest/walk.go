package fstest

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

// walkTree creates a small tree and returns its root.
func walkTree(
	ctx context.Context, t *testing.T, fsys hostfs.FS, name string,
) path.Path {
	t.Helper()
	dir := testDir(ctx, t, fsys, name)
	if _, err := hostfs.Mkdirs(ctx, fsys, dir.Join("b", "y")); err != nil {
		t.Fatalf("Mkdirs: %v", err)
	}
	writeFile(ctx, t, fsys, dir.Join("a", "x"), "x")
	writeFile(ctx, t, fsys, dir.Join("b", "y", "z"), "z")
	writeFile(ctx, t, fsys, dir.Join("c"), "c")
	return dir
}

// walkNames returns the generic relative paths Walk yields under dir.
func walkNames(
	ctx context.Context, t *testing.T, fsys hostfs.FS, dir path.Path,
	depth int,
) []string {
	t.Helper()
	prefix := dir.GenericString() + "/"
	var names []string
	for entry, err := range hostfs.Walk(ctx, fsys, dir, depth) {
		if errors.Is(err, hostfs.ErrUnsupported) {
			t.Skip("OpenDirFS not supported")
		}
		if err != nil {
			t.Fatalf("Walk(%q): %v", dir, err)
		}
		name := entry.Path().GenericString()
		names = append(names, strings.TrimPrefix(name, prefix))
	}
	return names
}

func testWalk(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := walkTree(ctx, t, fsys, "test_walk")
	got := walkNames(ctx, t, fsys, dir, 0)
	want := []string{"a", "b", "c", "a/x", "b/y", "b/y/z"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk(%q) = %q, want %q", dir, got, want)
	}
}

func testWalkDepth(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := walkTree(ctx, t, fsys, "test_walk_depth")
	tests := []struct {
		depth int
		want  []string
	}{
		{1, []string{"a", "b", "c"}},
		{2, []string{"a", "b", "c", "a/x", "b/y"}},
		{-1, []string{"a", "b", "c", "a/x", "b/y", "b/y/z"}},
	}
	for _, tt := range tests {
		got := walkNames(ctx, t, fsys, dir, tt.depth)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Walk(%q, %d) = %q, want %q",
				dir, tt.depth, got, tt.want)
		}
	}
}
