package fstest

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

func testGlob(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	if _, ok := fsys.(hostfs.OpenDirFS); !ok {
		t.Skip("OpenDirFS not supported")
	}
	dir := testDir(ctx, t, fsys, "test_glob")
	for _, name := range [][]string{
		{"main.go"},
		{"pkg", "util.go"},
		{"pkg", "README.md"},
		{"pkg", "sub", "deep.go"},
	} {
		writeFile(ctx, t, fsys, dir.Join(name...), "package x")
	}

	tests := []struct {
		pattern string
		want    []string
	}{
		{"*.go", []string{"main.go"}},
		{"**/*.go", []string{"main.go", "pkg/util.go", "pkg/sub/deep.go"}},
		{"pkg/*", []string{"pkg/README.md", "pkg/sub", "pkg/util.go"}},
		{"*.rs", nil},
	}
	prefix := dir.GenericString() + "/"
	for _, root := range []path.Path{dir, dir.Join("")} {
		for _, tt := range tests {
			matches, err := hostfs.Glob(ctx, fsys, root, tt.pattern)
			if err != nil {
				t.Fatalf("Glob(%q, %q): %v", root, tt.pattern, err)
			}
			var got []string
			for _, m := range matches {
				got = append(got,
					strings.TrimPrefix(m.GenericString(), prefix))
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Glob(%q, %q) = %q, want %q",
					root, tt.pattern, got, tt.want)
			}
		}
	}

	if _, err := hostfs.Glob(ctx, fsys, dir, "["); !errors.Is(
		err, doublestar.ErrBadPattern,
	) {
		t.Errorf("Glob(\"[\") error = %v, want ErrBadPattern", err)
	}
}
