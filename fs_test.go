package hostfs_test

import (
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/memfs"
	"lesiw.io/hostfs/path"
)

// lstatFS exposes only the core FS interface of a file system.
type lstatFS struct{ hostfs.FS }

// readLinkFS exposes Lstat and ReadLink but not Stat.
type readLinkFS struct{ hostfs.ReadLinkFS }

// newFS returns an in-memory POSIX file system holding the given files.
// A name ending in a slash is created as a directory.
func newFS(t *testing.T, names ...string) *memfs.FS {
	t.Helper()
	ctx, fsys := t.Context(), memfs.New(path.Posix)
	for _, name := range names {
		p := path.Posix.New(name)
		if p.Filename().Empty() {
			if _, err := hostfs.Mkdirs(ctx, fsys, p); err != nil {
				t.Fatalf("Mkdirs(%q): %v", name, err)
			}
			continue
		}
		if _, err := hostfs.Mkdirs(ctx, fsys, p.Parent()); err != nil {
			t.Fatalf("Mkdirs(%q): %v", p.Parent(), err)
		}
		if err := hostfs.WriteFile(ctx, fsys, p, []byte(name)); err != nil {
			t.Fatalf("WriteFile(%q): %v", name, err)
		}
	}
	return fsys
}

func TestStyle(t *testing.T) {
	if got := hostfs.Style(memfs.New(path.Windows)); got != path.Windows {
		t.Errorf("Style(memfs Windows) = %v, want Windows", got)
	}
	fsys := lstatFS{memfs.New(path.Windows)}
	if got := hostfs.Style(fsys); got != path.Native {
		t.Errorf("Style(lstat only) = %v, want %v", got, path.Native)
	}
}
