package hostfs_test

import (
	"errors"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/memfs"
	"lesiw.io/hostfs/path"
)

func TestCurrentPath(t *testing.T) {
	ctx := t.Context()
	fsys := memfs.New(path.Windows)

	cwd, err := hostfs.CurrentPath(ctx, fsys)
	if err != nil || cwd.String() != `C:\` {
		t.Errorf("CurrentPath = %q, %v, want C:\\", cwd, err)
	}

	wctx := hostfs.WithWorkDir(ctx, `D:\work`)
	cwd, err = hostfs.CurrentPath(wctx, fsys)
	if err != nil || cwd.String() != `D:\work` {
		t.Errorf("CurrentPath with WorkDir = %q, %v, want D:\\work", cwd, err)
	}

	_, err = hostfs.CurrentPath(ctx, lstatFS{fsys})
	if !errors.Is(err, hostfs.ErrUnsupported) {
		t.Errorf("CurrentPath(lstat only) error = %v, want ErrUnsupported",
			err)
	}
}

func TestToAbsolute(t *testing.T) {
	ctx := hostfs.WithWorkDir(t.Context(), "/home/me")
	fsys := memfs.New(path.Posix)

	tests := []struct {
		name string
		fsys hostfs.FS
		path string
		want string
	}{
		{"Absolute", lstatFS{fsys}, "/etc", "/etc"},
		{"AbsFS", fsys, "notes.txt", "/home/me/notes.txt"},
		{"WorkDir", lstatFS{fsys}, "notes.txt", "/home/me/notes.txt"},
		{"Dot", fsys, ".", "/home/me/."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := path.Posix.New(tt.path)
			got, err := hostfs.ToAbsolute(ctx, tt.fsys, p)
			if err != nil || got.String() != tt.want {
				t.Errorf("ToAbsolute(%q) = %q, %v, want %q",
					p, got, err, tt.want)
			}
		})
	}

	_, err := hostfs.ToAbsolute(
		t.Context(), lstatFS{fsys}, path.Posix.New("x"),
	)
	if !errors.Is(err, hostfs.ErrUnsupported) {
		t.Errorf("ToAbsolute(lstat only) error = %v, want ErrUnsupported",
			err)
	}
}

func TestTempDirectoryPath(t *testing.T) {
	ctx := t.Context()
	for style, want := range map[path.Style]string{
		path.Posix:   "/tmp",
		path.Windows: `C:\Temp`,
	} {
		got, err := hostfs.TempDirectoryPath(ctx, memfs.New(style))
		if err != nil || got.String() != want || got.Style() != style {
			t.Errorf("TempDirectoryPath(%v) = %q, %v, want %q",
				style, got, err, want)
		}
	}
	_, err := hostfs.TempDirectoryPath(ctx, lstatFS{memfs.New(path.Posix)})
	if !errors.Is(err, hostfs.ErrUnsupported) {
		t.Errorf("TempDirectoryPath(lstat only) = %v, want ErrUnsupported",
			err)
	}
}

func TestSpace(t *testing.T) {
	ctx := t.Context()
	fsys := newFS(t, "f")
	fsys.SetCapacity(1000)

	info, err := hostfs.Space(ctx, fsys, path.Posix.New("f"))
	want := hostfs.SpaceInfo{Capacity: 1000, Free: 999, Available: 999}
	if err != nil || info != want {
		t.Errorf("Space(f) = %+v, %v, want %+v", info, err, want)
	}

	info, err = hostfs.Space(ctx, fsys, path.Posix.New("missing"))
	if err == nil || info != hostfs.UnknownSpace {
		t.Errorf("Space(missing) = %+v, %v, want UnknownSpace", info, err)
	}
	info, err = hostfs.Space(ctx, lstatFS{fsys}, path.Posix.New("f"))
	if !errors.Is(err, hostfs.ErrUnsupported) || info != hostfs.UnknownSpace {
		t.Errorf("Space(lstat only) = %+v, %v, want UnknownSpace", info, err)
	}
}
