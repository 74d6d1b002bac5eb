package memfs_test

import (
	"errors"
	"io"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/fstest"
	"lesiw.io/hostfs/memfs"
	"lesiw.io/hostfs/path"
)

func TestFS(t *testing.T) {
	for _, style := range []path.Style{path.Posix, path.Windows} {
		t.Run(style.String(), func(t *testing.T) {
			fstest.TestFS(t.Context(), t, memfs.New(style))
		})
	}
}

func TestSymlinkLoop(t *testing.T) {
	ctx, fsys := t.Context(), memfs.New(path.Posix)
	if err := fsys.Symlink(ctx, "b", "a"); err != nil {
		t.Fatal(err)
	}
	if err := fsys.Symlink(ctx, "a", "b"); err != nil {
		t.Fatal(err)
	}

	if _, err := fsys.Stat(ctx, "a"); err == nil {
		t.Error("Stat(a): expected error for a symlink loop")
	}
	st, err := hostfs.Status(ctx, fsys, path.Posix.New("a"))
	if err == nil {
		t.Errorf("Status(a) = %v, want an error", st.Type)
	}
	if st.Type != hostfs.TypeNone {
		t.Errorf("Status(a).Type = %v, want none", st.Type)
	}
}

func TestFail(t *testing.T) {
	ctx, fsys := t.Context(), memfs.New(path.Posix)
	errBoom := errors.New("boom")
	fsys.Fail("lstat", "x", errBoom)

	st, err := hostfs.SymlinkStatus(ctx, fsys, path.Posix.New("x"))
	if !errors.Is(err, errBoom) {
		t.Errorf("SymlinkStatus(x) error = %v, want %v", err, errBoom)
	}
	if st.Type != hostfs.TypeNone {
		t.Errorf("SymlinkStatus(x).Type = %v, want none", st.Type)
	}

	fsys.Fail("lstat", "x", nil)
	_, err = hostfs.SymlinkStatus(ctx, fsys, path.Posix.New("x"))
	if err != nil {
		t.Errorf("SymlinkStatus(x) after clearing: %v", err)
	}
}

func TestOpenDir(t *testing.T) {
	ctx, fsys := t.Context(), memfs.New(path.Posix)
	if err := fsys.Mkdir(ctx, "dir"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b", "a"} {
		if err := hostfs.WriteFile(
			ctx, fsys, path.Posix.New("dir").Join(name), nil,
		); err != nil {
			t.Fatal(err)
		}
	}

	dir, err := fsys.OpenDir(ctx, "dir")
	if err != nil {
		t.Fatal(err)
	}
	if got := fsys.OpenHandles(); got != 1 {
		t.Errorf("OpenHandles() = %d, want 1", got)
	}
	var names []string
	for {
		name, rerr := dir.ReadName()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			t.Fatal(rerr)
		}
		names = append(names, name)
	}
	want := []string{".", "..", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("ReadName = %q, want %q", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ReadName[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	for range 2 {
		if err = dir.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	}
	if got := fsys.OpenHandles(); got != 0 {
		t.Errorf("OpenHandles() after Close = %d, want 0", got)
	}
	if _, err = dir.ReadName(); !errors.Is(err, hostfs.ErrClosed) {
		t.Errorf("ReadName after Close error = %v, want ErrClosed", err)
	}
}

func TestOpenDirPermission(t *testing.T) {
	ctx, fsys := t.Context(), memfs.New(path.Posix)
	if err := fsys.Mkdir(ctx, "locked"); err != nil {
		t.Fatal(err)
	}
	if err := fsys.Chmod(ctx, "locked", 0300); err != nil {
		t.Fatal(err)
	}
	if _, err := fsys.OpenDir(ctx, "locked"); !errors.Is(
		err, hostfs.ErrPermission,
	) {
		t.Errorf("OpenDir(locked) error = %v, want ErrPermission", err)
	}
}

func TestWindowsNames(t *testing.T) {
	ctx, fsys := t.Context(), memfs.New(path.Windows)
	p := path.Windows.New(`C:\Users\me`)
	if _, err := hostfs.Mkdirs(ctx, fsys, p); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{`C:\Users\me`, `\Users\me`, "/Users/me"} {
		st, err := hostfs.Status(ctx, fsys, path.Windows.New(name))
		if err != nil {
			t.Fatalf("Status(%q): %v", name, err)
		}
		if !st.IsDirectory() {
			t.Errorf("Status(%q).Type = %v, want directory", name, st.Type)
		}
	}

	wctx := hostfs.WithWorkDir(ctx, `C:\Users`)
	info, err := fsys.Lstat(wctx, "me")
	if err != nil {
		t.Fatalf("Lstat(me) in C:\\Users: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Lstat(me).IsDir() = false, want true")
	}
}

func TestExecutableExtension(t *testing.T) {
	ctx, fsys := t.Context(), memfs.New(path.Windows)
	for _, name := range []string{"tool.EXE", "notes.txt"} {
		if err := hostfs.WriteFile(
			ctx, fsys, path.Windows.New(name), nil,
		); err != nil {
			t.Fatal(err)
		}
	}

	st, err := hostfs.Status(ctx, fsys, path.Windows.New("tool.EXE"))
	if err != nil {
		t.Fatal(err)
	}
	if st.Perms&hostfs.OwnerExec == 0 {
		t.Errorf("Status(tool.EXE).Perms = %o, want executable", st.Perms)
	}
	st, err = hostfs.Status(ctx, fsys, path.Windows.New("notes.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if st.Perms&hostfs.OwnerExec != 0 {
		t.Errorf("Status(notes.txt).Perms = %o, want not executable",
			st.Perms)
	}
}

func TestSpace(t *testing.T) {
	ctx, fsys := t.Context(), memfs.New(path.Posix)
	fsys.SetCapacity(100)
	if err := hostfs.WriteFile(
		ctx, fsys, path.Posix.New("f"), make([]byte, 30),
	); err != nil {
		t.Fatal(err)
	}
	if err := fsys.Link(ctx, "f", "g"); err != nil {
		t.Fatal(err)
	}

	info, err := hostfs.Space(ctx, fsys, path.Posix.New("/"))
	if err != nil {
		t.Fatal(err)
	}
	want := hostfs.SpaceInfo{Capacity: 100, Free: 70, Available: 70}
	if info != want {
		t.Errorf("Space(/) = %+v, want %+v", info, want)
	}
}

func TestTrailingSeparator(t *testing.T) {
	ctx, fsys := t.Context(), memfs.New(path.Posix)
	if err := fsys.Mkdir(ctx, "dir"); err != nil {
		t.Fatal(err)
	}
	if err := hostfs.WriteFile(
		ctx, fsys, path.Posix.New("file"), []byte("x"),
	); err != nil {
		t.Fatal(err)
	}
	if err := fsys.Symlink(ctx, "dir", "link"); err != nil {
		t.Fatal(err)
	}

	if _, err := fsys.Lstat(ctx, "file/"); !errors.Is(err, hostfs.ErrNotDir) {
		t.Errorf("Lstat(file/) error = %v, want ErrNotDir", err)
	}
	if _, err := fsys.Create(ctx, "new/"); err == nil {
		t.Error("Create(new/): expected error")
	}
	info, err := fsys.Lstat(ctx, "link/")
	if err != nil || !info.IsDir() {
		t.Errorf("Lstat(link/) = %v, %v, want a directory", info, err)
	}

	tests := []struct {
		name string
		want hostfs.FileType
	}{
		{"file/", hostfs.TypeNotFound},
		{"dir/", hostfs.TypeDirectory},
		{"file", hostfs.TypeRegular},
	}
	for _, tt := range tests {
		st, err := hostfs.Status(ctx, fsys, path.Posix.New(tt.name))
		if err != nil || st.Type != tt.want {
			t.Errorf("Status(%q) = %v, %v, want %v",
				tt.name, st.Type, err, tt.want)
		}
	}
}
