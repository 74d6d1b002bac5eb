package fstest

import (
	"context"
	"runtime"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

func testStatus(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_status")
	file := dir.Join("file.txt")
	writeFile(ctx, t, fsys, file, "data")

	tests := []struct {
		path path.Path
		want hostfs.FileType
	}{
		{dir, hostfs.TypeDirectory},
		{file, hostfs.TypeRegular},
		{dir.Join("missing"), hostfs.TypeNotFound},
		{dir.Join("missing", "deeper"), hostfs.TypeNotFound},
		{file.Join("child"), hostfs.TypeNotFound},
	}
	for _, tt := range tests {
		st := status(ctx, t, fsys, tt.path)
		if st.Type != tt.want {
			t.Errorf("Status(%q).Type = %v, want %v",
				tt.path, st.Type, tt.want)
		}
	}

	// A trailing separator names a directory.
	if runtime.GOOS != "windows" || hostfs.Style(fsys) != path.Native {
		slashed := file.Join("")
		if st := status(ctx, t, fsys, slashed); st.Exists() {
			t.Errorf("Status(%q).Type = %v, want not found",
				slashed, st.Type)
		}
	}

	if st := status(ctx, t, fsys, file); st.Perms&hostfs.OwnerRead == 0 {
		t.Errorf("Status(%q).Perms = %o, want owner read", file, st.Perms)
	}
	missing := status(ctx, t, fsys, dir.Join("missing"))
	if missing.Perms != hostfs.PermsUnknown {
		t.Errorf("Status(missing).Perms = %o, want PermsUnknown",
			missing.Perms)
	}

	ok, err := hostfs.Exists(ctx, fsys, file)
	if err != nil || !ok {
		t.Errorf("Exists(%q) = %v, %v, want true, <nil>", file, ok, err)
	}
	ok, err = hostfs.Exists(ctx, fsys, dir.Join("missing"))
	if err != nil || ok {
		t.Errorf("Exists(missing) = %v, %v, want false, <nil>", ok, err)
	}
}

func testStatusSymlink(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_status_symlink")
	target := dir.Join("target")
	writeFile(ctx, t, fsys, target, "data")

	link := dir.Join("link")
	symlink(ctx, t, fsys, hostfs.Path(fsys, "target"), link)
	dangling := dir.Join("dangling")
	symlink(ctx, t, fsys, hostfs.Path(fsys, "nowhere"), dangling)

	lst, err := hostfs.SymlinkStatus(ctx, fsys, link)
	if err != nil {
		t.Fatalf("SymlinkStatus(%q): %v", link, err)
	}
	if !lst.IsSymlink() {
		t.Errorf("SymlinkStatus(%q).Type = %v, want symlink", link, lst.Type)
	}
	if st := status(ctx, t, fsys, link); !st.IsRegular() {
		t.Errorf("Status(%q).Type = %v, want regular", link, st.Type)
	}

	st := status(ctx, t, fsys, dangling)
	if st.Type != hostfs.TypeUnknown {
		t.Errorf("Status(%q).Type = %v, want unknown", dangling, st.Type)
	}
	if !st.Exists() {
		t.Errorf("Status(%q).Exists() = false, want true", dangling)
	}
}
