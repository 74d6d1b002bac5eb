package fstest

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

func testPermissions(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_permissions")
	file := dir.Join("file.txt")
	writeFile(ctx, t, fsys, file, "data")

	err := hostfs.Permissions(ctx, fsys, file, 0600, hostfs.PermReplace)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("ChmodFS not supported")
	}
	if err != nil {
		t.Fatalf("Permissions(%q, 0600): %v", file, err)
	}
	if err = hostfs.Permissions(ctx, fsys, file, 0, 0); !errors.Is(
		err, hostfs.ErrInvalid,
	) {
		t.Errorf("Permissions without option error = %v, want ErrInvalid",
			err)
	}
	missing := dir.Join("missing")
	if err = hostfs.Permissions(
		ctx, fsys, missing, hostfs.OwnerExec, hostfs.PermAdd,
	); !errors.Is(err, hostfs.ErrNotExist) {
		t.Errorf("Permissions(%q) error = %v, want ErrNotExist",
			missing, err)
	}
	if runtime.GOOS == "windows" && hostfs.Style(fsys) == path.Native {
		t.Skip("host permissions are not POSIX bits")
	}

	steps := []struct {
		prms hostfs.Perms
		opts hostfs.PermOptions
		want hostfs.Perms
	}{
		{0, hostfs.PermReplace, 0},
		{hostfs.OwnerRead | hostfs.OwnerWrite, hostfs.PermAdd, 0600},
		{hostfs.GroupRead, hostfs.PermAdd, 0640},
		{hostfs.OwnerWrite, hostfs.PermRemove, 0440},
		{0644, hostfs.PermReplace | hostfs.PermAdd, 0644},
	}
	for _, s := range steps {
		err = hostfs.Permissions(ctx, fsys, file, s.prms, s.opts)
		if err != nil {
			t.Fatalf("Permissions(%q, %o, %d): %v",
				file, s.prms, s.opts, err)
		}
		st := status(ctx, t, fsys, file)
		if got := st.Perms & hostfs.PermsAll; got != s.want {
			t.Errorf("Permissions(%q, %o, %d): perms = %o, want %o",
				file, s.prms, s.opts, got, s.want)
		}
	}
}
