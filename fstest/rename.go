package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/hostfs"
)

func testMove(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	dir := testDir(ctx, t, fsys, "test_move")
	from, to := dir.Join("from.txt"), dir.Join("to.txt")
	writeFile(ctx, t, fsys, from, "data")

	err := hostfs.Move(ctx, fsys, from, to)
	if errors.Is(err, hostfs.ErrUnsupported) {
		t.Skip("RenameFS not supported")
	}
	if err != nil {
		t.Fatalf("Move(%q, %q): %v", from, to, err)
	}
	if st := status(ctx, t, fsys, from); st.Exists() {
		t.Errorf("Status(%q) after Move: still exists", from)
	}
	if st := status(ctx, t, fsys, to); !st.IsRegular() {
		t.Errorf("Status(%q).Type = %v, want regular", to, st.Type)
	}
	if err = hostfs.Move(ctx, fsys, to, to); err != nil {
		t.Errorf("Move(%q, %q): %v", to, to, err)
	}

	var lerr *hostfs.LinkError
	err = hostfs.Move(ctx, fsys, from, dir.Join("other.txt"))
	if !errors.As(err, &lerr) {
		t.Errorf("Move(missing) error = %v, want *LinkError", err)
	}
}
