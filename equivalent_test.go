package hostfs_test

import (
	"errors"
	"testing"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

func TestEquivalent(t *testing.T) {
	ctx := t.Context()
	fsys := newFS(t, "a", "b", "d/")
	for _, link := range [][2]string{{"a", "sym"}, {"d", "dsym"}} {
		if err := fsys.Symlink(ctx, link[0], link[1]); err != nil {
			t.Fatal(err)
		}
	}
	if err := fsys.Link(ctx, "a", "hard"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		a, b string
		want bool
	}{
		{"a", "a", true},
		{"a", "sym", true},
		{"a", "hard", true},
		{"d", "dsym", true},
		{"d", "d/", true},
		{"a", "b", false},
		{"a", "d", false},
		{"missing", "gone", false},
	}
	for _, tt := range tests {
		a, b := path.Posix.New(tt.a), path.Posix.New(tt.b)
		for _, pair := range [][2]path.Path{{a, b}, {b, a}} {
			got, err := hostfs.Equivalent(ctx, fsys, pair[0], pair[1])
			if err != nil || got != tt.want {
				t.Errorf("Equivalent(%q, %q) = %v, %v, want %v, <nil>",
					pair[0], pair[1], got, err, tt.want)
			}
		}
	}
}

func TestEquivalentErrors(t *testing.T) {
	ctx := t.Context()
	fsys := newFS(t, "a")
	a, missing := path.Posix.New("a"), path.Posix.New("missing")

	for _, pair := range [][2]path.Path{{a, missing}, {missing, a}} {
		_, err := hostfs.Equivalent(ctx, fsys, pair[0], pair[1])
		if !errors.Is(err, hostfs.ErrNotExist) {
			t.Errorf("Equivalent(%q, %q) error = %v, want ErrNotExist",
				pair[0], pair[1], err)
		}
	}
	_, err := hostfs.Equivalent(ctx, lstatFS{fsys}, a, a)
	if !errors.Is(err, hostfs.ErrUnsupported) {
		t.Errorf("Equivalent(lstat only) error = %v, want ErrUnsupported",
			err)
	}
}

func TestHardLinkCount(t *testing.T) {
	ctx := t.Context()
	fsys := newFS(t, "a")
	p := path.Posix.New("a")
	for i, name := range []string{"b", "c"} {
		if err := fsys.Link(ctx, "a", name); err != nil {
			t.Fatal(err)
		}
		n, err := hostfs.HardLinkCount(ctx, fsys, p)
		if want := uint64(i + 2); err != nil || n != want {
			t.Errorf("HardLinkCount(a) = %d, %v, want %d", n, err, want)
		}
	}
	n, err := hostfs.HardLinkCount(ctx, fsys, path.Posix.New("missing"))
	if err == nil || n != hostfs.UnknownLinks {
		t.Errorf("HardLinkCount(missing) = %d, %v, want UnknownLinks", n, err)
	}
}
