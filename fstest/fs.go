// Package fstest implements support for testing implementations of
// lesiw.io/hostfs.FS.
package fstest

import (
	"context"
	"testing"

	"lesiw.io/hostfs"
)

// TestFS runs a compliance test suite on a file system implementation.
//
// The file system must be writable. Relative names must resolve against a
// directory TestFS may fill with files; every test removes what it
// created. Capabilities the file system lacks are skipped.
//
// Typical usage:
//
//	func TestMyFS(t *testing.T) {
//	    fsys := myfs.New()
//	    t.Cleanup(func() { hostfs.Close(fsys) })
//	    fstest.TestFS(t.Context(), t, fsys)
//	}
func TestFS(ctx context.Context, t *testing.T, fsys hostfs.FS) {
	t.Helper()

	t.Run("Status", func(t *testing.T) {
		t.Run("Basic", func(t *testing.T) {
			testStatus(ctx, t, fsys)
		})

		t.Run("Symlink", func(t *testing.T) {
			testStatusSymlink(ctx, t, fsys)
		})
	})

	t.Run("Mkdir", func(t *testing.T) {
		t.Run("Basic", func(t *testing.T) {
			testMkdir(ctx, t, fsys)
		})

		t.Run("All", func(t *testing.T) {
			testMkdirs(ctx, t, fsys)
		})

		t.Run("NotDirectory", func(t *testing.T) {
			testMkdirsNotDirectory(ctx, t, fsys)
		})
	})

	t.Run("Remove", func(t *testing.T) {
		t.Run("Basic", func(t *testing.T) {
			testRemove(ctx, t, fsys)
		})

		t.Run("All", func(t *testing.T) {
			testRemoveAll(ctx, t, fsys)
		})

		t.Run("AllSymlink", func(t *testing.T) {
			testRemoveAllSymlink(ctx, t, fsys)
		})

		t.Run("AllRoot", func(t *testing.T) {
			testRemoveAllRoot(ctx, t, fsys)
		})
	})

	t.Run("Move", func(t *testing.T) {
		testMove(ctx, t, fsys)
	})

	t.Run("Symlink", func(t *testing.T) {
		t.Run("Basic", func(t *testing.T) {
			testSymlink(ctx, t, fsys)
		})

		t.Run("Copy", func(t *testing.T) {
			testCopySymlink(ctx, t, fsys)
		})

		t.Run("Hardlink", func(t *testing.T) {
			testHardlink(ctx, t, fsys)
		})
	})

	t.Run("ReadDir", func(t *testing.T) {
		t.Run("Basic", func(t *testing.T) {
			testReadDir(ctx, t, fsys)
		})

		t.Run("Iterator", func(t *testing.T) {
			testDirectoryIterator(ctx, t, fsys)
		})
	})

	t.Run("Walk", func(t *testing.T) {
		t.Run("BreadthFirst", func(t *testing.T) {
			testWalk(ctx, t, fsys)
		})

		t.Run("Depth", func(t *testing.T) {
			testWalkDepth(ctx, t, fsys)
		})
	})

	t.Run("Glob", func(t *testing.T) {
		testGlob(ctx, t, fsys)
	})

	t.Run("Permissions", func(t *testing.T) {
		testPermissions(ctx, t, fsys)
	})

	t.Run("Metadata", func(t *testing.T) {
		t.Run("Size", func(t *testing.T) {
			testFileSize(ctx, t, fsys)
		})

		t.Run("Resize", func(t *testing.T) {
			testResizeFile(ctx, t, fsys)
		})

		t.Run("Equivalent", func(t *testing.T) {
			testEquivalent(ctx, t, fsys)
		})
	})

	t.Run("Paths", func(t *testing.T) {
		t.Run("CurrentPath", func(t *testing.T) {
			testCurrentPath(ctx, t, fsys)
		})

		t.Run("ToAbsolute", func(t *testing.T) {
			testToAbsolute(ctx, t, fsys)
		})

		t.Run("TempDir", func(t *testing.T) {
			testTempDir(ctx, t, fsys)
		})

		t.Run("Space", func(t *testing.T) {
			testSpace(ctx, t, fsys)
		})
	})
}
