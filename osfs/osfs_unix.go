//go:build !windows

package osfs

import (
	"context"
	"os"
)

// tempDirEnv lists the variables consulted for the temporary directory,
// in order.
var tempDirEnv = []string{"TMPDIR", "TMP", "TEMP", "TEMPDIR"}

func tempDir() string {
	for _, key := range tempDirEnv {
		if dir := os.Getenv(key); dir != "" {
			return dir
		}
	}
	return "/tmp"
}

// Symlink implements hostfs.SymlinkFS
func (f *FS) Symlink(ctx context.Context, oldname, newname string) error {
	// oldname is the link target, not a path in this filesystem,
	// so it is stored as given
	return os.Symlink(oldname, f.resolvePath(ctx, newname))
}
