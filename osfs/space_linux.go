package osfs

import (
	"os"

	"golang.org/x/sys/unix"

	"lesiw.io/hostfs"
)

func space(name string) (hostfs.SpaceInfo, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(name, &st); err != nil {
		return hostfs.UnknownSpace, &os.PathError{
			Op: "statfs", Path: name, Err: err,
		}
	}
	unit := uint64(st.Frsize)
	if unit == 0 {
		unit = uint64(st.Bsize)
	}
	return hostfs.SpaceInfo{
		Capacity:  uint64(st.Blocks) * unit,
		Free:      uint64(st.Bfree) * unit,
		Available: uint64(st.Bavail) * unit,
	}, nil
}
