//go:build linux || darwin || freebsd

package osfs

import (
	"os"
	"time"

	"golang.org/x/sys/unix"

	"lesiw.io/hostfs"
)

// readlinkStart is the initial buffer size for reading link targets.
const readlinkStart = 256

// readlink reads a link target, doubling its buffer until the target fits
// with room to spare.
func readlink(name string) (string, error) {
	for size := readlinkStart; ; size *= 2 {
		buf := make([]byte, size)
		n, err := unix.Readlink(name, buf)
		if err != nil {
			return "", &os.PathError{Op: "readlink", Path: name, Err: err}
		}
		if n < size {
			return string(buf[:n]), nil
		}
	}
}

func identify(name string) (hostfs.FileIdentity, error) {
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		return hostfs.FileIdentity{}, &os.PathError{
			Op: "stat", Path: name, Err: err,
		}
	}
	return hostfs.FileIdentity{
		Device:  uint64(st.Dev),
		Index:   uint64(st.Ino),
		Size:    uint64(st.Size),
		ModTime: time.Unix(st.Mtim.Unix()),
		Links:   uint64(st.Nlink),
	}, nil
}
