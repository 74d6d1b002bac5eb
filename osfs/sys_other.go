//go:build !windows && !linux && !darwin && !freebsd

package osfs

import (
	"os"

	"lesiw.io/hostfs"
)

func readlink(name string) (string, error) { return os.Readlink(name) }

func identify(name string) (hostfs.FileIdentity, error) {
	return hostfs.FileIdentity{}, &os.PathError{
		Op: "identify", Path: name, Err: hostfs.ErrUnsupported,
	}
}

func space(name string) (hostfs.SpaceInfo, error) {
	return hostfs.UnknownSpace, &os.PathError{
		Op: "statfs", Path: name, Err: hostfs.ErrUnsupported,
	}
}
