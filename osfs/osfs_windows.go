package osfs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/windows"

	"lesiw.io/hostfs"
)

// symlinkAllowUnprivileged lets CreateSymbolicLink succeed without the
// symbolic link privilege when developer mode is enabled.
const symlinkAllowUnprivileged = 0x2

func tempDir() string { return os.TempDir() }

func readlink(name string) (string, error) { return os.Readlink(name) }

// Symlink implements hostfs.SymlinkFS
//
// A link to a directory is created as a directory link. If the process
// lacks the symbolic link privilege, the call is retried once as an
// unprivileged create.
func (f *FS) Symlink(ctx context.Context, oldname, newname string) error {
	linkErr := func(err error) error {
		return &os.LinkError{
			Op: "symlink", Old: oldname, New: newname, Err: err,
		}
	}
	link := f.resolvePath(ctx, newname)
	target := filepath.FromSlash(oldname)
	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(link), resolved)
	}
	var flags uint32
	if info, err := os.Stat(resolved); err == nil && info.IsDir() {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}
	link16, err := windows.UTF16PtrFromString(link)
	if err != nil {
		return linkErr(err)
	}
	target16, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return linkErr(err)
	}
	err = windows.CreateSymbolicLink(link16, target16, flags)
	if errors.Is(err, windows.ERROR_PRIVILEGE_NOT_HELD) {
		err = windows.CreateSymbolicLink(link16, target16,
			flags|symlinkAllowUnprivileged)
	}
	if err != nil {
		return linkErr(err)
	}
	return nil
}

func identify(name string) (hostfs.FileIdentity, error) {
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return hostfs.FileIdentity{}, &os.PathError{
			Op: "identify", Path: name, Err: err,
		}
	}
	h, err := windows.CreateFile(name16, 0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|
			windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		return hostfs.FileIdentity{}, &os.PathError{
			Op: "identify", Path: name, Err: err,
		}
	}
	defer windows.CloseHandle(h)

	var d windows.ByHandleFileInformation
	if err = windows.GetFileInformationByHandle(h, &d); err != nil {
		return hostfs.FileIdentity{}, &os.PathError{
			Op: "identify", Path: name, Err: err,
		}
	}
	return hostfs.FileIdentity{
		Device:  uint64(d.VolumeSerialNumber),
		Index:   uint64(d.FileIndexHigh)<<32 | uint64(d.FileIndexLow),
		Size:    uint64(d.FileSizeHigh)<<32 | uint64(d.FileSizeLow),
		ModTime: time.Unix(0, d.LastWriteTime.Nanoseconds()),
		Links:   uint64(d.NumberOfLinks),
	}, nil
}

func space(name string) (hostfs.SpaceInfo, error) {
	name16, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return hostfs.UnknownSpace, &os.PathError{
			Op: "statfs", Path: name, Err: err,
		}
	}
	var avail, total, free uint64
	err = windows.GetDiskFreeSpaceEx(name16, &avail, &total, &free)
	if err != nil {
		return hostfs.UnknownSpace, &os.PathError{
			Op: "statfs", Path: name, Err: err,
		}
	}
	return hostfs.SpaceInfo{
		Capacity:  total,
		Free:      free,
		Available: avail,
	}, nil
}
