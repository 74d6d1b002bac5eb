package hostfs

import (
	"context"
	"errors"
	"strings"

	"lesiw.io/hostfs/path"
)

// A FileType is the kind of entry a path names.
type FileType uint8

// File types reported by [Status] and [SymlinkStatus].
const (
	// TypeNone means the status query itself failed.
	TypeNone FileType = iota
	// TypeNotFound means the path names nothing.
	TypeNotFound
	TypeRegular
	TypeDirectory
	TypeSymlink
	TypeBlock
	TypeCharacter
	TypeFIFO
	TypeSocket
	// TypeUnknown means the entry exists but its type could not be
	// determined, as for a dangling symbolic link.
	TypeUnknown
)

var fileTypeNames = [...]string{
	TypeNone:      "none",
	TypeNotFound:  "not found",
	TypeRegular:   "regular",
	TypeDirectory: "directory",
	TypeSymlink:   "symlink",
	TypeBlock:     "block",
	TypeCharacter: "character",
	TypeFIFO:      "fifo",
	TypeSocket:    "socket",
	TypeUnknown:   "unknown",
}

func (t FileType) String() string {
	if int(t) < len(fileTypeNames) {
		return fileTypeNames[t]
	}
	return "invalid"
}

// A FileStatus is the type and permissions of a filesystem entry.
type FileStatus struct {
	Type  FileType
	Perms Perms
}

// Exists reports whether the status describes an existing entry.
func (s FileStatus) Exists() bool {
	return s.Type != TypeNone && s.Type != TypeNotFound
}

// IsDirectory reports whether the entry is a directory.
func (s FileStatus) IsDirectory() bool { return s.Type == TypeDirectory }

// IsRegular reports whether the entry is a regular file.
func (s FileStatus) IsRegular() bool { return s.Type == TypeRegular }

// IsSymlink reports whether the entry is a symbolic link.
func (s FileStatus) IsSymlink() bool { return s.Type == TypeSymlink }

// IsOther reports whether the entry exists and is neither a regular file,
// a directory nor a symbolic link.
func (s FileStatus) IsOther() bool {
	switch s.Type {
	case TypeNone, TypeNotFound, TypeRegular, TypeDirectory, TypeSymlink:
		return false
	}
	return true
}

var (
	statusNotFound = FileStatus{Type: TypeNotFound, Perms: PermsUnknown}
	statusUnknown  = FileStatus{Type: TypeUnknown, Perms: PermsUnknown}
)

// maxSymlinks bounds the links followed by [Status] without [StatFS].
const maxSymlinks = 40

// fileStatus converts FileInfo read for p into a FileStatus.
func fileStatus(p path.Path, info FileInfo) FileStatus {
	mode := info.Mode()
	st := FileStatus{Perms: permsOf(mode)}
	switch {
	case mode&ModeSymlink != 0:
		st.Type = TypeSymlink
	case mode.IsDir():
		st.Type = TypeDirectory
	case mode.IsRegular():
		st.Type = TypeRegular
	case mode&ModeNamedPipe != 0:
		st.Type = TypeFIFO
	case mode&ModeSocket != 0:
		st.Type = TypeSocket
	case mode&ModeCharDevice != 0:
		st.Type = TypeCharacter
	case mode&ModeDevice != 0:
		st.Type = TypeBlock
	default:
		st.Type = TypeUnknown
	}
	if st.Type == TypeRegular && p.Style() == path.Windows &&
		isExecutable(p) {
		st.Perms |= OwnerExec | GroupExec | OthersExec
	}
	return st
}

var executableExts = []string{".exe", ".cmd", ".bat", ".com"}

func isExecutable(p path.Path) bool {
	ext := p.Extension().String()
	for _, e := range executableExts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// SymlinkStatus returns the type and permissions of the entry p names.
// A symbolic link is reported as itself.
//
// A missing entry yields type [TypeNotFound] and a nil error. Any other
// failure yields type [TypeNone] and the error.
//
// Requires: [FS]
func SymlinkStatus(
	ctx context.Context, fsys FS, p path.Path,
) (FileStatus, error) {
	info, err := fsys.Lstat(ctx, p.String())
	switch {
	case err == nil:
		return fileStatus(p, info), nil
	case notFound(err):
		return statusNotFound, nil
	}
	return FileStatus{}, newPathError("lstat", p.String(), err)
}

// Status returns the type and permissions of the entry p names.
// A symbolic link is followed to its target. A dangling link yields type
// [TypeUnknown] and a nil error.
//
// A missing entry yields type [TypeNotFound] and a nil error. Any other
// failure yields type [TypeNone] and the error.
//
// Requires: [FS] && ([StatFS] || [ReadLinkFS])
func Status(ctx context.Context, fsys FS, p path.Path) (FileStatus, error) {
	st, err := SymlinkStatus(ctx, fsys, p)
	if err != nil || st.Type != TypeSymlink {
		return st, err
	}
	if sfs, ok := fsys.(StatFS); ok {
		info, serr := sfs.Stat(ctx, p.String())
		switch {
		case serr == nil:
			return fileStatus(p, info), nil
		case notFound(serr):
			return statusUnknown, nil
		case !errors.Is(serr, ErrUnsupported):
			return FileStatus{}, newPathError("stat", p.String(), serr)
		}
	}
	return followStatus(ctx, fsys, p)
}

// followStatus resolves the link at p by reading link targets.
func followStatus(
	ctx context.Context, fsys FS, p path.Path,
) (FileStatus, error) {
	rfs, ok := fsys.(ReadLinkFS)
	if !ok {
		return FileStatus{}, &PathError{
			Op: "stat", Path: p.String(), Err: ErrUnsupported,
		}
	}
	link := p
	for range maxSymlinks {
		target, err := rfs.ReadLink(ctx, link.String())
		if err != nil {
			return FileStatus{}, newPathError("readlink", link.String(), err)
		}
		next := p.Style().New(target)
		if next.IsRelative() {
			next = link.Parent().JoinPath(next)
		}
		st, err := SymlinkStatus(ctx, fsys, next)
		switch {
		case err != nil:
			return FileStatus{}, err
		case st.Type == TypeNotFound:
			return statusUnknown, nil
		case st.Type != TypeSymlink:
			return st, nil
		}
		link = next
	}
	return FileStatus{}, &PathError{
		Op: "stat", Path: p.String(), Err: errTooManyLinks,
	}
}

// Exists reports whether p names an existing entry, following symbolic
// links. A missing entry is not an error.
//
// Requires: [FS]
func Exists(ctx context.Context, fsys FS, p path.Path) (bool, error) {
	st, err := Status(ctx, fsys, p)
	if err != nil {
		return false, err
	}
	return st.Exists(), nil
}
