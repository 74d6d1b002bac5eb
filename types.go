// Package hostfs provides native filesystem paths and the operations that
// resolve them against a filesystem.
//
// Paths are lexical values from the [lesiw.io/hostfs/path] subpackage. They
// carry a grammar, either POSIX or Windows, which decides how root names and
// separators are recognized. Nothing in that package touches a filesystem.
//
//	p := path.Windows.New(`C:\Users`)
//	p.RootName()      // C:
//	p.RootDirectory() // \
//	p.IsAbsolute()    // true
//
// The operations in this package resolve paths against an [FS]. The core
// FS interface requires only Lstat. Every other capability is an optional
// interface discovered through type assertion, in the manner of [io/fs]:
//
//   - [StatFS] - Follow symbolic links
//   - [ReadLinkFS] - Read symbolic link targets
//   - [SymlinkFS], [LinkFS] - Create links
//   - [MkdirFS], [RemoveFS], [RenameFS] - Mutate the tree
//   - [ChmodFS] - Change permissions
//   - [OpenDirFS] - Enumerate directories
//   - [IdentifyFS] - Identify the file behind a path
//   - [SpaceFS] - Report volume capacity
//   - [TempDirFS], [GetwdFS], [AbsFS] - Resolve well-known paths
//   - [TruncateFS], [CreateFS] - Write file contents
//
// An operation whose capability is missing returns a [*PathError] wrapping
// [ErrUnsupported]. Some operations fall back to other capabilities when
// their own is missing, as documented on each.
//
// # Status
//
// [Status] and [SymlinkStatus] report a [FileStatus] rather than failing
// when a path does not exist. A missing entry has type [TypeNotFound]. A
// status query that could not be answered has type [TypeNone] and returns
// the error that prevented it.
//
//	st, err := hostfs.Status(ctx, fsys, p)
//	if err != nil {
//	    return err // could not determine
//	}
//	if !st.Exists() {
//	    // does not exist
//	}
//
// # Sentinels
//
// Operations that return a quantity also return a sentinel alongside any
// error: [UnknownSize], [UnknownCount], [UnknownLinks], [MinFileTime] and
// [UnknownSpace].
//
// # Context
//
// Every operation accepts a [context.Context]. It carries request-scoped
// values such as the directory mode used by [Mkdir] and the [log/slog]
// logger used for debug output. Recursive operations stop between entries
// once the context is done.
//
// # Testing
//
// The [lesiw.io/hostfs/fstest] package provides a test suite for [FS]
// implementations.
//
//	func TestMyFS(t *testing.T) {
//	    fsys := myfs.New()
//	    t.Cleanup(func() { hostfs.Close(fsys) })
//	    fstest.TestFS(t.Context(), t, fsys)
//	}
package hostfs

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"time"
)

// A FileInfo describes a file and is returned by [FS.Lstat].
type FileInfo = fs.FileInfo

// A Mode represents a file's mode and permission bits.
type Mode = fs.FileMode

// Valid values for [Mode].
const (
	ModeDir        = fs.ModeDir        // d: is a directory
	ModeSymlink    = fs.ModeSymlink    // L: symbolic link
	ModeDevice     = fs.ModeDevice     // D: device file
	ModeNamedPipe  = fs.ModeNamedPipe  // p: named pipe (FIFO)
	ModeSocket     = fs.ModeSocket     // S: Unix domain socket
	ModeSetuid     = fs.ModeSetuid     // u: setuid
	ModeSetgid     = fs.ModeSetgid     // g: setgid
	ModeCharDevice = fs.ModeCharDevice // c: character device
	ModeSticky     = fs.ModeSticky     // t: sticky

	// Mask for the type bits. For regular files, none will be set.
	ModeType = fs.ModeType

	ModePerm = fs.ModePerm // Unix permission bits
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError

// LinkError records an error during a link or rename
// and the paths that caused it.
type LinkError = os.LinkError

// newPathError creates a PathError if err is not nil, otherwise returns nil.
func newPathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// newLinkError creates a LinkError if err is not nil, otherwise returns nil.
func newLinkError(op, oldname, newname string, err error) error {
	if err == nil {
		return nil
	}
	return &LinkError{Op: op, Old: oldname, New: newname, Err: err}
}

// Generic file system errors.
var (
	ErrInvalid     = fs.ErrInvalid
	ErrPermission  = fs.ErrPermission
	ErrExist       = fs.ErrExist
	ErrNotExist    = fs.ErrNotExist
	ErrClosed      = fs.ErrClosed
	ErrUnsupported = errors.ErrUnsupported
	ErrNotDir      = errors.New("not a directory")
)

// ErrRootRemoval is returned by [RemoveAll] for a root directory.
var ErrRootRemoval = errors.New("refusing to remove root directory")

var errTooManyLinks = errors.New("too many levels of symbolic links")

// Sentinel quantities returned alongside an error.
const (
	UnknownSize  uint64 = math.MaxUint64
	UnknownCount uint64 = math.MaxUint64
	UnknownLinks uint64 = math.MaxUint64
)

// MinFileTime is returned by [LastWriteTime] alongside an error.
var MinFileTime = time.Time{}

// UnknownSpace is returned by [Space] alongside an error.
var UnknownSpace = SpaceInfo{
	Capacity:  math.MaxUint64,
	Free:      math.MaxUint64,
	Available: math.MaxUint64,
}

// notFound reports whether err means a path names nothing.
func notFound(err error) bool {
	return errors.Is(err, ErrNotExist) || errors.Is(err, ErrNotDir)
}
