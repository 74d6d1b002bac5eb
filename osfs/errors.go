package osfs

import (
	"errors"
	"io/fs"
	"syscall"

	"lesiw.io/hostfs"
)

// errNotDir is the underlying syscall error for "not a directory".
// This is used to translate OS-specific errors to hostfs.ErrNotDir.
var errNotDir error = syscall.ENOTDIR

// notDirError is a "not a directory" system error that also matches
// hostfs.ErrNotDir.
type notDirError struct{ err error }

func (e *notDirError) Error() string { return e.err.Error() }
func (e *notDirError) Unwrap() error { return e.err }

func (e *notDirError) Is(target error) bool {
	return target == hostfs.ErrNotDir
}

// translate makes a "not a directory" error match hostfs.ErrNotDir.
func translate(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) && errors.Is(pe.Err, errNotDir) {
		return &fs.PathError{
			Op: pe.Op, Path: pe.Path, Err: &notDirError{pe.Err},
		}
	}
	return err
}
