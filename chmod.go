package hostfs

import (
	"context"
	"errors"

	"lesiw.io/hostfs/path"
)

// Perms is a POSIX permission bitmask.
type Perms uint32

// Permission bits.
const (
	OwnerRead   Perms = 0400
	OwnerWrite  Perms = 0200
	OwnerExec   Perms = 0100
	OwnerAll    Perms = 0700
	GroupRead   Perms = 040
	GroupWrite  Perms = 020
	GroupExec   Perms = 010
	GroupAll    Perms = 070
	OthersRead  Perms = 04
	OthersWrite Perms = 02
	OthersExec  Perms = 01
	OthersAll   Perms = 07
	PermsAll    Perms = 0777
	SetUID      Perms = 04000
	SetGID      Perms = 02000
	Sticky      Perms = 01000
	PermsMask   Perms = 07777

	// PermsUnknown is reported when permissions could not be read.
	PermsUnknown Perms = 0xFFFF
)

// permsOf extracts the permission bits of mode.
func permsOf(mode Mode) Perms {
	p := Perms(mode.Perm())
	if mode&ModeSetuid != 0 {
		p |= SetUID
	}
	if mode&ModeSetgid != 0 {
		p |= SetGID
	}
	if mode&ModeSticky != 0 {
		p |= Sticky
	}
	return p
}

// Mode returns the permission bits of p as a Mode.
func (p Perms) Mode() Mode {
	m := Mode(p & PermsAll)
	if p&SetUID != 0 {
		m |= ModeSetuid
	}
	if p&SetGID != 0 {
		m |= ModeSetgid
	}
	if p&Sticky != 0 {
		m |= ModeSticky
	}
	return m
}

// PermOptions control how [Permissions] applies a permission set.
type PermOptions uint8

// Permission options.
const (
	// PermReplace sets the permissions to exactly the given bits.
	PermReplace PermOptions = 1 << iota
	// PermAdd adds the given bits to the current permissions.
	PermAdd
	// PermRemove clears the given bits from the current permissions.
	PermRemove
	// PermNoFollow changes a symbolic link rather than its target.
	// Paths in the POSIX grammar have no such operation, so the change
	// is skipped.
	PermNoFollow
)

// A ChmodFS is a file system with the Chmod method.
type ChmodFS interface {
	FS

	// Chmod changes the mode of the named file to mode.
	Chmod(ctx context.Context, name string, mode Mode) error
}

// Permissions changes the permissions of the entry p names.
// Analogous to: [os.Chmod], chmod.
//
// At least one of [PermReplace], [PermAdd] or [PermRemove] must be set in
// opts, or Permissions fails with [ErrInvalid]. PermReplace takes
// precedence. Otherwise the current permissions are read with
// [SymlinkStatus] and prms is added to or removed from them.
//
// Requires: [ChmodFS]
func Permissions(
	ctx context.Context, fsys FS, p path.Path, prms Perms, opts PermOptions,
) error {
	name := p.String()
	if opts&(PermReplace|PermAdd|PermRemove) == 0 {
		return &PathError{Op: "chmod", Path: name, Err: ErrInvalid}
	}
	if opts&PermReplace == 0 {
		st, err := SymlinkStatus(ctx, fsys, p)
		if err != nil {
			return err
		}
		if !st.Exists() {
			return &PathError{Op: "chmod", Path: name, Err: ErrNotExist}
		}
		if opts&PermAdd != 0 {
			prms = st.Perms | prms
		} else {
			prms = st.Perms &^ prms
		}
	}
	if opts&PermNoFollow != 0 && p.Style() == path.Posix {
		return nil
	}
	if cfs, ok := fsys.(ChmodFS); ok {
		err := cfs.Chmod(ctx, name, (prms & PermsMask).Mode())
		if !errors.Is(err, ErrUnsupported) {
			return newPathError("chmod", name, err)
		}
	}
	return &PathError{Op: "chmod", Path: name, Err: ErrUnsupported}
}
