package hostfs

import "context"

// A StatFS is a file system with the Stat method.
//
// If not implemented, [Status] follows symbolic links through
// [ReadLinkFS].
type StatFS interface {
	FS

	// Stat returns file metadata for the named file, following symbolic
	// links.
	Stat(ctx context.Context, name string) (FileInfo, error)
}
