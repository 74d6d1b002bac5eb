package hostfs

import "io"

// Close releases a filesystem if it implements io.Closer.
func Close(fsys FS) error {
	if c, ok := fsys.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
