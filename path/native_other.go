//go:build !windows

package path

// Native is the path grammar of the running platform.
const Native = Posix
