package hostfs

import (
	"context"
	"log/slog"
)

type contextKey int

const (
	dirModeKey contextKey = iota
	fileModeKey
	workDirKey
	loggerKey
)

// WithDirMode returns a context that carries a directory mode for
// directory creation by [Mkdir] and [Mkdirs].
//
// If no directory mode is set in the context, the default mode 0755 is used.
func WithDirMode(ctx context.Context, mode Mode) context.Context {
	return context.WithValue(ctx, dirModeKey, mode)
}

// WithFileMode returns a context that carries a file mode for file creation.
// When [WriteFile] creates a file, it uses this mode.
//
// If no file mode is set in the context, the default mode 0644 is used.
func WithFileMode(ctx context.Context, mode Mode) context.Context {
	return context.WithValue(ctx, fileModeKey, mode)
}

// DirMode retrieves the directory mode from context.
// Returns 0755 if no mode is set.
func DirMode(ctx context.Context) Mode {
	if mode, ok := ctx.Value(dirModeKey).(Mode); ok {
		return mode
	}
	return 0755
}

// FileMode retrieves the file mode from context.
// Returns 0644 if no mode is set.
func FileMode(ctx context.Context) Mode {
	if mode, ok := ctx.Value(fileModeKey).(Mode); ok {
		return mode
	}
	return 0644
}

// WithWorkDir returns a context that carries a working directory for
// relative path resolution. Filesystem implementations should resolve
// relative names against this directory.
//
// If no working directory is set, implementations use their own default.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey, dir)
}

// WorkDir retrieves the working directory from context.
// Returns an empty string if no working directory is set.
func WorkDir(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey).(string); ok {
		return dir
	}
	return ""
}

// WithLogger returns a context that carries a logger for debug output from
// recursive operations.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Logger retrieves the logger from context.
// Returns a logger that discards everything if none is set.
func Logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return discard
}

var discard = slog.New(slog.DiscardHandler)
