package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, slog.LevelInfo))

	logger.Debug("hidden")
	logger.With("op", "rm").Info("removed", "count", 3)

	line := strings.TrimSuffix(buf.String(), "\n")
	fields := strings.Split(line, "\t")
	if assert.Len(t, fields, 5) {
		assert.Equal(t, "INFO", fields[1])
		assert.Equal(t, "removed", fields[2])
		assert.Equal(t, "op=rm", fields[3])
		assert.Equal(t, "count=3", fields[4])
	}
	assert.NotContains(t, buf.String(), "hidden")
}

func TestHandlerLevel(t *testing.T) {
	var level slog.LevelVar
	level.Set(slog.LevelError)
	h := newHandler(&bytes.Buffer{}, &level)

	assert.False(t, h.Enabled(t.Context(), slog.LevelWarn))
	level.Set(slog.LevelDebug)
	assert.True(t, h.Enabled(t.Context(), slog.LevelDebug))
}
