package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lesiw.io/hostfs/path"
)

func TestRead_TOML(t *testing.T) {
	content := `style = "windows"
root = "/srv/data"
dir_mode = "0700"
file_mode = "0600"
log_level = "debug"
`
	cfg, err := Read(strings.NewReader(content), "toml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	style, err := cfg.PathStyle()
	require.NoError(t, err)
	assert.Equal(t, path.Windows, style)
	assert.Equal(t, "/srv/data", cfg.Root)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	dir, file, err := cfg.Modes()
	require.NoError(t, err)
	assert.EqualValues(t, 0700, dir)
	assert.EqualValues(t, 0600, file)
}

func TestRead_YAML(t *testing.T) {
	content := "style: posix\nlog_level: info\n"
	cfg, err := Read(strings.NewReader(content), "yaml")
	require.NoError(t, err)

	assert.Equal(t, "posix", cfg.Style)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0755", cfg.DirMode, "missing keys keep defaults")
}

func TestRead_Empty(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		cfg, err := Read(strings.NewReader(""), format)
		require.NoError(t, err, format)
		assert.Equal(t, Default(), cfg, format)
	}
}

func TestRead_Malformed(t *testing.T) {
	_, err := Read(strings.NewReader("style = "), "toml")
	require.Error(t, err)

	_, err = Read(strings.NewReader(""), "ini")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"style", func(c *Config) { c.Style = "vms" }},
		{"level", func(c *Config) { c.LogLevel = "loud" }},
		{"dir_mode", func(c *Config) { c.DirMode = "rwx" }},
		{"file_mode", func(c *Config) { c.FileMode = "0999" }},
		{"mode range", func(c *Config) { c.FileMode = "17777" }},
	}
	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tomlFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(tomlFile, []byte(`root = "/a"`), 0644))
	cfg, err := Load(tomlFile)
	require.NoError(t, err)
	assert.Equal(t, "/a", cfg.Root)

	yamlFile := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(yamlFile, []byte("root: /b\n"), 0644))
	cfg, err = Load(yamlFile)
	require.NoError(t, err)
	assert.Equal(t, "/b", cfg.Root)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	name, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, []byte(`log_level = "error"`), 0644))

	cfg, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Style = "posix"
	require.NoError(t, Write(&buf, cfg))

	got, err := Read(&buf, "toml")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "yaml", Format("a/config.YAML"))
	assert.Equal(t, "yaml", Format("config.yml"))
	assert.Equal(t, "toml", Format("config.toml"))
	assert.Equal(t, "toml", Format("config"))
}
