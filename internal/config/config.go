// Package config loads settings for the hostfs command.
//
// Settings are read from a TOML file, or from YAML when the file name ends
// in .yaml or .yml. Keys missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/path"
)

// FileName is the name of the configuration file in the user config
// directory.
const FileName = "config.toml"

// ErrInvalid is returned by Validate for a setting out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds the command settings.
type Config struct {
	// Style is the path grammar used to parse arguments: "native",
	// "posix" or "windows".
	Style string `toml:"style" yaml:"style"`
	// Root is the directory relative arguments are resolved against.
	Root string `toml:"root" yaml:"root"`
	// DirMode and FileMode are octal permission strings used when
	// creating directories and files.
	DirMode  string `toml:"dir_mode" yaml:"dir_mode"`
	FileMode string `toml:"file_mode" yaml:"file_mode"`
	// LogLevel is a log/slog level name such as "debug" or "warn".
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Style:    "native",
		Root:     ".",
		DirMode:  "0755",
		FileMode: "0644",
		LogLevel: "warn",
	}
}

// DefaultPath returns the configuration file in the user config directory,
// which honors $XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(dir, "hostfs", FileName), nil
}

// Format reports the encoding of the file name: "yaml" for .yaml and .yml
// files and "toml" otherwise.
func Format(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "toml"
}

// Read decodes settings in format from r over the defaults.
func Read(r io.Reader, format string) (*Config, error) {
	cfg := Default()
	var err error
	switch format {
	case "yaml":
		err = yaml.NewDecoder(r).Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case "toml":
		_, err = toml.NewDecoder(r).Decode(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalid, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Load reads settings from the named file.
func Load(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	cfg, err := Read(f, Format(name))
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", name, err)
	}
	return cfg, nil
}

// LoadDefault reads settings from DefaultPath. A missing file yields the
// defaults.
func LoadDefault() (*Config, error) {
	name, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(name)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Write encodes cfg to w as TOML.
func Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := c.PathStyle(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := parseMode("dir_mode", c.DirMode); err != nil {
		return err
	}
	if _, err := parseMode("file_mode", c.FileMode); err != nil {
		return err
	}
	return nil
}

// PathStyle returns the path grammar named by Style.
func (c *Config) PathStyle() (path.Style, error) {
	switch strings.ToLower(c.Style) {
	case "", "native":
		return path.Native, nil
	case "posix":
		return path.Posix, nil
	case "windows":
		return path.Windows, nil
	}
	return 0, fmt.Errorf("%w: style %q", ErrInvalid, c.Style)
}

// Level returns the log level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}

// Modes returns the directory and file creation modes.
func (c *Config) Modes() (dir, file hostfs.Mode, err error) {
	if dir, err = parseMode("dir_mode", c.DirMode); err != nil {
		return 0, 0, err
	}
	if file, err = parseMode("file_mode", c.FileMode); err != nil {
		return 0, 0, err
	}
	return dir, file, nil
}

func parseMode(key, s string) (hostfs.Mode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil || n > uint64(hostfs.PermsAll) {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalid, key, s)
	}
	return hostfs.Mode(n), nil
}
