// Package cli implements the hostfs command.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lesiw.io/hostfs"
	"lesiw.io/hostfs/internal/config"
	"lesiw.io/hostfs/osfs"
	"lesiw.io/hostfs/path"
)

// env holds the state shared by every subcommand of one invocation.
type env struct {
	configFile string
	logLevel   string
	style      string
	root       string

	cfg     *config.Config
	grammar path.Style
	fsys    hostfs.FS
	ctx     context.Context
}

func newRootCmd() *cobra.Command {
	e := &env{}
	cmd := &cobra.Command{
		Use:   "hostfs",
		Short: "Inspect and change the host filesystem",
		Long: `hostfs runs filesystem operations on native paths.

Relative paths are resolved against --root, which defaults to the current
directory. Settings are read from $XDG_CONFIG_HOME/hostfs/config.toml unless
--config names another file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return e.close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&e.configFile, "config", "", "config file")
	flags.StringVar(&e.logLevel, "log-level", "",
		"log level (debug, info, warn, error)")
	flags.StringVar(&e.style, "style", "",
		"path grammar for parts (native, posix, windows)")
	flags.StringVar(&e.root, "root", "",
		"directory relative paths are resolved against")

	cmd.AddCommand(
		newPartsCmd(e),
		newStatCmd(e),
		newLsCmd(e),
		newMkdirsCmd(e),
		newRmCmd(e),
		newMvCmd(e),
		newLnCmd(e),
		newReadlinkCmd(e),
		newChmodCmd(e),
		newSizeCmd(e),
		newEquivCmd(e),
		newSpaceCmd(e),
		newTmpCmd(e),
		newPwdCmd(e),
		newGlobCmd(e),
	)
	return cmd
}

// Execute runs the hostfs command with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// setup loads the configuration and opens the filesystem.
func (e *env) setup(cmd *cobra.Command) error {
	var err error
	if e.configFile != "" {
		e.cfg, err = config.Load(e.configFile)
	} else {
		e.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		e.cfg.LogLevel = e.logLevel
	}
	if flags.Changed("style") {
		e.cfg.Style = e.style
	}
	if flags.Changed("root") {
		e.cfg.Root = e.root
	}
	if err = e.cfg.Validate(); err != nil {
		return err
	}

	level, err := e.cfg.Level()
	if err != nil {
		return err
	}
	if e.grammar, err = e.cfg.PathStyle(); err != nil {
		return err
	}
	dirMode, fileMode, err := e.cfg.Modes()
	if err != nil {
		return err
	}

	root := e.cfg.Root
	if root == "" {
		root = "."
	}
	fsys, err := osfs.New(root)
	if err != nil {
		return fmt.Errorf("opening %s: %w", root, err)
	}
	e.fsys = fsys

	logger := slog.New(newHandler(cmd.ErrOrStderr(), level))
	ctx := hostfs.WithLogger(cmd.Context(), logger)
	ctx = hostfs.WithDirMode(ctx, dirMode)
	ctx = hostfs.WithFileMode(ctx, fileMode)
	e.ctx = ctx

	logger.Debug("opened filesystem", "root", root, "style", e.grammar)
	return nil
}

func (e *env) close() error {
	if e.fsys == nil {
		return nil
	}
	return hostfs.Close(e.fsys)
}

// path parses s in the grammar of the filesystem.
func (e *env) path(s string) path.Path { return hostfs.Path(e.fsys, s) }
