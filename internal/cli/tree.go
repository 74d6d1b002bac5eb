package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"lesiw.io/hostfs"
)

var (
	errNotCreated = errors.New("a parent is not a directory")
	errNotRemoved = errors.New("no such file or directory")
	errPermFlags  = errors.New("--add and --remove are exclusive")
)

func newLsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: "List the entries of a directory in lexical order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "."
			if len(args) > 0 {
				name = args[0]
			}
			var names []string
			for entry, err := range hostfs.ReadDir(
				e.ctx, e.fsys, e.path(name),
			) {
				if err != nil {
					return err
				}
				names = append(names, entry.Name())
			}
			slices.Sort(names)
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newMkdirsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdirs <path>",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := hostfs.Mkdirs(e.ctx, e.fsys, e.path(args[0]))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("mkdirs %s: %w", args[0], errNotCreated)
			}
			return nil
		},
	}
}

func newRmCmd(e *env) *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "rm <path>",
		Short: "Remove a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := e.path(args[0])
			if recursive {
				n, err := hostfs.RemoveAll(e.ctx, e.fsys, p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d\n", n)
				return nil
			}
			ok, err := hostfs.Remove(e.ctx, e.fsys, p)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("rm %s: %w", args[0], errNotRemoved)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false,
		"remove directories and their contents")
	return cmd
}

func newMvCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Rename a file or directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return hostfs.Move(e.ctx, e.fsys,
				e.path(args[0]), e.path(args[1]))
		},
	}
}

func newLnCmd(e *env) *cobra.Command {
	var symbolic bool
	cmd := &cobra.Command{
		Use:   "ln <target> <link>",
		Short: "Create a link to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			target, link := e.path(args[0]), e.path(args[1])
			if symbolic {
				return hostfs.CreateSymlink(e.ctx, e.fsys, target, link)
			}
			return hostfs.CreateHardlink(e.ctx, e.fsys, target, link)
		},
	}
	cmd.Flags().BoolVarP(&symbolic, "symbolic", "s", false,
		"create a symbolic link")
	return cmd
}

func newChmodCmd(e *env) *cobra.Command {
	var add, remove, noFollow bool
	cmd := &cobra.Command{
		Use:   "chmod <octal> <path>",
		Short: "Change the permissions of a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.ParseUint(args[0], 8, 32)
			if err != nil || n > uint64(hostfs.PermsMask) {
				return fmt.Errorf("chmod: invalid mode %q", args[0])
			}
			var opts hostfs.PermOptions
			switch {
			case add && remove:
				return errPermFlags
			case add:
				opts = hostfs.PermAdd
			case remove:
				opts = hostfs.PermRemove
			default:
				opts = hostfs.PermReplace
			}
			if noFollow {
				opts |= hostfs.PermNoFollow
			}
			return hostfs.Permissions(e.ctx, e.fsys, e.path(args[1]),
				hostfs.Perms(n), opts)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&add, "add", false, "add the bits to the current ones")
	flags.BoolVar(&remove, "remove", false,
		"clear the bits from the current ones")
	flags.BoolVar(&noFollow, "no-follow", false,
		"change a symbolic link rather than its target")
	return cmd
}
