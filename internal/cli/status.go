package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lesiw.io/hostfs"
)

func formatPerms(p hostfs.Perms) string {
	if p == hostfs.PermsUnknown {
		return "?"
	}
	return fmt.Sprintf("%04o", uint32(p))
}

func newStatCmd(e *env) *cobra.Command {
	var follow bool
	cmd := &cobra.Command{
		Use:   "stat <path>",
		Short: "Print the type and permissions of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := e.path(args[0])
			status := hostfs.SymlinkStatus
			if follow {
				status = hostfs.Status
			}
			st, err := status(e.ctx, e.fsys, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
				st.Type, formatPerms(st.Perms))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&follow, "follow", "L", true,
		"follow symbolic links")
	return cmd
}

func newReadlinkCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "readlink <path>",
		Short: "Print the target of a symbolic link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := hostfs.ReadSymlink(e.ctx, e.fsys, e.path(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func newSizeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "size <path>",
		Short: "Print the size of a file in bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := hostfs.FileSize(e.ctx, e.fsys, e.path(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newEquivCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "equiv <a> <b>",
		Short: "Report whether two paths resolve to the same file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			same, err := hostfs.Equivalent(e.ctx, e.fsys,
				e.path(args[0]), e.path(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), same)
			return nil
		},
	}
}

func newSpaceCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "space [path]",
		Short: "Print the capacity of the volume holding a path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "."
			if len(args) > 0 {
				name = args[0]
			}
			info, err := hostfs.Space(e.ctx, e.fsys, e.path(name))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "capacity\t%d\n", info.Capacity)
			fmt.Fprintf(w, "free\t%d\n", info.Free)
			fmt.Fprintf(w, "available\t%d\n", info.Available)
			return nil
		},
	}
}
