package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lesiw.io/hostfs"
)

func newPartsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "parts <path>",
		Short: "Print the lexical decomposition of a path",
		Long: `Print the lexical decomposition of a path.

The path is parsed in the grammar named by --style and is never resolved
against the filesystem.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := e.grammar.New(args[0])
			var comps []string
			for c := range p.Components() {
				comps = append(comps, fmt.Sprintf("%q", c))
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "root-name\t%s\n", p.RootName())
			fmt.Fprintf(w, "root-directory\t%s\n", p.RootDirectory())
			fmt.Fprintf(w, "relative-path\t%s\n", p.RelativePath())
			fmt.Fprintf(w, "parent\t%s\n", p.Parent())
			fmt.Fprintf(w, "filename\t%s\n", p.Filename())
			fmt.Fprintf(w, "stem\t%s\n", p.Stem())
			fmt.Fprintf(w, "extension\t%s\n", p.Extension())
			fmt.Fprintf(w, "absolute\t%t\n", p.IsAbsolute())
			fmt.Fprintf(w, "generic\t%s\n", p.GenericString())
			fmt.Fprintf(w, "components\t%s\n", strings.Join(comps, " "))
			return nil
		},
	}
}

func newPwdCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "pwd",
		Short: "Print the directory relative paths are resolved against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := hostfs.CurrentPath(e.ctx, e.fsys)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func newTmpCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tmp",
		Short: "Print the directory for temporary files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := hostfs.TempDirectoryPath(e.ctx, e.fsys)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func newGlobCmd(e *env) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Print the paths under a directory matching a pattern",
		Long: `Print the paths under a directory matching a pattern.

Patterns use forward slashes and support ** to match any number of
directories.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := hostfs.Glob(e.ctx, e.fsys, e.path(dir), args[0])
			if err != nil {
				return fmt.Errorf("glob %q: %w", args[0], err)
			}
			for _, m := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "directory to search")
	return cmd
}
