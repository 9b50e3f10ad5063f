package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newPathCmd(opts *rootOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the shortest path from one vertex to another",
		Long: `Print the shortest path from --from to --to as "a -> c(5) -> d(16)",
where each number is the cumulative distance from the start. A target with
no path prints as "x(unreached)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := loadFile(ctx, opts.graphFile)
			if err != nil {
				return err
			}
			end := pick(to, f.End)
			if end == "" {
				return errNoVertex
			}

			tree, err := solve(ctx, f, pick(from, f.Start))
			if err != nil {
				return err
			}
			p, err := tree.Path(end)
			if err != nil {
				return fmt.Errorf("path to %q: %w", end, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderPath(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start vertex (default: the graph file's start)")
	cmd.Flags().StringVar(&to, "to", "", "target vertex (default: the graph file's end)")

	return cmd
}

func newPathsCmd(opts *rootOptions) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the shortest path to every vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := loadFile(ctx, opts.graphFile)
			if err != nil {
				return err
			}
			tree, err := solve(ctx, f, pick(from, f.Start))
			if err != nil {
				return err
			}

			paths := tree.Paths()
			ids := make([]string, 0, len(paths))
			for id := range paths {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, renderPath(paths[id]))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start vertex (default: the graph file's start)")

	return cmd
}
