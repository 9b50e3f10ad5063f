package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/djkalgo/bfs"
	"github.com/katalvlaran/djkalgo/dfs"
	"github.com/katalvlaran/djkalgo/dijkstra"
)

// errMismatch is returned by verify when any vertex disagrees.
var errMismatch = errors.New("shortest paths disagree with brute force")

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	var (
		from     string
		maxPaths int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check shortest paths against brute-force enumeration",
		Long: `Compare every distance computed by Dijkstra's algorithm with the cheapest
simple path found by exhaustive depth-first enumeration, and every unreached
vertex with breadth-first reachability.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			f, err := loadFile(ctx, opts.graphFile)
			if err != nil {
				return err
			}
			start := pick(from, f.Start)
			tree, err := solve(ctx, f, start)
			if err != nil {
				return err
			}
			g := tree.Graph()

			prog := newProgress(logger)
			costs, err := dfs.MinCosts(g, start, dfs.WithMaxPaths(maxPaths))
			if err != nil {
				return fmt.Errorf("brute force from %q: %w", start, err)
			}
			reach, err := bfs.BFS(g, start, bfs.WithContext(ctx))
			if err != nil {
				return fmt.Errorf("reachability from %q: %w", start, err)
			}
			prog.done("Enumerated simple paths")

			out := cmd.OutOrStdout()
			bad := 0
			for _, id := range g.Vertices() {
				d, _ := tree.Distance(id)
				want, ok := costs[id]
				if !ok {
					want = dijkstra.Infinity
				}
				if d != want || (d == dijkstra.Infinity) == reach.Reachable(id) {
					bad++
					fmt.Fprintln(out, styleError.Render(fmt.Sprintf("%s %s: dijkstra=%s brute=%s reachable=%t",
						iconError, id, fmtDist(d), fmtDist(want), reach.Reachable(id))))
				}
			}
			if bad > 0 {
				return fmt.Errorf("%w: %d of %d vertices", errMismatch, bad, g.Len())
			}

			fmt.Fprintln(out, styleSuccess.Render(fmt.Sprintf("%s %d vertices agree from %s", iconSuccess, g.Len(), start)))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start vertex (default: the graph file's start)")
	cmd.Flags().IntVar(&maxPaths, "max-paths", dfs.DefaultMaxPaths, "cap on partial paths explored by the brute force")

	return cmd
}

func fmtDist(d int64) string {
	if d == dijkstra.Infinity {
		return "∞"
	}
	return fmt.Sprint(d)
}
