// Package cli implements the djkalgo command-line interface.
//
// The commands load a graph (a TOML/HCL file given with --graph, or the
// built-in reference graph), run the shortest-path engine and print the
// result. Normal output goes to stdout; logs and errors go to stderr.
//
// # Commands
//
//   - path:   shortest path from one vertex to another
//   - paths:  shortest path to every vertex
//   - dot:    Graphviz DOT (or SVG) of the shortest-path tree
//   - verify: cross-check against brute-force enumeration
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"errors"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/djkalgo/config"
	"github.com/katalvlaran/djkalgo/dijkstra"
)

var version = "dev"

// SetVersion sets the version string displayed by --version.
func SetVersion(v string) { version = v }

// errNoVertex is returned when neither a flag nor the graph file names a vertex.
var errNoVertex = errors.New("no vertex given: pass --from/--to or set start/end in the graph file")

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	graphFile string
	verbose   bool
}

// Execute runs the djkalgo CLI with ctx and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "djkalgo",
		Short:         "Shortest paths over a directed weighted graph",
		Long:          `djkalgo runs Dijkstra's algorithm over a directed, weighted graph and prints the shortest path from a start vertex.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.PersistentFlags().StringVarP(&opts.graphFile, "graph", "g", "", "graph file (.toml or .hcl); defaults to the built-in graph")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPathCmd(opts))
	root.AddCommand(newPathsCmd(opts))
	root.AddCommand(newDotCmd(opts))
	root.AddCommand(newVerifyCmd(opts))

	return root
}

// loadFile returns the graph file named by --graph, or the built-in graph.
func loadFile(ctx context.Context, path string) (*config.File, error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		logger.Debug("Using built-in reference graph")
		return config.Default(), nil
	}

	logger.Debug("Loading graph file", "path", path)
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded graph file", "path", path, "edges", len(f.Edges))

	return f, nil
}

// solve builds the graph and runs the engine from start, logging each
// finalized vertex at debug level.
func solve(ctx context.Context, f *config.File, start string) (*dijkstra.Tree, error) {
	if start == "" {
		return nil, errNoVertex
	}
	logger := loggerFromContext(ctx)
	g := f.Graph()
	logger.Debug("Built graph", "vertices", g.Len(), "edges", g.EdgeCount())

	prog := newProgress(logger)
	tree, err := dijkstra.Run(g, start, dijkstra.WithOnSettle(func(id string, d int64) {
		logger.Debug("Settled", "vertex", id, "distance", d)
	}))
	if err != nil {
		return nil, fmt.Errorf("shortest paths from %q: %w", start, err)
	}
	prog.done(fmt.Sprintf("Settled %d of %d vertices from %s", len(tree.Settled()), g.Len(), start))

	return tree, nil
}

// pick returns flag when set, otherwise fallback.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
