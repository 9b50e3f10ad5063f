package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/djkalgo/render"
)

func newDotCmd(opts *rootOptions) *cobra.Command {
	var (
		from, to, output string
		svg              bool
	)

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Draw the shortest-path tree as Graphviz DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			f, err := loadFile(ctx, opts.graphFile)
			if err != nil {
				return err
			}
			tree, err := solve(ctx, f, pick(from, f.Start))
			if err != nil {
				return err
			}

			dot, err := render.ToDOT(tree.Graph(), tree, render.Options{Target: pick(to, f.End)})
			if err != nil {
				return err
			}
			data := []byte(dot)
			if svg {
				prog := newProgress(logger)
				if data, err = render.RenderSVG(ctx, dot); err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			if _, err := w.Write(data); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if output != "" {
				logger.Info("Wrote", "path", output, "bytes", len(data))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start vertex (default: the graph file's start)")
	cmd.Flags().StringVar(&to, "to", "", "highlight the path to this vertex (default: the graph file's end)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
