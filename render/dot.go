// Package render draws a graph together with its shortest-path tree as
// Graphviz DOT, and renders DOT to SVG.
//
// Tree arcs (predecessor → vertex) are drawn bold; when Options.Target is
// set, the arcs on the path to the target are highlighted as well. Each
// vertex label carries its distance, or ∞ when it was not reached.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/djkalgo/core"
	"github.com/katalvlaran/djkalgo/dijkstra"
)

// Options configures DOT output.
type Options struct {
	// Target, if non-empty, highlights the shortest path to this vertex.
	Target string

	// RankDir is the Graphviz rankdir attribute. Defaults to "LR".
	RankDir string
}

// ToDOT converts g and its shortest-path tree t to Graphviz DOT.
// Vertices and edges are emitted in sorted order, so the output is stable.
// A Target unknown to t yields ErrUnknownVertex from the dijkstra package.
func ToDOT(g *core.Graph, t *dijkstra.Tree, opts Options) (string, error) {
	onPath := make(map[[2]string]bool)
	if opts.Target != "" {
		p, err := t.Path(opts.Target)
		if err != nil {
			return "", err
		}
		for i := 1; i < len(p.Hops); i++ {
			onPath[[2]string{p.Hops[i-1].Vertex, p.Hops[i].Vertex}] = true
		}
	}
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph shortest {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	buf.WriteString("\n")

	for _, id := range g.Vertices() {
		d, err := t.Distance(id)
		if err != nil {
			return "", err
		}
		st, _ := t.Predecessor(id)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, vertexAttrs(id, d, st))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		st, _ := t.Predecessor(e.To)
		inTree := st.Kind == dijkstra.Reached && st.Via == e.From
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To,
			edgeAttrs(e.Weight, inTree, onPath[[2]string{e.From, e.To}]))
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}

func vertexAttrs(id string, d int64, st dijkstra.State) string {
	dist := "∞"
	if d != dijkstra.Infinity {
		dist = strconv.FormatInt(d, 10)
	}
	attrs := fmt.Sprintf("label=%q", id+"\n"+dist)
	switch st.Kind {
	case dijkstra.Origin:
		attrs += ", style=filled, fillcolor=lightblue"
	case dijkstra.Unvisited:
		attrs += ", style=dashed, fontcolor=gray"
	}

	return attrs
}

func edgeAttrs(w int64, inTree, onPath bool) string {
	attrs := fmt.Sprintf("label=%q", strconv.FormatInt(w, 10))
	switch {
	case onPath:
		attrs += ", color=red, penwidth=2.5"
	case inTree:
		attrs += ", penwidth=2"
	default:
		attrs += ", color=gray"
	}

	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
