package dijkstra

import (
	"fmt"
	"strings"
)

// Hop is one vertex on a reconstructed path with its cumulative distance.
type Hop struct {
	Vertex   string
	Distance int64
}

// Path is the result of reconstructing the route to Target.
//
// Reached == false is the "unreached" marker: Target has no path from the
// source and Hops is nil. Otherwise Hops runs from the source (distance 0)
// to Target.
type Path struct {
	Target  string
	Reached bool
	Hops    []Hop
}

// Cost returns the total distance to Target, or Infinity when unreached.
func (p Path) Cost() int64 {
	if !p.Reached || len(p.Hops) == 0 {
		return Infinity
	}

	return p.Hops[len(p.Hops)-1].Distance
}

// Vertices returns the vertex names along the path, source first.
func (p Path) Vertices() []string {
	out := make([]string, len(p.Hops))
	for i, h := range p.Hops {
		out[i] = h.Vertex
	}

	return out
}

// String renders the path as "a -> c(5) -> d(16)", or "x(unreached)".
func (p Path) String() string {
	if !p.Reached {
		return fmt.Sprintf("%s(unreached)", p.Target)
	}

	var sb strings.Builder
	for i, h := range p.Hops {
		if i == 0 {
			sb.WriteString(h.Vertex)
			continue
		}
		fmt.Fprintf(&sb, " -> %s(%d)", h.Vertex, h.Distance)
	}

	return sb.String()
}
