// Package config loads graph definitions from TOML or HCL files.
//
// A graph file names the default start and end vertices, optional
// edge-less vertices, and the directed weighted edges:
//
//	# graph.toml
//	start = "a"
//	end   = "e"
//
//	[[edge]]
//	from   = "a"
//	to     = "b"
//	weight = 8
//
//	# graph.hcl
//	start = "a"
//	end   = "e"
//
//	edge {
//	  from   = "a"
//	  to     = "b"
//	  weight = 8
//	}
//
// Files are validated at load time: vertex names must be non-empty and
// weights non-negative, so everything handed to the shortest-path engine
// is inside its contract.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/djkalgo/core"
)

// Sentinel errors for graph file handling.
var (
	// ErrUnsupportedFormat indicates a file extension other than .toml or .hcl.
	ErrUnsupportedFormat = errors.New("config: unsupported graph file format")

	// ErrInvalidEdge indicates an edge with an empty endpoint or a negative weight.
	ErrInvalidEdge = errors.New("config: invalid edge")

	// ErrInvalidVertex indicates an empty vertex name in the vertices list.
	ErrInvalidVertex = errors.New("config: invalid vertex")

	// ErrUnknownKey indicates a key the file format does not define.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Format identifies a graph file syntax.
type Format int

const (
	// FormatTOML is TOML (.toml).
	FormatTOML Format = iota
	// FormatHCL is HashiCorp Configuration Language (.hcl).
	FormatHCL
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatHCL:
		return "hcl"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromPath picks the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// EdgeSpec is one directed edge as written in a graph file.
type EdgeSpec struct {
	From   string `toml:"from" hcl:"from"`
	To     string `toml:"to" hcl:"to"`
	Weight int64  `toml:"weight" hcl:"weight"`
}

// File is a decoded graph file.
type File struct {
	// Start is the default start vertex of shortest-path queries.
	Start string `toml:"start" hcl:"start,optional"`

	// End is the default target vertex of shortest-path queries.
	End string `toml:"end" hcl:"end,optional"`

	// Vertices lists vertices that may have no incident edges.
	Vertices []string `toml:"vertices" hcl:"vertices,optional"`

	// Edges are the directed weighted edges, in file order.
	Edges []EdgeSpec `toml:"edge" hcl:"edge,block"`
}

// Default returns the built-in reference graph (start "a", end "e").
func Default() *File {
	return &File{
		Start: "a",
		End:   "e",
		Edges: []EdgeSpec{
			// Distance from node "a" to node "b" is 8; there is no way back
			// from "b" to "a" without a separate edge.
			{From: "a", To: "b", Weight: 8},
			{From: "a", To: "c", Weight: 5},
			{From: "a", To: "f", Weight: 3},
			{From: "b", To: "c", Weight: 0},
			{From: "b", To: "d", Weight: 16},
			{From: "c", To: "d", Weight: 11},
			{From: "c", To: "f", Weight: 84},
			{From: "d", To: "e", Weight: 43},
			{From: "e", To: "f", Weight: 11},
		},
	}
}

// Load reads, decodes and validates the graph file at path.
// The syntax is chosen by extension (see FormatFromPath).
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, format, path)
}

// Parse decodes and validates a graph file held in memory.
// filename is only used in diagnostics.
func Parse(data []byte, format Format, filename string) (*File, error) {
	var (
		f   *File
		err error
	)
	switch format {
	case FormatTOML:
		f, err = decodeTOML(data)
	case FormatHCL:
		f, err = decodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", filename, err)
	}
	if err = f.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", filename, err)
	}

	return f, nil
}

// Validate checks every vertex name and edge.
//
// Errors:
//   - ErrInvalidVertex: an empty name in Vertices.
//   - ErrInvalidEdge: an empty endpoint or a negative weight.
func (f *File) Validate() error {
	for i, v := range f.Vertices {
		if v == "" {
			return fmt.Errorf("%w: vertices[%d] is empty", ErrInvalidVertex, i)
		}
	}
	for i, e := range f.Edges {
		switch {
		case e.From == "" || e.To == "":
			return fmt.Errorf("%w: edge[%d] has an empty endpoint", ErrInvalidEdge, i)
		case e.Weight < 0:
			return fmt.Errorf("%w: edge[%d] %s→%s has negative weight %d", ErrInvalidEdge, i, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// CoreEdges converts the file's edges, preserving order.
func (f *File) CoreEdges() []core.Edge {
	out := make([]core.Edge, len(f.Edges))
	for i, e := range f.Edges {
		out[i] = core.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

// Graph builds the core.Graph described by the file.
func (f *File) Graph() *core.Graph {
	return core.Build(f.CoreEdges(), core.WithVertices(f.Vertices...))
}
