package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/djkalgo/config"
)

func TestLoad_TOMLMatchesDefault(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "reference.toml"))
	require.NoError(t, err)

	if diff := cmp.Diff(config.Default(), f); diff != "" {
		t.Errorf("reference.toml mismatch (-default +loaded):\n%s", diff)
	}
}

func TestLoad_HCL(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "reference.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "a", f.Start)
	assert.Equal(t, "e", f.End)
	assert.Equal(t, []string{"x"}, f.Vertices)
	assert.Equal(t, config.Default().Edges, f.Edges)

	g := f.Graph()
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "x"}, g.Vertices())
	assert.Equal(t, 9, g.EdgeCount())
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := config.Load("graph.yaml")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name   string
		format config.Format
		input  string
		want   error
	}{
		{
			name:   "toml negative weight",
			format: config.FormatTOML,
			input:  "[[edge]]\nfrom = \"a\"\nto = \"b\"\nweight = -1\n",
			want:   config.ErrInvalidEdge,
		},
		{
			name:   "toml empty endpoint",
			format: config.FormatTOML,
			input:  "[[edge]]\nfrom = \"\"\nto = \"b\"\nweight = 1\n",
			want:   config.ErrInvalidEdge,
		},
		{
			name:   "toml empty vertex",
			format: config.FormatTOML,
			input:  "vertices = [\"\"]\n",
			want:   config.ErrInvalidVertex,
		},
		{
			name:   "toml unknown key",
			format: config.FormatTOML,
			input:  "source = \"a\"\n",
			want:   config.ErrUnknownKey,
		},
		{
			name:   "hcl negative weight",
			format: config.FormatHCL,
			input:  "edge {\n  from = \"a\"\n  to = \"b\"\n  weight = -3\n}\n",
			want:   config.ErrInvalidEdge,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.input), tc.format, "inline")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_HCLSyntaxError(t *testing.T) {
	_, err := config.Parse([]byte("edge {\n  from = \n"), config.FormatHCL, "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.hcl")
}

func TestParse_HCLUnknownAttribute(t *testing.T) {
	_, err := config.Parse([]byte("source = \"a\"\n"), config.FormatHCL, "extra.hcl")
	assert.Error(t, err)
}

func TestParse_EmptyFileIsEmptyGraph(t *testing.T) {
	f, err := config.Parse(nil, config.FormatTOML, "empty.toml")
	require.NoError(t, err)
	assert.Zero(t, f.Graph().Len())
}

func TestFormatFromPath(t *testing.T) {
	f, err := config.FormatFromPath("g.TOML")
	require.NoError(t, err)
	assert.Equal(t, config.FormatTOML, f)

	f, err = config.FormatFromPath("dir/g.hcl")
	require.NoError(t, err)
	assert.Equal(t, "hcl", f.String())
}

func TestDefault_Valid(t *testing.T) {
	f := config.Default()
	require.NoError(t, f.Validate())
	assert.Len(t, f.CoreEdges(), 9)
}
