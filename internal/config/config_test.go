package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/internal/config"
	"github.com/katalvlaran/citygraph/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "citygraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v, err := config.NewViper("")
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, config.Default(), c)
	assert.Empty(t, c.GraphOptions())
	assert.Equal(t, prim_kruskal.DefaultOptions(), c.MSTOptions())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input: cities.csv
output: json
log_level: debug
log_format: json
metrics: true
graph:
  symmetric_edges: true
  non_negative: true
  non_empty_names: true
mst:
  method: kruskal
  root: Paris
`)
	v, err := config.NewViper(path)
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, config.Config{
		Input:     "cities.csv",
		Output:    config.OutputJSON,
		LogLevel:  "debug",
		LogFormat: config.LogFormatJSON,
		Metrics:   true,
		Graph:     config.GraphConfig{SymmetricEdges: true, NonNegative: true, NonEmptyNames: true},
		MST:       config.MSTConfig{Method: prim_kruskal.MethodKruskal, Root: "Paris"},
	}, c)

	g := core.NewGraph(c.GraphOptions()...)
	assert.True(t, g.SymmetricEdges())
	assert.True(t, g.NonNegativeWeights())
	assert.True(t, g.NonEmptyNames())
}

func TestLoad_HomeFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, config.DefaultFileName), []byte("output: yaml\n"), 0o600))

	v, err := config.NewViper("")
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, config.OutputYAML, c.Output)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "mst:\n  method: prim\n")
	t.Setenv("CITYGRAPH_MST_METHOD", "kruskal")
	t.Setenv("CITYGRAPH_GRAPH_SYMMETRIC_EDGES", "true")

	v, err := config.NewViper(path)
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, prim_kruskal.MethodKruskal, c.MST.Method)
	assert.True(t, c.Graph.SymmetricEdges)
}

func TestNewViper_MissingExplicitFile(t *testing.T) {
	_, err := config.NewViper(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"output", func(c *config.Config) { c.Output = "xml" }, config.ErrInvalidOutput},
		{"method", func(c *config.Config) { c.MST.Method = "boruvka" }, config.ErrInvalidMethod},
		{"log level", func(c *config.Config) { c.LogLevel = "loud" }, config.ErrInvalidLogLevel},
		{"log format", func(c *config.Config) { c.LogFormat = "xml" }, config.ErrInvalidLogFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
	assert.NoError(t, config.Default().Validate())
}
