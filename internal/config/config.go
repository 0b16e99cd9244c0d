// Package config holds the citygraph configuration model, its defaults and
// its viper-backed loading from flags, environment and a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/prim_kruskal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CITYGRAPH_MST_METHOD.
const EnvPrefix = "CITYGRAPH"

// DefaultFileName is looked up in the user's home directory when no --config is given.
const DefaultFileName = ".citygraph.yaml"

// Viper keys.
const (
	KeyInput          = "input"
	KeyOutput         = "output"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyMetrics        = "metrics"
	KeySymmetricEdges = "graph.symmetric_edges"
	KeyNonNegative    = "graph.non_negative"
	KeyNonEmptyNames  = "graph.non_empty_names"
	KeyMSTMethod      = "mst.method"
	KeyMSTRoot        = "mst.root"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var (
	// ErrInvalidOutput indicates an output format other than text, json or yaml.
	ErrInvalidOutput = errors.New("config: invalid output format")

	// ErrInvalidMethod indicates an MST method other than prim or kruskal.
	ErrInvalidMethod = errors.New("config: invalid mst method")

	// ErrInvalidLogLevel indicates a log level logrus does not know.
	ErrInvalidLogLevel = errors.New("config: invalid log level")

	// ErrInvalidLogFormat indicates a log format other than text or json.
	ErrInvalidLogFormat = errors.New("config: invalid log format")
)

// Config is the full citygraph configuration.
type Config struct {
	// Input is a file path, or "-" for standard input.
	Input string `mapstructure:"input" yaml:"input"`

	// Output is one of OutputText, OutputJSON, OutputYAML.
	Output string `mapstructure:"output" yaml:"output"`

	// LogLevel is any level logrus.ParseLevel accepts.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// LogFormat is LogFormatText or LogFormatJSON.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// Metrics enables the stdout metric exporter.
	Metrics bool `mapstructure:"metrics" yaml:"metrics"`

	Graph GraphConfig `mapstructure:"graph" yaml:"graph"`
	MST   MSTConfig   `mapstructure:"mst" yaml:"mst"`
}

// GraphConfig maps onto core.GraphOption values.
type GraphConfig struct {
	SymmetricEdges bool `mapstructure:"symmetric_edges" yaml:"symmetric_edges"`
	NonNegative    bool `mapstructure:"non_negative" yaml:"non_negative"`
	NonEmptyNames  bool `mapstructure:"non_empty_names" yaml:"non_empty_names"`
}

// MSTConfig maps onto prim_kruskal.Option values.
type MSTConfig struct {
	Method string `mapstructure:"method" yaml:"method"`
	Root   string `mapstructure:"root" yaml:"root"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:     "-",
		Output:    OutputText,
		LogLevel:  logrus.WarnLevel.String(),
		LogFormat: LogFormatText,
		MST: MSTConfig{
			Method: prim_kruskal.MethodPrim,
		},
	}
}

// SetDefaults registers Default() on v. Every key must have a default for
// AutomaticEnv to reach it during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyInput, d.Input)
	v.SetDefault(KeyOutput, d.Output)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyMetrics, d.Metrics)
	v.SetDefault(KeySymmetricEdges, d.Graph.SymmetricEdges)
	v.SetDefault(KeyNonNegative, d.Graph.NonNegative)
	v.SetDefault(KeyNonEmptyNames, d.Graph.NonEmptyNames)
	v.SetDefault(KeyMSTMethod, d.MST.Method)
	v.SetDefault(KeyMSTRoot, d.MST.Root)
}

// NewViper returns a viper instance with defaults and CITYGRAPH_* env overrides.
// If cfgFile is set it must be readable; otherwise $HOME/.citygraph.yaml is
// read when present.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}

		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return v, nil
	}
	path := filepath.Join(home, DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return v, nil
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return v, nil
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Output)
	}
	switch c.MST.Method {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMethod, c.MST.Method)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}

// GraphOptions translates the graph section into store options.
func (c Config) GraphOptions() []core.GraphOption {
	var opts []core.GraphOption
	if c.Graph.SymmetricEdges {
		opts = append(opts, core.WithSymmetricEdges())
	}
	if c.Graph.NonNegative {
		opts = append(opts, core.WithNonNegativeWeights())
	}
	if c.Graph.NonEmptyNames {
		opts = append(opts, core.WithNonEmptyNames())
	}

	return opts
}

// MSTOptions translates the mst section into engine options.
func (c Config) MSTOptions() prim_kruskal.MSTOptions {
	return prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(c.MST.Method),
		prim_kruskal.WithRoot(c.MST.Root),
	)
}
