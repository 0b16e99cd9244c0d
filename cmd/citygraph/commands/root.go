// Package commands implements the citygraph command tree.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/citygraph/core"
	"github.com/katalvlaran/citygraph/internal/config"
	"github.com/katalvlaran/citygraph/internal/logging"
	"github.com/katalvlaran/citygraph/internal/render"
	"github.com/katalvlaran/citygraph/internal/telemetry"
	"github.com/katalvlaran/citygraph/loader"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// flagKeys maps command-line flags onto viper keys.
var flagKeys = map[string]string{
	"input":           config.KeyInput,
	"output":          config.KeyOutput,
	"log-level":       config.KeyLogLevel,
	"log-format":      config.KeyLogFormat,
	"metrics":         config.KeyMetrics,
	"symmetric-edges": config.KeySymmetricEdges,
	"non-negative":    config.KeyNonNegative,
	"non-empty-names": config.KeyNonEmptyNames,
	"method":          config.KeyMSTMethod,
	"root":            config.KeyMSTRoot,
}

// session is the state shared by every subcommand for one invocation.
type session struct {
	cfg      config.Config
	log      *logrus.Entry
	graph    *core.Graph
	rec      *telemetry.Recorder
	out      *render.Renderer
	shutdown func(context.Context) error
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	s := &session{}

	root := &cobra.Command{
		Use:   "citygraph",
		Short: "Distances, routes and spanning trees over a city graph",
		Long: `citygraph reads "from,to,km" lines from a file or standard input
and answers queries over the resulting graph.

Settings come from flags, CITYGRAPH_* environment variables and
$HOME/.citygraph.yaml, in that order of precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			if err := s.open(cmd, cfgFile); err != nil {
				return s.fail(cmd, err)
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return s.close(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/"+config.DefaultFileName+")")
	pf.StringP("input", "i", "-", `input table, "-" for stdin`)
	pf.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	pf.String("log-level", logrus.WarnLevel.String(), "log level")
	pf.String("log-format", config.LogFormatText, "log format: text or json")
	pf.Bool("metrics", false, "export metrics to stderr on exit")
	pf.Bool("symmetric-edges", false, "treat A,B and B,A as the same connection")
	pf.Bool("non-negative", false, "reject negative distances")
	pf.Bool("non-empty-names", false, "reject blank city names")

	root.AddCommand(
		newVerticesCmd(s),
		newEdgesCmd(s),
		newDistanceCmd(s),
		newRouteCmd(s),
		newMSTCmd(s),
		newReachCmd(s),
		newComponentsCmd(s),
	)
	// PersistentPostRunE only runs after a successful RunE.
	for _, c := range root.Commands() {
		if run := c.RunE; run != nil {
			c.RunE = func(cmd *cobra.Command, args []string) error {
				if err := run(cmd, args); err != nil {
					return s.fail(cmd, err)
				}

				return nil
			}
		}
	}

	return root
}

// bindFlags binds every known flag in fs to its viper key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("bind --%s: %w", f.Name, bindErr)
		}
	})

	return err
}

// open resolves configuration, then builds the logger, telemetry, renderer
// and graph for cmd.
func (s *session) open(cmd *cobra.Command, cfgFile string) error {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	if s.cfg, err = config.Load(v); err != nil {
		return err
	}

	if s.log, err = logging.New(logging.Options{
		Out:   cmd.ErrOrStderr(),
		Level: s.cfg.LogLevel,
		JSON:  s.cfg.LogFormat == config.LogFormatJSON,
	}); err != nil {
		return err
	}
	s.log = s.log.WithField("cmd", cmd.Name())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if s.shutdown, err = telemetry.Init(ctx, telemetry.Config{
		Enabled:        s.cfg.Metrics,
		Writer:         cmd.ErrOrStderr(),
		ServiceVersion: Version,
	}); err != nil {
		return err
	}
	if s.rec, err = telemetry.NewRecorder(otel.GetMeterProvider()); err != nil {
		return err
	}

	format, err := render.ParseFormat(s.cfg.Output)
	if err != nil {
		return err
	}
	s.out = render.New(cmd.OutOrStdout(), format)

	return s.load(ctx, cmd)
}

func (s *session) load(ctx context.Context, cmd *cobra.Command) error {
	s.graph = core.NewGraph(s.cfg.GraphOptions()...)
	l := loader.New(s.graph, loader.WithLogger(s.log))

	start := time.Now()
	var (
		rep loader.Report
		err error
	)
	if s.cfg.Input == "-" {
		rep, err = l.LoadReader(cmd.InOrStdin())
	} else {
		rep, err = l.LoadFile(s.cfg.Input)
	}
	if err != nil {
		return err
	}
	s.rec.RecordLoad(ctx, rep, time.Since(start))
	if problems := rep.Err(); problems != nil {
		s.log.WithError(problems).
			WithField("problems", len(rep.Problems.Errors)).
			Warn("some input lines were not loaded")
	}

	return nil
}

// close flushes telemetry once; later calls are no-ops.
func (s *session) close(ctx context.Context) error {
	if s.shutdown == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown := s.shutdown
	s.shutdown = nil

	return shutdown(ctx)
}

// fail closes the session after err and reports both failures.
func (s *session) fail(cmd *cobra.Command, err error) error {
	if cerr := s.close(cmd.Context()); cerr != nil {
		return multierror.Append(err, cerr)
	}

	return err
}
