// Package cmd provides the command-line interface for hwlab.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sarchlab/hwlab/config"
	"github.com/sarchlab/hwlab/probe"
	"github.com/sarchlab/hwlab/report"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	host   probe.Host

	format  string
	verbose bool
	out     *report.Writer
}

// Option customizes the root command.
type Option func(*app)

// WithLogger makes the commands log to the given logger instead of building
// one from the configuration.
func WithLogger(logger *zap.Logger) Option {
	return func(a *app) {
		a.logger = logger
	}
}

// WithHost makes the probe command read the given host.
func WithHost(host probe.Host) Option {
	return func(a *app) {
		a.host = host
	}
}

// NewRootCmd creates the hwlab command tree.
func NewRootCmd(cfg config.Config, opts ...Option) *cobra.Command {
	a := &app{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}

	rootCmd := &cobra.Command{
		Use:   "hwlab",
		Short: "hwlab models processors, memory modules and storage drives.",
		Long: `hwlab models processors, memory modules and storage drives. ` +
			`It can compute derived values, apply upgrades, probe the local ` +
			`machine and check inventory files.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.format, "format", cfg.Format,
		"output format: text, yaml or goseth")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(
		a.processorCmd(),
		a.memoryCmd(),
		a.storageCmd(),
		a.probeCmd(),
		a.inventoryCmd(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	format, err := report.ParseFormat(a.format)
	if err != nil {
		return err
	}

	a.out = report.NewWriter(cmd.OutOrStdout(), format)

	if a.logger == nil {
		logger, err := a.buildLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		atexit.Register(func() { _ = logger.Sync() })
		a.logger = logger
	}

	a.logger = a.logger.With(
		zap.String("run_id", xid.New().String()),
		zap.String("command", cmd.CommandPath()),
	)

	return nil
}

func (a *app) buildLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if a.verbose {
		level = zapcore.DebugLevel
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	return zapConfig.Build()
}

// Execute loads the configuration, runs the command line and exits through
// atexit so that registered handlers run.
func Execute() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	if err := NewRootCmd(cfg).Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
