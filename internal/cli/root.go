// Package cli implements the incsat command line tool.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/limaJavier/incsat/pkg/backend/cadical"
	"github.com/limaJavier/incsat/pkg/backend/exec"
	"github.com/limaJavier/incsat/pkg/backend/gini"

	"github.com/limaJavier/incsat/internal/config"
	"github.com/limaJavier/incsat/pkg/sat"
)

// RootOptions holds global flags and the state shared by all commands.
type RootOptions struct {
	ConfigPath string
	Backend    string
	Timeout    time.Duration

	Config config.Config
	Logger *zap.Logger
	// Status is the result of the last solve, which becomes the exit code.
	Status sat.Status
}

// NewRootCommand creates the root command for the incsat CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incsat",
		Short: "incsat - incremental SAT solving",
		Long: `Solve CNF formulas with an incremental SAT engine.

The engine is picked by name: "gini" (pure Go), "cadical" (native, when built
with -tags cadical) or "exec/<solver>" for the executables listed in the
configuration file. The exit code is 10 for satisfiable, 20 for
unsatisfiable and 0 when the solver gave up.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a JSON or YAML configuration file")
	cmd.PersistentFlags().StringVarP(&opts.Backend, "backend", "b", "", "solver backend, overrides the configuration")
	cmd.PersistentFlags().DurationVarP(&opts.Timeout, "timeout", "t", 0, "solve timeout, overrides the configuration")

	cmd.AddCommand(NewBackendsCommand(opts))
	cmd.AddCommand(NewSignatureCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewPigeonholeCommand(opts))
	cmd.AddCommand(NewRandomCommand(opts))

	return cmd
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if opts.Logger != nil {
		_ = opts.Logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return opts.Status.Code()
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	o.Config = config.Default()
	if o.ConfigPath != "" {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		o.Config = cfg
	}
	if cmd.Flags().Changed("backend") {
		o.Config.Backend = o.Backend
	}
	if cmd.Flags().Changed("timeout") {
		if o.Timeout < 0 {
			return fmt.Errorf("timeout must not be negative: %v", o.Timeout)
		}
		o.Config.Timeout = o.Timeout
	}

	logger, err := o.Config.Logger()
	if err != nil {
		return fmt.Errorf("cannot build logger: %w", err)
	}
	o.Logger = logger

	return exec.Register(o.Config.Executables,
		exec.WithLogger(logger),
		exec.WithPollInterval(o.Config.PollInterval),
	)
}

// newSolver creates a solver on the configured backend, with the configured
// timeout installed.
func (o *RootOptions) newSolver() (*sat.Solver, error) {
	opts := []sat.Option{sat.WithLogger(o.Logger)}
	if o.Config.Timeout > 0 {
		opts = append(opts, sat.WithTerminator(sat.NewTimeout(o.Config.Timeout)))
	}

	if o.Config.Backend == gini.Name {
		return sat.NewWithEngine(gini.New(gini.WithPollInterval(o.Config.PollInterval)), opts...), nil
	}
	return sat.New(o.Config.Backend, opts...)
}
