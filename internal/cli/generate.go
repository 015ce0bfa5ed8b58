package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/incsat/pkg/sat"
)

// GenerateOptions holds the flags shared by the instance generating commands.
type GenerateOptions struct {
	// DIMACS prints the instance instead of solving it.
	DIMACS bool
}

// NewPigeonholeCommand creates the pigeonhole command.
func NewPigeonholeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}
	var holes int32

	cmd := &cobra.Command{
		Use:   "pigeonhole",
		Short: "Solve the unsatisfiable pigeonhole formula for n holes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if holes < 1 {
				return fmt.Errorf("holes must be positive: %d", holes)
			}
			return runGenerated(rootOpts, opts, sat.Pigeonhole(holes), cmd)
		},
	}

	cmd.Flags().Int32VarP(&holes, "holes", "n", 8, "number of holes")
	cmd.Flags().BoolVar(&opts.DIMACS, "dimacs", false, "print the formula instead of solving it")

	return cmd
}

// NewRandomCommand creates the random command.
func NewRandomCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}
	var vars int32
	var clauses int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Solve a random formula",
		Long:  "Solve a random formula where every variable joins every clause with probability 1/2.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if vars < 1 || clauses < 1 {
				return fmt.Errorf("need at least 1 variable and 1 clause, got %d and %d", vars, clauses)
			}
			return runGenerated(rootOpts, opts, sat.RandomFormula(vars, clauses), cmd)
		},
	}

	cmd.Flags().Int32Var(&vars, "vars", 100, "number of variables")
	cmd.Flags().IntVar(&clauses, "clauses", 400, "number of clauses")
	cmd.Flags().BoolVar(&opts.DIMACS, "dimacs", false, "print the formula instead of solving it")

	return cmd
}

func runGenerated(rootOpts *RootOptions, opts *GenerateOptions, formula sat.Formula, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	if opts.DIMACS {
		fmt.Fprint(out, formula.ToDIMACS())
		return nil
	}

	solver, err := rootOpts.newSolver()
	if err != nil {
		return err
	}
	defer solver.Close()

	solver.AddFormula(formula)
	rootOpts.Status = solver.Solve()
	rootOpts.Logger.Info("solved",
		zap.String("command", cmd.Name()),
		zap.Int32("variables", formula.Variables),
		zap.Int("clauses", len(formula.Clauses)),
		zap.Stringer("status", rootOpts.Status),
	)
	writeResult(out, solver, rootOpts.Status, formula.Variables, nil)
	return nil
}
