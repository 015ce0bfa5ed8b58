package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/incsat/pkg/sat"
)

// SolveOptions holds the flags of the solve command.
type SolveOptions struct {
	Incremental bool
	Assumptions []int32
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a DIMACS CNF file",
		Long: `Solve a DIMACS CNF file, or the standard input when file is "-".

With --incremental the input is an incremental DIMACS stream ("p inccnf"),
and every "a <lits> 0" line solves the clauses read so far under the given
assumptions. Results are printed in the SAT competition format; for
unsatisfiable results under assumptions an "f" line lists the failed ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Incremental, "incremental", "i", false, "read incremental DIMACS")
	cmd.Flags().Int32SliceVarP(&opts.Assumptions, "assume", "a", nil, "assumptions for a plain DIMACS input")

	return cmd
}

func runSolve(rootOpts *RootOptions, opts *SolveOptions, path string, cmd *cobra.Command) error {
	input := cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cannot open input file: %w", err)
		}
		defer file.Close()
		input = file
	}

	solver, err := rootOpts.newSolver()
	if err != nil {
		return err
	}
	defer solver.Close()

	out := cmd.OutOrStdout()
	if opts.Incremental {
		return solveIncremental(rootOpts, solver, input, out)
	}

	formula, err := sat.ReadDIMACS(input)
	if err != nil {
		return err
	}
	assumptions := make([]sat.Lit, len(opts.Assumptions))
	for i, lit := range opts.Assumptions {
		assumptions[i] = sat.Lit(lit)
		if !assumptions[i].Valid() {
			return fmt.Errorf("invalid assumption %d", lit)
		}
	}

	solver.AddFormula(formula)
	rootOpts.Status = solver.SolveWith(assumptions...)
	rootOpts.Logger.Info("solved",
		zap.String("input", path),
		zap.Int32("variables", formula.Variables),
		zap.Int("clauses", len(formula.Clauses)),
		zap.Stringer("status", rootOpts.Status),
	)
	writeResult(out, solver, rootOpts.Status, formula.Variables, assumptions)
	return nil
}

func solveIncremental(rootOpts *RootOptions, solver *sat.Solver, input io.Reader, out io.Writer) error {
	solves := 0
	err := sat.SolveICNF(input, solver, func(status sat.Status, assumptions []sat.Lit) {
		solves++
		rootOpts.Status = status
		// No model: the variables of the stream are not known up front.
		writeResult(out, solver, status, 0, assumptions)
	})
	rootOpts.Logger.Info("solved incrementally", zap.Int("solves", solves), zap.Stringer("status", rootOpts.Status))
	return err
}
