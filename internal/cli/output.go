package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/incsat/pkg/sat"
)

var statusLines = map[sat.Status]string{
	sat.Satisfiable:   "s SATISFIABLE",
	sat.Unsatisfiable: "s UNSATISFIABLE",
	sat.Indeterminate: "s UNKNOWN",
}

// writeResult prints status in the SAT competition format, followed by the
// model over variables 1 to vars when satisfiable, or by the failed members
// of assumptions when unsatisfiable.
func writeResult(w io.Writer, solver *sat.Solver, status sat.Status, vars int32, assumptions []sat.Lit) {
	fmt.Fprintln(w, statusLines[status])

	switch {
	case status == sat.Satisfiable && vars > 0:
		fmt.Fprintf(w, "v %v\n", joinLits(solver.Model(vars)))
	case status == sat.Unsatisfiable && len(assumptions) > 0:
		fmt.Fprintf(w, "f %v\n", joinLits(solver.FailedAssumptions(assumptions)))
	}
}

// joinLits renders lits as a zero terminated DIMACS line.
func joinLits(lits []sat.Lit) string {
	fields := lo.Map(lits, func(lit sat.Lit, _ int) string { return fmt.Sprint(int32(lit)) })
	return strings.Join(append(fields, "0"), " ")
}
