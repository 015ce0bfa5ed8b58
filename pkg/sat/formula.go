package sat

import (
	"fmt"
	"strings"
)

// Formula is a CNF formula held in memory, independent of any engine.
type Formula struct {
	Variables int32
	Clauses   [][]Lit
}

// ToDIMACS renders f in DIMACS-CNF.
func (f Formula) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", f.Variables, len(f.Clauses))
	for _, clause := range f.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// Satisfies reports whether model, a list of true literals, is consistent and
// satisfies every clause of f.
func (f Formula) Satisfies(model []Lit) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[Lit]bool, len(model))
	for _, literal := range model {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range f.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
