package sat

import (
	"fmt"
	"io"

	"github.com/go-air/gini/dimacs"
	"github.com/go-air/gini/z"
)

// cnfVisitor collects the clauses of a DIMACS CNF stream into a Formula.
type cnfVisitor struct {
	formula Formula
	clause  []Lit
}

func (v *cnfVisitor) Init(vars, clauses int) {
	v.formula.Variables = int32(vars)
	v.formula.Clauses = make([][]Lit, 0, clauses)
}

func (v *cnfVisitor) Add(m z.Lit) {
	if m == z.LitNull {
		v.formula.Clauses = append(v.formula.Clauses, append([]Lit{}, v.clause...))
		v.clause = v.clause[:0]
		return
	}
	v.clause = append(v.clause, Lit(m.Dimacs()))
}

func (v *cnfVisitor) Eof() {}

// ReadDIMACS parses a DIMACS CNF problem ("p cnf <vars> <clauses>" followed
// by zero terminated clauses).
func ReadDIMACS(r io.Reader) (Formula, error) {
	visitor := &cnfVisitor{}
	if err := dimacs.ReadCnf(r, visitor); err != nil {
		return Formula{}, fmt.Errorf("cannot read DIMACS: %w", err)
	}
	return visitor.formula, nil
}

// icnfVisitor drives a Solver from an incremental DIMACS stream.
type icnfVisitor struct {
	solver      *Solver
	clause      []Lit
	assumptions []Lit
	onSolve     func(Status, []Lit)
}

func (v *icnfVisitor) Add(m z.Lit) {
	if m == z.LitNull {
		v.solver.AddClause(v.clause...)
		v.clause = v.clause[:0]
		return
	}
	v.clause = append(v.clause, Lit(m.Dimacs()))
}

func (v *icnfVisitor) Assume(m z.Lit) {
	if m != z.LitNull {
		v.assumptions = append(v.assumptions, Lit(m.Dimacs()))
		return
	}
	assumptions := v.assumptions
	v.assumptions = nil
	status := v.solver.SolveWith(assumptions...)
	if v.onSolve != nil {
		v.onSolve(status, assumptions)
	}
}

func (v *icnfVisitor) Eof() {}

// SolveICNF feeds an incremental DIMACS stream ("p inccnf", clause lines and
// "a <lits> 0" assumption lines) to s. Every assumption line triggers a
// SolveWith; onSolve, if not nil, sees each result together with the
// assumptions it was obtained under, while the result can still be queried
// on s.
func SolveICNF(r io.Reader, s *Solver, onSolve func(Status, []Lit)) error {
	visitor := &icnfVisitor{solver: s, onSolve: onSolve}
	if err := dimacs.ReadICnf(r, visitor); err != nil {
		return fmt.Errorf("cannot read incremental DIMACS: %w", err)
	}
	return nil
}
