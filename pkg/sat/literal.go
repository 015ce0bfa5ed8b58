package sat

import (
	"math"

	"github.com/samber/lo"
)

// Lit is a DIMACS literal: the absolute value names the variable and the sign
// its polarity. Zero terminates clauses at the engine boundary and is never a
// valid literal, neither is math.MinInt32 since it has no negation.
type Lit int32

// Var returns the variable of the literal.
func (lit Lit) Var() int32 {
	if lit < 0 {
		return int32(-lit)
	}
	return int32(lit)
}

// Not returns the negated literal.
func (lit Lit) Not() Lit {
	return -lit
}

// Valid reports whether lit may be passed to an engine.
func (lit Lit) Valid() bool {
	return lit != 0 && lit != math.MinInt32
}

func checkLits(op string, lits []Lit) {
	if !debug {
		return
	}
	if bad, ok := lo.Find(lits, func(lit Lit) bool { return !lit.Valid() }); ok {
		contractf("%v: invalid literal %d", op, bad)
	}
}
