package sat

import "math/rand/v2"

// Pigeonhole returns the formula stating that n+1 pigeons fit in n holes,
// one pigeon per hole. Variable 1+i*n+j means pigeon i sits in hole j. The
// formula is unsatisfiable and hard for resolution based engines.
func Pigeonhole(n int32) Formula {
	formula := Formula{
		Variables: (n + 1) * n,
		Clauses:   make([][]Lit, 0, int(n+1)+int(n)*int(n+1)*int(n)/2),
	}
	pigeon := func(i, j int32) Lit { return Lit(1 + i*n + j) }

	// Every pigeon sits somewhere
	for i := range n + 1 {
		clause := make([]Lit, 0, n)
		for j := range n {
			clause = append(clause, pigeon(i, j))
		}
		formula.Clauses = append(formula.Clauses, clause)
	}

	// No two pigeons share a hole
	for j := range n {
		for i1 := range n + 1 {
			for i2 := i1 + 1; i2 < n+1; i2++ {
				formula.Clauses = append(formula.Clauses, []Lit{-pigeon(i1, j), -pigeon(i2, j)})
			}
		}
	}

	return formula
}

// RandomFormula returns a formula over vars variables with the given number
// of clauses. Each variable joins each clause with probability 1/2 and a
// random polarity; a clause left empty gets one random literal.
func RandomFormula(vars int32, clauses int) Formula {
	formula := Formula{
		Variables: vars,
		Clauses:   make([][]Lit, clauses),
	}

	sign := func() Lit {
		if rand.Float32() < 0.5 {
			return -1
		}
		return 1
	}

	for i := range clauses {
		formula.Clauses[i] = make([]Lit, 0, vars)
		for j := range vars {
			if rand.Float32() < 0.5 {
				formula.Clauses[i] = append(formula.Clauses[i], sign()*Lit(1+j))
			}
		}

		if len(formula.Clauses[i]) == 0 {
			formula.Clauses[i] = append(formula.Clauses[i], sign()*Lit(1+rand.Int32N(vars)))
		}
	}

	return formula
}
