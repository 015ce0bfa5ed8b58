package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolution(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []int32
	}{
		{"competition format", "c comment\ns SATISFIABLE\nv 1 -2 3\nv -4 0\n", []int32{1, -2, 3, -4}},
		{"output file format", "SAT\n-1 2 0\n", []int32{-1, 2}},
		{"unsatisfiable", "s UNSATISFIABLE\n", []int32{}},
		{"bare unsat", "UNSAT\n", []int32{}},
		{"padding", "  \n\tv 5 0  \n", []int32{5}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			model, err := parseSolution(test.output)
			require.NoError(t, err)
			assert.Equal(t, test.want, model)
		})
	}
}

func TestParseSolutionRejectsGarbage(t *testing.T) {
	_, err := parseSolution("v 1 two 0\n")
	assert.Error(t, err)

	_, err = parseSolution("v 1 99999999999 0\n")
	assert.Error(t, err)
}

func TestDialects(t *testing.T) {
	names := Dialects()

	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "kissat")
	assert.Contains(t, names, "minisat")

	minisat, ok := LookupDialect("minisat")
	require.True(t, ok)
	assert.True(t, minisat.InputFile)
	assert.True(t, minisat.OutputFile)

	_, ok = LookupDialect("no-such-solver")
	assert.False(t, ok)
}
