package sat

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAddClauseTerminatesAndResetsState(t *testing.T) {
	//** Arrange
	engine := newFakeEngine(CodeSatisfiable)
	solver := NewWithEngine(engine)
	defer solver.Close()
	require.Equal(t, Satisfiable, solver.Solve())

	//** Act
	solver.AddClause(1, -2, 3)

	//** Assert
	assert.Equal(t, []int32{1, -2, 3, 0}, engine.added)
	assert.Equal(t, Unset, solver.State())
}

func TestAddEmptyClause(t *testing.T) {
	engine := newFakeEngine(CodeUnsatisfiable)
	solver := NewWithEngine(engine)
	defer solver.Close()

	solver.AddClause()

	assert.Equal(t, []int32{0}, engine.added)
}

func TestSolveMapsStatusCodes(t *testing.T) {
	tests := []struct {
		code   int
		status Status
	}{
		{CodeSatisfiable, Satisfiable},
		{CodeUnsatisfiable, Unsatisfiable},
		{CodeUnknown, Indeterminate},
		{-1, Indeterminate},
		{11, Indeterminate},
	}

	for _, test := range tests {
		solver := NewWithEngine(newFakeEngine(test.code))
		assert.Equal(t, test.status, solver.Solve(), "code %d", test.code)
		assert.Equal(t, test.status, solver.State(), "code %d", test.code)
		solver.Close()
	}
}

func TestSolveWithAssumesBeforeSolving(t *testing.T) {
	engine := newFakeEngine(CodeSatisfiable)
	solver := NewWithEngine(engine)
	defer solver.Close()

	solver.AddClause(1, 2)
	status := solver.SolveWith(-1, 2)

	assert.Equal(t, Satisfiable, status)
	assert.Equal(t, []string{"add 1", "add 2", "add 0", "assume -1", "assume 2", "solve"}, engine.calls)
}

func TestSolveDoesNotReplayAssumptions(t *testing.T) {
	engine := newFakeEngine(CodeSatisfiable)
	solver := NewWithEngine(engine)
	defer solver.Close()

	solver.SolveWith(-1)
	solver.Solve()

	assert.Equal(t, []string{"assume -1", "solve", "solve"}, engine.calls)
}

func TestValue(t *testing.T) {
	engine := newFakeEngine(CodeSatisfiable)
	engine.vals[1] = 1
	engine.vals[-1] = 1
	engine.vals[2] = -2
	engine.vals[3] = 0
	engine.vals[4] = 7
	solver := NewWithEngine(engine)
	defer solver.Close()
	require.Equal(t, Satisfiable, solver.Solve())

	assert.Equal(t, True, solver.Value(1))
	assert.Equal(t, False, solver.Value(-1))
	assert.Equal(t, False, solver.Value(2))
	assert.Equal(t, Free, solver.Value(3))
	assert.Equal(t, Free, solver.Value(4))
}

func TestModel(t *testing.T) {
	engine := newFakeEngine(CodeSatisfiable)
	engine.vals[1] = -1
	engine.vals[2] = 2
	solver := NewWithEngine(engine)
	defer solver.Close()
	require.Equal(t, Satisfiable, solver.Solve())

	assert.Equal(t, []Lit{-1, 2, 3}, solver.Model(3))
}

func TestModelWithoutVariables(t *testing.T) {
	solver := NewWithEngine(newFakeEngine(CodeSatisfiable))
	defer solver.Close()
	require.Equal(t, Satisfiable, solver.Solve())

	assert.Empty(t, solver.Model(0))
	assert.Empty(t, solver.Model(-3))
}

func TestVariablesStopAtLargestVariable(t *testing.T) {
	var lits []Lit
	for lit := range variables(math.MaxInt32-2, math.MaxInt32) {
		lits = append(lits, lit)
	}

	assert.Equal(t, []Lit{math.MaxInt32 - 2, math.MaxInt32 - 1, math.MaxInt32}, lits)
	assert.Empty(t, slices.Collect(variables(2, 1)))
}

func TestFailed(t *testing.T) {
	engine := newFakeEngine(CodeUnsatisfiable)
	engine.failed[-1] = 1
	solver := NewWithEngine(engine)
	defer solver.Close()
	require.Equal(t, Unsatisfiable, solver.SolveWith(-1, -2))

	assert.True(t, solver.Failed(-1))
	assert.False(t, solver.Failed(-2))
	assert.Equal(t, []Lit{-1}, solver.FailedAssumptions([]Lit{-1, -2}))
}

func TestContractViolations(t *testing.T) {
	newSolver := func(code int) *Solver {
		solver := NewWithEngine(newFakeEngine(code))
		t.Cleanup(solver.Close)
		return solver
	}

	t.Run("zero literal", func(t *testing.T) {
		solver := newSolver(CodeSatisfiable)
		assert.Panics(t, func() { solver.AddClause(1, 0, 2) })
	})

	t.Run("minimum literal", func(t *testing.T) {
		solver := newSolver(CodeSatisfiable)
		assert.Panics(t, func() { solver.AddClause(math.MinInt32) })
		assert.Panics(t, func() { solver.SolveWith(math.MinInt32) })
	})

	t.Run("value before solve", func(t *testing.T) {
		solver := newSolver(CodeSatisfiable)
		assert.Panics(t, func() { solver.Value(1) })
	})

	t.Run("value after adding a clause", func(t *testing.T) {
		solver := newSolver(CodeSatisfiable)
		require.Equal(t, Satisfiable, solver.Solve())
		solver.AddClause(3)
		assert.Panics(t, func() { solver.Value(1) })
	})

	t.Run("value when unsatisfiable", func(t *testing.T) {
		solver := newSolver(CodeUnsatisfiable)
		solver.Solve()
		assert.Panics(t, func() { solver.Value(1) })
	})

	t.Run("failed when satisfiable", func(t *testing.T) {
		solver := newSolver(CodeSatisfiable)
		solver.Solve()
		assert.Panics(t, func() { solver.Failed(1) })
	})

	t.Run("failed after adding a clause", func(t *testing.T) {
		solver := newSolver(CodeUnsatisfiable)
		solver.SolveWith(-1)
		solver.AddClause(1, 2)
		assert.Panics(t, func() { solver.Failed(-1) })
	})

	t.Run("failed when indeterminate", func(t *testing.T) {
		solver := newSolver(CodeUnknown)
		solver.Solve()
		assert.Panics(t, func() { solver.Failed(-1) })
	})

	t.Run("use after close", func(t *testing.T) {
		solver := newSolver(CodeSatisfiable)
		solver.Close()
		assert.Panics(t, func() { solver.Solve() })
		assert.Panics(t, func() { solver.AddClause(1) })
	})
}

func TestCloseReleasesOnce(t *testing.T) {
	engine := newFakeEngine(CodeSatisfiable)
	solver := NewWithEngine(engine)

	solver.Close()
	solver.Close()

	assert.Equal(t, 1, engine.released)
}

func TestCloseUnregistersTerminatorFirst(t *testing.T) {
	engine := newFakeEngine(CodeSatisfiable)
	solver := NewWithEngine(engine, WithTerminator(NewTimeout(0)))

	solver.Close()

	assert.Equal(t, []string{"register", "unregister", "release"}, engine.calls)
}

func TestSignature(t *testing.T) {
	solver := NewWithEngine(newFakeEngine(CodeSatisfiable))
	defer solver.Close()

	assert.Equal(t, "fake-1.0", solver.Signature())
	assert.NotEmpty(t, solver.ID())
}

func TestNewUnknownBackend(t *testing.T) {
	solver, err := New("no-such-backend")

	assert.Nil(t, solver)
	assert.ErrorContains(t, err, "no-such-backend")
}

func TestRegisterAndNew(t *testing.T) {
	engine := newFakeEngine(CodeSatisfiable)
	Register("fake-register-test", func() Engine { return engine })

	solver, err := New("fake-register-test")
	require.NoError(t, err)
	defer solver.Close()

	assert.Contains(t, Backends(), "fake-register-test")
	assert.Equal(t, Satisfiable, solver.Solve())
	assert.Panics(t, func() { Register("fake-register-test", func() Engine { return engine }) })
	assert.Panics(t, func() { Register("fake-nil", nil) })
}

func TestSolveLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	solver := NewWithEngine(newFakeEngine(CodeUnsatisfiable), WithLogger(zap.New(core)))
	defer solver.Close()

	solver.Solve()

	entries := logs.FilterMessage("solve finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, solver.ID(), fields["solver"])
	assert.Equal(t, "unsatisfiable", fields["status"])
	assert.Equal(t, int64(CodeUnsatisfiable), fields["code"])
}

func TestAddFormula(t *testing.T) {
	engine := newFakeEngine(CodeUnsatisfiable)
	solver := NewWithEngine(engine)
	defer solver.Close()

	solver.AddFormula(Pigeonhole(1))

	assert.Equal(t, []int32{1, 0, 2, 0, -1, -2, 0}, engine.added)
}
