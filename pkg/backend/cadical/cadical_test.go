//go:build cgo && cadical

package cadical

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/incsat/pkg/sat"
)

func newSolver(t *testing.T) *sat.Solver {
	solver, err := sat.New(Name)
	require.NoError(t, err)
	t.Cleanup(solver.Close)
	return solver
}

func TestSolver(t *testing.T) {
	solver := newSolver(t)
	assert.True(t, strings.HasPrefix(solver.Signature(), "cadical-"))

	solver.AddClause(1, 2)
	assert.Equal(t, sat.Satisfiable, solver.Solve())
	assert.Equal(t, sat.Satisfiable, solver.SolveWith(-1))
	assert.Equal(t, sat.False, solver.Value(1))
	assert.Equal(t, sat.True, solver.Value(2))
	assert.Equal(t, sat.Satisfiable, solver.SolveWith(-2))
	assert.Equal(t, sat.True, solver.Value(1))
	assert.Equal(t, sat.False, solver.Value(2))
	assert.Equal(t, sat.Unsatisfiable, solver.SolveWith(-1, -2))
	assert.True(t, solver.Failed(-1))
	assert.True(t, solver.Failed(-2))

	solver.AddClause(3, 4)
	assert.Equal(t, sat.Unsatisfiable, solver.SolveWith(-1, -2, -3))
	assert.True(t, solver.Failed(-1))
	assert.True(t, solver.Failed(-2))
	assert.False(t, solver.Failed(-3))
}

func TestTerminate(t *testing.T) {
	solver := newSolver(t)
	solver.AddFormula(sat.Pigeonhole(9))

	for _, limit := range []time.Duration{500 * time.Millisecond, time.Second} {
		started := time.Now()
		solver.SetTerminator(sat.NewTimeout(limit))
		assert.Equal(t, sat.Indeterminate, solver.Solve())
		elapsed := time.Since(started)
		assert.Greater(t, elapsed, limit-100*time.Millisecond)
		assert.Less(t, elapsed, limit+100*time.Millisecond)
	}

	solver.SetTerminator(nil)
	assert.Equal(t, sat.Unsatisfiable, solver.Solve())
}

func TestZeroTimeout(t *testing.T) {
	solver := newSolver(t)
	solver.AddFormula(sat.Pigeonhole(9))
	solver.SetTerminator(sat.NewTimeout(0))

	assert.Equal(t, sat.Indeterminate, solver.Solve())
}

func TestEngineHandleLifecycle(t *testing.T) {
	engine := New()
	polls := 0
	engine.SetTerminate(func() bool { polls++; return true })
	handle := engine.handle
	engine.SetTerminate(func() bool { polls += 10; return true })

	assert.Equal(t, handle, engine.handle)

	engine.SetTerminate(nil)
	assert.Nil(t, engine.state)
	assert.Zero(t, engine.handle)

	engine.SetTerminate(func() bool { return false })
	engine.Release()
	assert.Nil(t, engine.ptr)
	assert.Nil(t, engine.state)
	assert.Zero(t, polls)
}
