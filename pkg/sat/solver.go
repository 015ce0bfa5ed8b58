// Package sat is a safe binding to incremental SAT engines exposing the
// IPASIR interface.
//
// A Solver owns exactly one engine instance. Clauses are added with
// AddClause, the formula is solved with Solve or, under temporary
// assumptions, with SolveWith. The model of a satisfiable formula is read with
// Value and the failed assumptions of an unsatisfiable one with Failed. A
// long-running solve can be interrupted by installing a Terminator.
//
//	s, err := sat.New("gini")
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//	s.AddClause(1, 2)
//	if s.SolveWith(-1) == sat.Satisfiable {
//		fmt.Println(s.Value(2)) // true
//	}
//
// A Solver must not be used from more than one goroutine at a time. Separate
// solvers are independent.
package sat

import (
	"context"
	"iter"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Solver struct {
	id     string
	engine Engine
	status Status
	box    *terminatorBox
	logger *zap.Logger
}

// New creates a solver on a new instance of the named backend. The error is
// only about the name; a backend that cannot allocate its instance panics.
func New(backend string, opts ...Option) (*Solver, error) {
	newEngine, err := lookupBackend(backend)
	if err != nil {
		return nil, err
	}
	return NewWithEngine(newEngine(), opts...), nil
}

// NewWithEngine creates a solver owning engine. The engine is released by
// Close, or by the garbage collector if Close is never called, and must not be
// used by anyone else.
func NewWithEngine(engine Engine, opts ...Option) *Solver {
	s := &Solver{
		id:     uuid.NewString(),
		engine: engine,
		status: Unset,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	runtime.SetFinalizer(s, (*Solver).Close)
	s.logger.Debug("solver created", zap.String("solver", s.id), zap.String("engine", engine.Signature()))
	return s
}

// ID identifies the solver in log entries.
func (s *Solver) ID() string {
	return s.id
}

// Signature returns the name and version of the engine.
func (s *Solver) Signature() string {
	s.checkOpen("Signature")
	return s.engine.Signature()
}

// State returns the result of the last Solve or SolveWith, or Unset if a
// clause was added since.
func (s *Solver) State() Status {
	return s.status
}

// AddClause adds the disjunction of lits to the formula. Literals must be
// nonzero and different from math.MinInt32. An empty clause makes the formula
// unsatisfiable.
func (s *Solver) AddClause(lits ...Lit) {
	s.checkOpen("AddClause")
	checkLits("AddClause", lits)
	for _, lit := range lits {
		s.engine.Add(int32(lit))
	}
	s.engine.Add(0)
	s.status = Unset
}

func (s *Solver) AddClauses(clauses [][]Lit) {
	for _, clause := range clauses {
		s.AddClause(clause...)
	}
}

// AddFormula adds every clause of f.
func (s *Solver) AddFormula(f Formula) {
	s.AddClauses(f.Clauses)
}

// Solve solves the formula made of all clauses added so far. It returns
// Satisfiable or Unsatisfiable when the engine concludes, and Indeterminate
// when it gives up or is stopped by the Terminator.
func (s *Solver) Solve() Status {
	s.checkOpen("Solve")
	if s.box != nil {
		s.box.t.Started()
	}

	start := time.Now()
	code := s.engine.Solve()
	s.status = StatusFromCode(code)

	s.logger.Debug("solve finished",
		zap.String("solver", s.id),
		zap.Stringer("status", s.status),
		zap.Int("code", code),
		zap.Duration("elapsed", time.Since(start)),
	)
	return s.status
}

// SolveWith solves the formula under the given assumptions. The assumptions
// only hold for this call; a later Solve does not see them.
func (s *Solver) SolveWith(assumptions ...Lit) Status {
	s.checkOpen("SolveWith")
	checkLits("SolveWith", assumptions)
	for _, lit := range assumptions {
		s.engine.Assume(int32(lit))
	}
	return s.Solve()
}

// SolveContext is SolveWith that also stops when ctx is done. The installed
// Terminator, if any, keeps working during the call.
func (s *Solver) SolveContext(ctx context.Context, assumptions ...Lit) Status {
	s.checkOpen("SolveContext")
	var previous Terminator
	if s.box != nil {
		previous = s.box.t
	}

	var t Terminator = ContextTerminator{Ctx: ctx}
	if previous != nil {
		t = Any(previous, t)
	}
	s.SetTerminator(t)
	defer s.SetTerminator(previous)

	return s.SolveWith(assumptions...)
}

// Value returns the value of lit in the model found by the last solve. The
// state must be Satisfiable.
func (s *Solver) Value(lit Lit) Value {
	s.checkOpen("Value")
	if debug && s.status != Satisfiable {
		contractf("Value called in state %v", s.status)
	}
	checkLits("Value", []Lit{lit})

	switch s.engine.Val(int32(lit)) {
	case int32(lit):
		return True
	case -int32(lit):
		return False
	default:
		return Free
	}
}

// Model returns, for each variable from 1 to vars, the literal that is true
// in the model. Free variables are reported positive. The state must be
// Satisfiable.
func (s *Solver) Model(vars int32) []Lit {
	model := make([]Lit, 0, min(max(vars, 0), 1<<16))
	for v := range variables(1, vars) {
		if s.Value(v) == False {
			model = append(model, -v)
		} else {
			model = append(model, v)
		}
	}
	return model
}

// variables yields the positive literals from through to, inclusive. It
// stops at math.MaxInt32 instead of wrapping around.
func variables(from, to int32) iter.Seq[Lit] {
	return func(yield func(Lit) bool) {
		for v := int64(from); v <= int64(to); v++ {
			if !yield(Lit(v)) {
				return
			}
		}
	}
}

// Failed reports whether the assumption lit, passed to the last SolveWith,
// was used to prove unsatisfiability. The state must be Unsatisfiable.
func (s *Solver) Failed(lit Lit) bool {
	s.checkOpen("Failed")
	if debug && s.status != Unsatisfiable {
		contractf("Failed called in state %v", s.status)
	}
	checkLits("Failed", []Lit{lit})
	return s.engine.Failed(int32(lit)) == 1
}

// FailedAssumptions returns the members of assumptions for which Failed
// holds.
func (s *Solver) FailedAssumptions(assumptions []Lit) []Lit {
	return lo.Filter(assumptions, func(lit Lit, _ int) bool {
		return s.Failed(lit)
	})
}

// SetTerminator installs t, replacing the previous Terminator. A nil t
// removes it, and the engine is told to stop polling before anything is
// dropped.
func (s *Solver) SetTerminator(t Terminator) {
	s.checkOpen("SetTerminator")
	if t == nil {
		if s.box != nil {
			s.engine.SetTerminate(nil)
			s.box = nil
		}
		return
	}

	if s.box != nil {
		s.box.t = t
		return
	}
	s.box = &terminatorBox{t: t}
	s.engine.SetTerminate(s.box.poll)
}

// Terminator returns the installed Terminator or nil.
func (s *Solver) Terminator() Terminator {
	if s.box == nil {
		return nil
	}
	return s.box.t
}

// Close releases the engine. It is safe to call Close more than once; any
// other method called afterwards is a contract violation.
func (s *Solver) Close() {
	if s == nil || s.engine == nil {
		return
	}
	if s.box != nil {
		s.engine.SetTerminate(nil)
		s.box = nil
	}
	s.engine.Release()
	s.engine = nil
	s.status = Unset
	runtime.SetFinalizer(s, nil)
	s.logger.Debug("solver released", zap.String("solver", s.id))
}

func (s *Solver) checkOpen(op string) {
	if debug && s.engine == nil {
		contractf("%v called on a closed solver", op)
	}
}
