package sat

// Status is the result state of a Solver.
//
// A Solver starts Unset. Solve and SolveWith move it to one of the three
// concluded states, and any added clause moves it back to Unset since the
// previous model or proof no longer refers to the current formula.
type Status int

const (
	Unset Status = iota
	Satisfiable
	Unsatisfiable
	// Indeterminate means the engine gave up, usually because a Terminator
	// asked it to stop.
	Indeterminate
)

// Engine status codes, as returned by the IPASIR solve entry point.
const (
	CodeUnknown       = 0
	CodeSatisfiable   = 10
	CodeUnsatisfiable = 20
)

// StatusFromCode interprets a status code returned by an engine. Everything
// other than 10 and 20 is Indeterminate.
func StatusFromCode(code int) Status {
	switch code {
	case CodeSatisfiable:
		return Satisfiable
	case CodeUnsatisfiable:
		return Unsatisfiable
	default:
		return Indeterminate
	}
}

// Code returns the engine status code for s.
func (s Status) Code() int {
	switch s {
	case Satisfiable:
		return CodeSatisfiable
	case Unsatisfiable:
		return CodeUnsatisfiable
	default:
		return CodeUnknown
	}
}

// Concluded reports whether s is Satisfiable or Unsatisfiable.
func (s Status) Concluded() bool {
	return s == Satisfiable || s == Unsatisfiable
}

func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unset"
	}
}

// Value is the truth value of a literal in the last model.
type Value int8

const (
	False Value = -1
	// Free means the model is consistent with either polarity.
	Free Value = 0
	True Value = 1
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "free"
	}
}
