package sat

import "fmt"

// fakeEngine records the calls it receives and answers from its fields.
type fakeEngine struct {
	calls   []string
	added   []int32
	assumed []int32
	code    int
	vals    map[int32]int32
	failed  map[int32]int
	poll    func() bool
	// pollsPerSolve is how many times Solve polls before returning code.
	pollsPerSolve int
	polled        int
	registrations int
	released      int
}

func newFakeEngine(code int) *fakeEngine {
	return &fakeEngine{
		code:   code,
		vals:   make(map[int32]int32),
		failed: make(map[int32]int),
	}
}

func (e *fakeEngine) Signature() string {
	return "fake-1.0"
}

func (e *fakeEngine) Add(lit int32) {
	e.calls = append(e.calls, fmt.Sprintf("add %d", lit))
	e.added = append(e.added, lit)
}

func (e *fakeEngine) Assume(lit int32) {
	e.calls = append(e.calls, fmt.Sprintf("assume %d", lit))
	e.assumed = append(e.assumed, lit)
}

func (e *fakeEngine) Solve() int {
	e.calls = append(e.calls, "solve")
	e.assumed = nil
	if e.poll != nil {
		for range e.pollsPerSolve {
			e.polled++
			if e.poll() {
				return CodeUnknown
			}
		}
	}
	return e.code
}

func (e *fakeEngine) Val(lit int32) int32 {
	return e.vals[lit]
}

func (e *fakeEngine) Failed(lit int32) int {
	return e.failed[lit]
}

func (e *fakeEngine) SetTerminate(poll func() bool) {
	if poll == nil {
		e.calls = append(e.calls, "unregister")
	} else {
		e.calls = append(e.calls, "register")
		e.registrations++
	}
	e.poll = poll
}

func (e *fakeEngine) Release() {
	e.calls = append(e.calls, "release")
	e.released++
}
