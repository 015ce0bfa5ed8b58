package sat

import (
	"context"
	"time"
)

// Terminator lets a caller interrupt a running Solve by polling.
//
// Started is called once at the beginning of every Solve, before the engine
// runs. Terminate is then polled by the engine, on the solving goroutine, as
// often as the engine sees fit; returning true makes Solve return
// Indeterminate. Neither method may call back into the Solver.
type Terminator interface {
	Started()
	Terminate() bool
}

// Timeout stops a solve once Limit has elapsed since it started. A zero
// Limit stops at the first poll.
type Timeout struct {
	Start time.Time
	Limit time.Duration
}

func NewTimeout(limit time.Duration) *Timeout {
	return &Timeout{
		Start: time.Now(),
		Limit: limit,
	}
}

func (t *Timeout) Started() {
	t.Start = time.Now()
}

func (t *Timeout) Terminate() bool {
	return time.Since(t.Start) >= t.Limit
}

// ContextTerminator stops a solve once Ctx is done.
type ContextTerminator struct {
	Ctx context.Context
}

func (t ContextTerminator) Started() {}

func (t ContextTerminator) Terminate() bool {
	return t.Ctx.Err() != nil
}

// PollLimit stops a solve after Limit polls. Unlike Timeout it does not
// depend on the machine, which makes it useful in tests.
type PollLimit struct {
	Limit int
	polls int
}

func (p *PollLimit) Started() {
	p.polls = 0
}

func (p *PollLimit) Terminate() bool {
	p.polls++
	return p.polls > p.Limit
}

// Polls returns how many times the current solve polled p.
func (p *PollLimit) Polls() int {
	return p.polls
}

// Any returns a Terminator that stops as soon as one of terminators does.
func Any(terminators ...Terminator) Terminator {
	return anyTerminator(terminators)
}

type anyTerminator []Terminator

func (a anyTerminator) Started() {
	for _, t := range a {
		t.Started()
	}
}

func (a anyTerminator) Terminate() bool {
	for _, t := range a {
		if t.Terminate() {
			return true
		}
	}
	return false
}

// terminatorBox is the object registered with the engine. It is allocated
// once per Solver and only its contents change afterwards, so the poll
// function handed to the engine stays valid until it is unregistered.
type terminatorBox struct {
	t Terminator
}

func (b *terminatorBox) poll() bool {
	return b.t.Terminate()
}
