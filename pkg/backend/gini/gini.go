// Package gini provides a pure Go engine, backed by github.com/go-air/gini,
// for the sat package. Importing it registers the "gini" backend.
package gini

import (
	"runtime/debug"
	"strings"
	"time"

	solver "github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/samber/lo"

	"github.com/limaJavier/incsat/pkg/sat"
)

const Name = "gini"

// DefaultPollInterval is how often a running solve polls the terminator.
const DefaultPollInterval = time.Millisecond

func init() {
	sat.Register(Name, func() sat.Engine { return New() })
}

// Engine adapts a gini solver to sat.Engine.
//
// gini has no terminate callback of its own, so when a poll function is
// registered Solve runs gini in the background with GoSolve and polls on the
// calling goroutine, stopping gini as soon as poll returns true.
type Engine struct {
	g            *solver.Gini
	poll         func() bool
	pollInterval time.Duration
	failed       map[z.Lit]bool
}

type Option func(*Engine)

// WithPollInterval sets the interval between two polls of the terminator.
func WithPollInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.pollInterval = d
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		g:            solver.New(),
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Signature returns "gini-<version>", with the version of the gini module
// linked into the binary, or "gini" when it is unknown.
func (e *Engine) Signature() string {
	return signature(debug.ReadBuildInfo())
}

const modulePath = "github.com/go-air/gini"

func signature(info *debug.BuildInfo, ok bool) string {
	if !ok {
		return Name
	}
	dep, found := lo.Find(info.Deps, func(m *debug.Module) bool { return m.Path == modulePath })
	if !found || dep.Version == "" || dep.Version == "(devel)" {
		return Name
	}
	if dep.Replace != nil && dep.Replace.Version != "" {
		return Name + "-" + strings.TrimPrefix(dep.Replace.Version, "v")
	}
	return Name + "-" + strings.TrimPrefix(dep.Version, "v")
}

func (e *Engine) Add(lit int32) {
	e.g.Add(z.Dimacs2Lit(int(lit)))
}

func (e *Engine) Assume(lit int32) {
	m := z.Dimacs2Lit(int(lit))
	if m.Var() > e.g.MaxVar() {
		// gini only sizes its tables on Add
		e.g.Add(m)
		e.g.Add(m.Not())
		e.g.Add(z.LitNull)
	}
	e.g.Assume(m)
}

func (e *Engine) Solve() int {
	e.failed = nil

	var result int
	if e.poll == nil {
		result = e.g.Solve()
	} else {
		result = e.solvePolling()
	}

	if result == -1 {
		e.failed = lo.SliceToMap(e.g.Why(nil), func(m z.Lit) (z.Lit, bool) { return m, true })
	}
	return statusCode(result)
}

func (e *Engine) solvePolling() int {
	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	running := e.g.GoSolve()
	for {
		if result, done := running.Test(); done {
			return result
		}
		if e.poll() {
			return running.Stop()
		}
		<-ticker.C
	}
}

func (e *Engine) Val(lit int32) int32 {
	m := z.Dimacs2Lit(int(lit))
	if m.Var() > e.g.MaxVar() {
		return 0
	}
	if e.g.Value(m) {
		return lit
	}
	return -lit
}

func (e *Engine) Failed(lit int32) int {
	if e.failed[z.Dimacs2Lit(int(lit))] {
		return 1
	}
	return 0
}

func (e *Engine) SetTerminate(poll func() bool) {
	e.poll = poll
}

func (e *Engine) Release() {
	e.g = nil
	e.poll = nil
	e.failed = nil
}

// statusCode maps gini results (1, -1, 0) to IPASIR codes.
func statusCode(result int) int {
	switch result {
	case 1:
		return sat.CodeSatisfiable
	case -1:
		return sat.CodeUnsatisfiable
	default:
		return sat.CodeUnknown
	}
}
