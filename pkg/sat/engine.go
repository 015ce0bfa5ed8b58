package sat

import (
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Engine is one instance of an incremental SAT engine, reached through the
// IPASIR entry points. Implementations are not safe for concurrent use and
// never need to be: a Solver owns its Engine exclusively.
type Engine interface {
	// Signature returns the name and version of the engine.
	Signature() string
	// Add adds a literal to the clause under construction, 0 terminates it.
	Add(lit int32)
	// Assume assumes lit for the next call to Solve only.
	Assume(lit int32)
	// Solve blocks until the engine concludes or gives up and returns 10
	// (satisfiable), 20 (unsatisfiable) or anything else.
	Solve() int
	// Val returns lit if it is true in the model, -lit if it is false, and
	// any other value if it is unconstrained.
	Val(lit int32) int32
	// Failed returns 1 if the assumption lit was used to prove
	// unsatisfiability and 0 otherwise.
	Failed(lit int32) int
	// SetTerminate registers poll to be called during Solve; the engine stops
	// when it returns true. A nil poll unregisters the previous one.
	SetTerminate(poll func() bool)
	// Release frees the instance. No other method is called afterwards.
	Release()
}

// Backend creates engine instances.
type Backend func() Engine

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]Backend)
)

// Register makes a backend available by name. It panics if the name is
// already taken or backend is nil, like database/sql drivers.
func Register(name string, backend Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	if backend == nil {
		log.Panicf("sat: Register backend %q is nil", name)
	}
	if _, ok := backends[name]; ok {
		log.Panicf("sat: Register called twice for backend %q", name)
	}
	backends[name] = backend
}

// Backends returns the sorted names of the registered backends.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := lo.Keys(backends)
	slices.Sort(names)
	return names
}

func lookupBackend(name string) (Backend, error) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	backend, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q (registered: %v)", name, lo.Keys(backends))
	}
	return backend, nil
}
