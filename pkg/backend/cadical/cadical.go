//go:build cgo && cadical

package cadical

/*
#include <stdint.h>
#include <stdlib.h>
#include "ccadical.h"

extern int goCadicalTerminate(void *state);

// The terminate callback must be a C function pointer, so the Go trampoline
// is registered from here. state is a cgo.Handle, never a Go pointer.
static void gocadical_set_terminate(CCaDiCaL *s, uintptr_t state) {
	if (state == 0) {
		ccadical_set_terminate(s, NULL, NULL);
		return;
	}
	ccadical_set_terminate(s, (void *)state, goCadicalTerminate);
}
*/
import "C"
import (
	"log"
	"runtime/cgo"

	"github.com/limaJavier/incsat/pkg/sat"
)

// Available reports whether the native engine was compiled in.
const Available = true

func init() {
	sat.Register(Name, func() sat.Engine { return New() })
}

// terminateState is what the native engine's state pointer refers to, through
// a cgo.Handle. It lives from the first SetTerminate until the engine is told
// to forget it.
type terminateState struct {
	poll func() bool
}

// Engine wraps a CCaDiCaL pointer.
type Engine struct {
	ptr    *C.CCaDiCaL
	state  *terminateState
	handle cgo.Handle
}

// New allocates a native solver. CaDiCaL has no recoverable allocation
// failure, so neither does New: it panics.
func New() *Engine {
	// CCaDiCaL * ccadical_init (void);
	ptr := C.ccadical_init()
	if ptr == nil {
		log.Panicf("cadical: ccadical_init returned NULL")
	}
	return &Engine{ptr: ptr}
}

func (e *Engine) Signature() string {
	// const char * ccadical_signature (void);
	return C.GoString(C.ccadical_signature())
}

func (e *Engine) Add(lit int32) {
	// void ccadical_add (CCaDiCaL *, int lit);
	C.ccadical_add(e.ptr, C.int(lit))
}

func (e *Engine) Assume(lit int32) {
	// void ccadical_assume (CCaDiCaL *, int lit);
	C.ccadical_assume(e.ptr, C.int(lit))
}

// Solve runs the native search. The registered terminator, if any, is polled
// from inside this call on the same thread.
func (e *Engine) Solve() int {
	// int ccadical_solve (CCaDiCaL *);
	return int(C.ccadical_solve(e.ptr))
}

func (e *Engine) Val(lit int32) int32 {
	// int ccadical_val (CCaDiCaL *, int lit);
	return int32(C.ccadical_val(e.ptr, C.int(lit)))
}

func (e *Engine) Failed(lit int32) int {
	// int ccadical_failed (CCaDiCaL *, int lit);
	return int(C.ccadical_failed(e.ptr, C.int(lit)))
}

// SetTerminate registers poll with the native engine. The handle is created
// on the first registration only; later ones swap poll in place so the
// pointer CaDiCaL holds stays valid. A nil poll unregisters the trampoline
// before the handle is deleted.
func (e *Engine) SetTerminate(poll func() bool) {
	if poll == nil {
		e.unregister()
		return
	}
	if e.state != nil {
		e.state.poll = poll
		return
	}
	e.state = &terminateState{poll: poll}
	e.handle = cgo.NewHandle(e.state)
	// void ccadical_set_terminate (CCaDiCaL *, void * state, int (*terminate)(void * state));
	C.gocadical_set_terminate(e.ptr, C.uintptr_t(e.handle))
}

func (e *Engine) unregister() {
	if e.state == nil {
		return
	}
	C.gocadical_set_terminate(e.ptr, 0)
	e.handle.Delete()
	e.state = nil
	e.handle = 0
}

func (e *Engine) Release() {
	if e.ptr == nil {
		return
	}
	e.unregister()
	// void ccadical_release (CCaDiCaL *);
	C.ccadical_release(e.ptr)
	e.ptr = nil
}
