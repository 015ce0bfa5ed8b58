//go:build cgo && cadical

package cadical

import "C"
import (
	"runtime/cgo"
	"unsafe"
)

// goCadicalTerminate is the terminate callback CaDiCaL calls during
// ccadical_solve. state carries the cgo.Handle of a terminateState. A panic
// here would unwind through C frames, so poll must not panic.
//
//export goCadicalTerminate
func goCadicalTerminate(state unsafe.Pointer) C.int {
	t := cgo.Handle(uintptr(state)).Value().(*terminateState)
	if t.poll() {
		return 1
	}
	return 0
}
