//go:build !release

package sat

import "log"

// debug enables the contract checks. Build with -tags release to trust the
// caller instead.
const debug = true

func contractf(format string, args ...any) {
	log.Panicf("sat: contract violation: "+format, args...)
}
