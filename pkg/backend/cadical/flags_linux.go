//go:build cgo && cadical && linux

package cadical

/*
// libcadical is usually installed in a default linker path. Otherwise provide
// CGO_CFLAGS/CGO_LDFLAGS.
#cgo LDFLAGS: -lcadical -lstdc++ -lm
*/
import "C"
