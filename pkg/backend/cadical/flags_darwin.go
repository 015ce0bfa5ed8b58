//go:build cgo && cadical && darwin

package cadical

/*
// Default Homebrew locations on macOS (Apple Silicon and Intel).
#cgo CFLAGS: -I/opt/homebrew/include -I/usr/local/include
#cgo LDFLAGS: -L/opt/homebrew/lib -L/usr/local/lib -lcadical -lc++
*/
import "C"
