//go:build !(cgo && cadical)

package cadical

// Available reports whether the native engine was compiled in.
const Available = false
