// Package cadical binds the CaDiCaL SAT solver through its C interface,
// ccadical.h, and registers it as the "cadical" backend of the sat package.
//
// The binding needs cgo and libcadical and is only compiled with the cadical
// build tag:
//
//	go build -tags cadical ./...
//
// Without the tag the package is empty apart from Name and Available.
package cadical

const Name = "cadical"
