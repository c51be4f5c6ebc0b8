// Package modkit provides module wiring and core deps
package modkit

// Module is the common surface for modules composed in a binary's main
// keep this tiny so modules stay decoupled
type Module interface {
	// Ports returns a module specific port set interface for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}
