// Package server owns the relay's HTTP surface: the listening gate, the
// plain notify endpoint, the route table, and the listener lifecycle
// manager that binds, aborts, and restarts the network listener.
// file: internal/server/gate.go
package server

import (
	"sync/atomic"
)

// Gate is the process-wide on/off flag controlling whether request handlers
// perform work or reject with 503. It is orthogonal to the listener itself:
// closing the gate never releases the port. A plain atomic flag suffices
// because writers only store, never read-modify-write.
type Gate struct {
	listening atomic.Bool
}

// NewGate creates a gate in the given initial position.
func NewGate(open bool) *Gate {
	g := &Gate{}
	g.listening.Store(open)
	return g
}

// Listening reports whether handlers should perform work.
func (g *Gate) Listening() bool {
	return g.listening.Load()
}

// Open turns request handling on.
func (g *Gate) Open() {
	g.listening.Store(true)
}

// Close turns request handling off. Handlers reject with 503 until Open.
func (g *Gate) Close() {
	g.listening.Store(false)
}
