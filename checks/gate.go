package checks

import (
	"context"
	"sync/atomic"

	"github.com/jonwraymond/healthops/health"
)

// Gate is a manually controlled check. It starts open (healthy); Set closes
// it so the verdict it belongs to reports not healthy, typically while the
// service drains before shutdown.
//
// A Gate is safe for concurrent use.
type Gate struct {
	closed atomic.Bool
}

// NewGate returns an open gate.
func NewGate() *Gate {
	return &Gate{}
}

// Set closes the gate.
func (g *Gate) Set() {
	g.closed.Store(true)
}

// Clear opens the gate.
func (g *Gate) Clear() {
	g.closed.Store(false)
}

// IsSet reports whether the gate is closed.
func (g *Gate) IsSet() bool {
	return g.closed.Load()
}

// Evaluate reports true while the gate is open.
func (g *Gate) Evaluate(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return !g.closed.Load(), nil
}

// Factory returns a factory that always yields this gate, so every check
// set naming it observes the same state.
func (g *Gate) Factory() health.Factory {
	return func(health.Runtime) (any, error) {
		return g, nil
	}
}
