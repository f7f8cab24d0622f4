package health

import (
	"context"
	"time"

	"github.com/jonwraymond/healthops/observe"
)

// Check is a single health check routine.
//
// Evaluate reports whether the component it watches is healthy. Returning
// (false, nil) means the check ran and found a problem; returning a non-nil
// error means the check itself could not run. Callers treat the two cases
// differently.
//
// Contract:
// - Concurrency: Evaluate may be called concurrently by overlapping probes.
// - Context: implementations should honor cancellation/deadlines.
type Check interface {
	Evaluate(ctx context.Context) (bool, error)
}

// CheckFunc is an adapter to allow ordinary functions to be used as Checks.
type CheckFunc func(ctx context.Context) (bool, error)

// Evaluate calls f(ctx).
func (f CheckFunc) Evaluate(ctx context.Context) (bool, error) {
	return f(ctx)
}

// Runtime is the handle a check factory receives. It exposes the enclosing
// system to checks that need to inspect it.
type Runtime interface {
	// Name identifies the enclosing system.
	Name() string

	// Logger returns the system logger.
	Logger() observe.Logger

	// Started reports when the system came up.
	Started() time.Time
}

type runtimeImpl struct {
	name    string
	logger  observe.Logger
	started time.Time
}

// NewRuntime returns a Runtime started now. A nil logger discards output.
func NewRuntime(name string, logger observe.Logger) Runtime {
	if logger == nil {
		logger = observe.NopLogger()
	}
	return &runtimeImpl{
		name:    name,
		logger:  logger,
		started: time.Now(),
	}
}

func (r *runtimeImpl) Name() string           { return r.name }
func (r *runtimeImpl) Logger() observe.Logger { return r.logger }
func (r *runtimeImpl) Started() time.Time     { return r.started }
