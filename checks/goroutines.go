package checks

import (
	"context"
	"runtime"

	"github.com/jonwraymond/healthops/health"
	"github.com/jonwraymond/healthops/observe"
)

// GoroutinesID is the identifier Register uses for the goroutine check.
const GoroutinesID = "goroutines"

// DefaultMaxGoroutines is the limit used when none is configured.
const DefaultMaxGoroutines = 10000

// Goroutines reports unhealthy when the goroutine count exceeds a limit,
// which usually indicates a leak.
type Goroutines struct {
	limit  int
	logger observe.Logger
	count  func() int
}

// NewGoroutines creates a goroutine check. A non-positive limit uses
// DefaultMaxGoroutines.
func NewGoroutines(limit int, logger observe.Logger) *Goroutines {
	if limit <= 0 {
		limit = DefaultMaxGoroutines
	}
	if logger == nil {
		logger = observe.NopLogger()
	}
	return &Goroutines{limit: limit, logger: logger, count: runtime.NumGoroutine}
}

// GoroutinesFactory returns a factory building a goroutine check.
func GoroutinesFactory(limit int) health.Factory {
	return func(rt health.Runtime) (any, error) {
		return NewGoroutines(limit, rt.Logger()), nil
	}
}

// Evaluate performs the goroutine check.
func (g *Goroutines) Evaluate(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	n := g.count()
	if n > g.limit {
		g.logger.Warn(ctx, "goroutine count above limit",
			observe.Field{Key: "goroutines", Value: n},
			observe.Field{Key: "limit", Value: g.limit},
		)
		return false, nil
	}
	return true, nil
}
