package checks

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mackerelio/go-osstat/memory"

	"github.com/jonwraymond/healthops/health"
	"github.com/jonwraymond/healthops/observe"
)

// HostMemoryID is the identifier Register uses for the host memory check.
const HostMemoryID = "host-memory"

// HostMemory reports unhealthy when the host's used memory crosses the
// critical fraction of its total memory.
type HostMemory struct {
	threshold float64
	logger    observe.Logger
	read      func() (*memory.Stats, error)
}

// NewHostMemory creates a host memory check. A threshold outside (0, 1)
// uses 0.95.
func NewHostMemory(threshold float64, logger observe.Logger) *HostMemory {
	if threshold <= 0 || threshold >= 1 {
		threshold = 0.95
	}
	if logger == nil {
		logger = observe.NopLogger()
	}
	return &HostMemory{threshold: threshold, logger: logger, read: memory.Get}
}

// HostMemoryFactory returns a factory building a host memory check.
func HostMemoryFactory(threshold float64) health.Factory {
	return func(rt health.Runtime) (any, error) {
		return NewHostMemory(threshold, rt.Logger()), nil
	}
}

// Evaluate reads the host memory statistics. A read failure fails the
// check.
func (h *HostMemory) Evaluate(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	stats, err := h.read()
	if err != nil {
		return false, fmt.Errorf("checks: reading host memory: %w", err)
	}
	if stats.Total == 0 {
		return true, nil
	}

	usage := float64(stats.Used) / float64(stats.Total)
	if usage >= h.threshold {
		h.logger.Warn(ctx, "host memory usage critical",
			observe.Field{Key: "used", Value: humanize.IBytes(stats.Used)},
			observe.Field{Key: "total", Value: humanize.IBytes(stats.Total)},
			observe.Field{Key: "usage_percent", Value: usage * 100},
		)
		return false, nil
	}
	return true, nil
}
