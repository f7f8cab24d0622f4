package checks

import (
	"context"
	"runtime"

	"github.com/dustin/go-humanize"

	"github.com/jonwraymond/healthops/health"
	"github.com/jonwraymond/healthops/observe"
)

// MemoryID is the identifier Register uses for the memory check.
const MemoryID = "memory"

// MemoryConfig configures the memory health check.
type MemoryConfig struct {
	// CriticalThreshold is the allocated fraction of MaxAlloc at which the
	// check reports unhealthy. Value should be between 0 and 1.
	// Default: 0.95 (95%)
	CriticalThreshold float64

	// MaxAlloc is the maximum expected allocation in bytes.
	// If zero, the memory obtained from the OS (MemStats.Sys) is used.
	// Default: 0 (auto-detect)
	MaxAlloc uint64
}

// Memory reports unhealthy when heap allocation crosses the critical ratio.
type Memory struct {
	config MemoryConfig
	logger observe.Logger
	read   func(*runtime.MemStats)
}

// NewMemory creates a memory check. Invalid thresholds fall back to the
// default.
func NewMemory(config MemoryConfig, logger observe.Logger) *Memory {
	if config.CriticalThreshold <= 0 || config.CriticalThreshold >= 1 {
		config.CriticalThreshold = 0.95
	}
	if logger == nil {
		logger = observe.NopLogger()
	}
	return &Memory{
		config: config,
		logger: logger,
		read:   runtime.ReadMemStats,
	}
}

// MemoryFactory returns a factory building a memory check with the runtime
// logger.
func MemoryFactory(config MemoryConfig) health.Factory {
	return func(rt health.Runtime) (any, error) {
		return NewMemory(config, rt.Logger()), nil
	}
}

// Evaluate performs the memory health check.
func (m *Memory) Evaluate(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var stats runtime.MemStats
	m.read(&stats)

	maxAlloc := m.config.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = stats.Sys
	}
	if maxAlloc == 0 {
		// No stats to judge by.
		return true, nil
	}

	usage := float64(stats.Alloc) / float64(maxAlloc)
	if usage >= m.config.CriticalThreshold {
		m.logger.Warn(ctx, "memory usage critical",
			observe.Field{Key: "alloc", Value: humanize.IBytes(stats.Alloc)},
			observe.Field{Key: "max_alloc", Value: humanize.IBytes(maxAlloc)},
			observe.Field{Key: "usage_percent", Value: usage * 100},
			observe.Field{Key: "num_gc", Value: stats.NumGC},
		)
		return false, nil
	}
	return true, nil
}
