package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics records check evaluation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordEvaluation records one check evaluation. err is non-nil when the
	// check failed to run; healthy is only meaningful when err is nil.
	RecordEvaluation(ctx context.Context, meta CheckMeta, duration time.Duration, healthy bool, err error)
}

type metricsImpl struct {
	totalCount     metric.Int64Counter
	failureCount   metric.Int64Counter
	unhealthyCount metric.Int64Counter
	durationHist   metric.Float64Histogram
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"health.check.total",
		metric.WithDescription("Total number of health check evaluations"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	failureCount, err := meter.Int64Counter(
		"health.check.failures",
		metric.WithDescription("Health check evaluations that failed to run"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	unhealthyCount, err := meter.Int64Counter(
		"health.check.unhealthy",
		metric.WithDescription("Health check evaluations that reported not healthy"),
		metric.WithUnit("{check}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"health.check.duration_ms",
		metric.WithDescription("Health check evaluation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:     totalCount,
		failureCount:   failureCount,
		unhealthyCount: unhealthyCount,
		durationHist:   durationHist,
	}, nil
}

func (m *metricsImpl) RecordEvaluation(ctx context.Context, meta CheckMeta, duration time.Duration, healthy bool, err error) {
	opt := metric.WithAttributes(meta.attributes()...)

	m.totalCount.Add(ctx, 1, opt)

	switch {
	case err != nil:
		m.failureCount.Add(ctx, 1, opt)
	case !healthy:
		m.unhealthyCount.Add(ctx, 1, opt)
	}

	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000, opt)
}

type noopMetrics struct{}

func (noopMetrics) RecordEvaluation(context.Context, CheckMeta, time.Duration, bool, error) {}
