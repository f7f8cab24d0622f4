package observe

import (
	"context"
	"time"
)

// EvaluateFunc is the signature of a single check evaluation.
type EvaluateFunc func(ctx context.Context, meta CheckMeta) (bool, error)

// Middleware wraps check evaluation with tracing, metrics, and logging.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe EvaluateFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Results from the wrapped function are recorded and returned unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware. Nil components are replaced with
// no-op implementations.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps an EvaluateFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn EvaluateFunc) EvaluateFunc {
	return func(ctx context.Context, meta CheckMeta) (bool, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		healthy, err := fn(ctx, meta)

		duration := time.Since(start)
		m.tracer.EndSpan(span, healthy, err)
		m.metrics.RecordEvaluation(ctx, meta, duration, healthy, err)

		logger := m.logger.WithCheck(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Microseconds()) / 1000},
		}

		switch {
		case err != nil:
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Error(ctx, "health check failed", fields...)
		case !healthy:
			logger.Warn(ctx, "health check reported not healthy", fields...)
		default:
			logger.Debug(ctx, "health check passed", fields...)
		}

		return healthy, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
