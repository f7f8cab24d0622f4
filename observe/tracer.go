package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// CheckMeta identifies a single check evaluation for telemetry purposes.
type CheckMeta struct {
	ID      string // Configured check identifier (required)
	Verdict string // Verdict being evaluated: "ready" or "alive" (optional)
}

// SpanName returns the deterministic span name for this check.
// Format: health.check.<verdict>.<id> or health.check.<id>
func (m CheckMeta) SpanName() string {
	if m.Verdict != "" {
		return "health.check." + m.Verdict + "." + m.ID
	}
	return "health.check." + m.ID
}

func (m CheckMeta) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("health.check.id", m.ID),
	}
	if m.Verdict != "" {
		attrs = append(attrs, attribute.String("health.check.verdict", m.Verdict))
	}
	return attrs
}

// Tracer wraps OpenTelemetry tracing with per-check span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a check evaluation.
	StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording the reported health and any error.
	EndSpan(span trace.Span, healthy bool, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(meta.attributes()...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan marks the span as errored only when the check itself broke.
// A check that ran and reported false is recorded as a clean span with
// health.check.healthy=false.
func (t *tracerImpl) EndSpan(span trace.Span, healthy bool, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("health.check.error", true))
		span.RecordError(err)
	} else {
		span.SetAttributes(
			attribute.Bool("health.check.error", false),
			attribute.Bool("health.check.healthy", healthy),
		)
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, _ bool, _ error) {
	span.End()
}
