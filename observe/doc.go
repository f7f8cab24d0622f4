// Package observe provides observability primitives for health check
// evaluation.
//
// It is a pure instrumentation library: no check execution, no transport, no
// I/O beyond exporter setup. The health aggregator wraps each check
// evaluation with a Middleware built from an Observer:
//
//	obs, err := observe.NewObserver(ctx, observe.Config{
//	    ServiceName: "orders",
//	    Tracing:     observe.TracingConfig{Enabled: true, Exporter: "otlp", SamplePct: 0.1},
//	    Metrics:     observe.MetricsConfig{Enabled: true, Exporter: "prometheus"},
//	    Logging:     observe.LoggingConfig{Enabled: true, Level: "info"},
//	})
//	mw, err := observe.MiddlewareFromObserver(obs)
//
// Every evaluation produces one span named health.check.<verdict>.<id>, one
// increment of health.check.total, and a health.check.duration_ms sample.
// Checks that fail to run increment health.check.failures; checks that run
// and report false increment health.check.unhealthy.
package observe
