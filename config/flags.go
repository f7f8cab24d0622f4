package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs. Flag names mirror the
// configuration keys with dashes, e.g. --health.check-timeout.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.StringSlice("health.readiness-checks", nil, "check identifiers for the readiness verdict")
	fs.StringSlice("health.liveness-checks", nil, "check identifiers for the liveness verdict")
	fs.String("health.readiness-path", d.Health.ReadinessPath, "path segment of the readiness route")
	fs.String("health.liveness-path", d.Health.LivenessPath, "path segment of the liveness route")
	fs.Duration("health.check-timeout", 0, "per-check timeout (0 disables)")
	fs.Int("health.max-concurrent", 0, "maximum checks running at once per evaluation (0 is unlimited)")

	fs.String("observe.service-name", d.Observe.ServiceName, "service name reported in telemetry")
	fs.String("observe.version", "", "service version reported in telemetry")
	fs.Bool("observe.tracing.enabled", false, "enable tracing")
	fs.String("observe.tracing.exporter", d.Observe.Tracing.Exporter, "trace exporter: otlp|jaeger|stdout|none")
	fs.Float64("observe.tracing.sample-pct", d.Observe.Tracing.SamplePct, "trace sample ratio between 0 and 1")
	fs.Bool("observe.metrics.enabled", false, "enable metrics")
	fs.String("observe.metrics.exporter", d.Observe.Metrics.Exporter, "metrics exporter: otlp|prometheus|stdout|none")
	fs.Bool("observe.logging.enabled", d.Observe.Logging.Enabled, "enable logging")
	fs.String("observe.logging.level", d.Observe.Logging.Level, "log level: debug|info|warn|error")
}
