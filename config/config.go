package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/healthops/health"
	"github.com/jonwraymond/healthops/observe"
)

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete configuration.
type Config struct {
	Health  Health         `koanf:"health"`
	Observe observe.Config `koanf:"observe"`
}

// Health configures the check sets and the aggregator.
type Health struct {
	ReadinessChecks []string      `koanf:"readiness_checks"`
	LivenessChecks  []string      `koanf:"liveness_checks"`
	ReadinessPath   string        `koanf:"readiness_path"`
	LivenessPath    string        `koanf:"liveness_path"`
	CheckTimeout    time.Duration `koanf:"check_timeout"`
	MaxConcurrent   int           `koanf:"max_concurrent"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Health: Health{
			ReadinessChecks: []string{},
			LivenessChecks:  []string{},
			ReadinessPath:   health.DefaultReadinessPath,
			LivenessPath:    health.DefaultLivenessPath,
		},
		Observe: observe.Config{
			ServiceName: "healthops",
			Tracing: observe.TracingConfig{
				Exporter:  "none",
				SamplePct: 1.0,
			},
			Metrics: observe.MetricsConfig{
				Exporter: "none",
			},
			Logging: observe.LoggingConfig{
				Enabled: true,
				Level:   "info",
			},
		},
	}
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.Settings(); err != nil {
		errs = append(errs, err)
	}
	if c.Health.CheckTimeout < 0 {
		errs = append(errs, fmt.Errorf("health.check_timeout must not be negative, got %s", c.Health.CheckTimeout))
	}
	if c.Health.MaxConcurrent < 0 {
		errs = append(errs, fmt.Errorf("health.max_concurrent must not be negative, got %d", c.Health.MaxConcurrent))
	}
	if err := c.Observe.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Settings converts the health section into aggregator settings.
func (c Config) Settings() (health.Settings, error) {
	return health.NewSettings(
		c.Health.ReadinessChecks,
		c.Health.LivenessChecks,
		c.Health.ReadinessPath,
		c.Health.LivenessPath,
	)
}

// AggregatorConfig returns the aggregator options resolving checks through
// reg. A nil reg uses health.DefaultRegistry.
func (c Config) AggregatorConfig(reg *health.Registry) health.AggregatorConfig {
	return health.AggregatorConfig{
		Registry:      reg,
		CheckTimeout:  c.Health.CheckTimeout,
		MaxConcurrent: c.Health.MaxConcurrent,
	}
}

// ObserveConfig returns the observability section.
func (c Config) ObserveConfig() observe.Config {
	return c.Observe
}
