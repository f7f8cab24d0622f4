package checks

import (
	"context"
	"time"

	"github.com/jonwraymond/healthops/health"
)

// StartupID is the identifier Register uses for the startup check.
const StartupID = "startup"

// DefaultStartupGrace is the grace period used when none is configured.
const DefaultStartupGrace = 5 * time.Second

// Startup reports not ready until a grace period has passed since the
// system started.
type Startup struct {
	started time.Time
	grace   time.Duration
	now     func() time.Time
}

// NewStartup creates a startup check measuring from started.
func NewStartup(started time.Time, grace time.Duration) *Startup {
	if grace < 0 {
		grace = 0
	}
	return &Startup{started: started, grace: grace, now: time.Now}
}

// StartupFactory returns a factory measuring from Runtime.Started. A zero
// grace uses DefaultStartupGrace.
func StartupFactory(grace time.Duration) health.Factory {
	if grace == 0 {
		grace = DefaultStartupGrace
	}
	return func(rt health.Runtime) (any, error) {
		return NewStartup(rt.Started(), grace), nil
	}
}

// Evaluate reports whether the grace period has elapsed.
func (s *Startup) Evaluate(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.now().Sub(s.started) >= s.grace, nil
}

// Remaining returns how much of the grace period is left.
func (s *Startup) Remaining() time.Duration {
	if r := s.grace - s.now().Sub(s.started); r > 0 {
		return r
	}
	return 0
}
