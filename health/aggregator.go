package health

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/healthops/observe"
)

// AggregatorConfig configures the health aggregator.
type AggregatorConfig struct {
	// Registry resolves check identifiers.
	// Default: DefaultRegistry
	Registry *Registry

	// CheckTimeout bounds each individual check. A check still running at
	// the deadline yields a Failure matching ErrCheckTimeout.
	// Default: 0 (no timeout; a hung check hangs the evaluation)
	CheckTimeout time.Duration

	// MaxConcurrent caps how many checks of one evaluation run at once.
	// Default: 0 (one goroutine per check)
	MaxConcurrent int

	// Middleware instruments every check evaluation when set.
	Middleware *observe.Middleware
}

// CheckResult is the outcome of one member check within a Report.
type CheckResult struct {
	ID       string
	Outcome  Outcome
	Duration time.Duration
}

// Report is the detailed result of evaluating a verdict.
type Report struct {
	Verdict  Verdict
	Outcome  Outcome
	Checks   []CheckResult // configuration order
	Duration time.Duration
}

type member struct {
	id   string
	eval observe.EvaluateFunc
}

// Aggregator evaluates the readiness and liveness verdicts by running their
// check sets concurrently and combining the outcomes.
//
// All checks are loaded once by NewAggregator. After construction the
// aggregator is read-only and safe for concurrent use.
type Aggregator struct {
	config    AggregatorConfig
	settings  Settings
	runtime   Runtime
	readiness []member
	liveness  []member
}

// NewAggregator loads every check named in settings. Any identifier that
// cannot be loaded fails construction; the returned error joins the
// *LoadError of every bad identifier.
func NewAggregator(rt Runtime, settings Settings, config ...AggregatorConfig) (*Aggregator, error) {
	var cfg AggregatorConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry
	}
	if cfg.CheckTimeout < 0 {
		cfg.CheckTimeout = 0
	}
	if cfg.MaxConcurrent < 0 {
		cfg.MaxConcurrent = 0
	}
	if rt == nil {
		rt = NewRuntime("", nil)
	}

	a := &Aggregator{
		config:   cfg,
		settings: settings,
		runtime:  rt,
	}

	var errs []error
	var err error
	if a.readiness, err = a.load(Ready, settings.ReadinessChecks()); err != nil {
		errs = append(errs, err)
	}
	if a.liveness, err = a.load(Alive, settings.LivenessChecks()); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return a, nil
}

func (a *Aggregator) load(v Verdict, ids []string) ([]member, error) {
	ctx := context.Background()
	logger := a.runtime.Logger()

	members := make([]member, 0, len(ids))
	var errs []error
	for _, id := range ids {
		check, err := a.config.Registry.Load(id, a.runtime)
		if err != nil {
			logger.Error(ctx, "health check could not be loaded",
				observe.Field{Key: "check.id", Value: id},
				observe.Field{Key: "check.verdict", Value: v.String()},
				observe.Field{Key: "error", Value: err},
			)
			errs = append(errs, err)
			continue
		}
		id = strings.TrimSpace(id)
		members = append(members, member{id: id, eval: a.evaluator(id, check)})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	logger.Debug(ctx, "health checks loaded",
		observe.Field{Key: "check.verdict", Value: v.String()},
		observe.Field{Key: "checks", Value: ids},
	)
	return members, nil
}

// evaluator layers panic recovery, the optional timeout and the optional
// middleware around a loaded check, innermost first.
func (a *Aggregator) evaluator(id string, c Check) observe.EvaluateFunc {
	fn := func(ctx context.Context, _ observe.CheckMeta) (bool, error) {
		return safeEvaluate(ctx, id, c)
	}
	if a.config.CheckTimeout > 0 {
		fn = withTimeout(a.config.CheckTimeout, fn)
	}
	if a.config.Middleware != nil {
		fn = a.config.Middleware.Wrap(fn)
	}
	return fn
}

func safeEvaluate(ctx context.Context, id string, c Check) (healthy bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			healthy, err = false, &PanicError{ID: id, Value: p}
		}
	}()
	return c.Evaluate(ctx)
}

func withTimeout(d time.Duration, fn observe.EvaluateFunc) observe.EvaluateFunc {
	type result struct {
		healthy bool
		err     error
	}

	return func(ctx context.Context, meta observe.CheckMeta) (bool, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		// Buffered so an abandoned check can still finish and exit.
		done := make(chan result, 1)
		go func() {
			healthy, err := fn(ctx, meta)
			done <- result{healthy: healthy, err: err}
		}()

		select {
		case r := <-done:
			return r.healthy, r.err
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return false, fmt.Errorf("%w: %q still running after %s", ErrCheckTimeout, meta.ID, d)
			}
			return false, ctx.Err()
		}
	}
}

func (a *Aggregator) members(v Verdict) ([]member, error) {
	switch v {
	case Ready:
		return a.readiness, nil
	case Alive:
		return a.liveness, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVerdict, v)
	}
}

// Report evaluates v and returns per-check detail alongside the combined
// outcome.
//
// Every member check runs in its own goroutine and the combined outcome is
// computed only after all of them finish. When several checks fail, the
// surfaced cause is that of the first failing check in configuration order.
func (a *Aggregator) Report(ctx context.Context, v Verdict) Report {
	start := time.Now()

	members, err := a.members(v)
	if err != nil {
		return Report{Verdict: v, Outcome: Failure(err)}
	}

	results := make([]CheckResult, len(members))

	var g errgroup.Group
	if a.config.MaxConcurrent > 0 {
		g.SetLimit(a.config.MaxConcurrent)
	}
	for i, m := range members {
		g.Go(func() error {
			results[i] = a.run(ctx, v, m)
			return nil
		})
	}
	_ = g.Wait()

	outcomes := make([]Outcome, len(results))
	for i, r := range results {
		outcomes[i] = r.Outcome
	}

	return Report{
		Verdict:  v,
		Outcome:  Combine(outcomes...),
		Checks:   results,
		Duration: time.Since(start),
	}
}

func (a *Aggregator) run(ctx context.Context, v Verdict, m member) CheckResult {
	start := time.Now()

	healthy, err := m.eval(ctx, observe.CheckMeta{ID: m.id, Verdict: v.String()})

	outcome := Success(healthy)
	if err != nil {
		outcome = Failure(err)
	}
	return CheckResult{
		ID:       m.id,
		Outcome:  outcome,
		Duration: time.Since(start),
	}
}

// Evaluate runs the check set for v and returns the combined outcome.
func (a *Aggregator) Evaluate(ctx context.Context, v Verdict) Outcome {
	return a.Report(ctx, v).Outcome
}

// Ready evaluates the readiness verdict.
func (a *Aggregator) Ready(ctx context.Context) (bool, error) {
	return a.Evaluate(ctx, Ready).Result()
}

// Alive evaluates the liveness verdict.
func (a *Aggregator) Alive(ctx context.Context) (bool, error) {
	return a.Evaluate(ctx, Alive).Result()
}

// Settings returns the settings the aggregator was built from.
func (a *Aggregator) Settings() Settings {
	return a.settings
}

// CheckIDs returns the identifiers loaded for v, in configuration order.
func (a *Aggregator) CheckIDs(v Verdict) []string {
	members, _ := a.members(v)
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.id
	}
	return ids
}

// Check returns v as a single Check, so an aggregator can be nested inside
// another check set.
func (a *Aggregator) Check(v Verdict) Check {
	return CheckFunc(func(ctx context.Context) (bool, error) {
		return a.Evaluate(ctx, v).Result()
	})
}
