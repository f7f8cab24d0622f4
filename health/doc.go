// Package health aggregates independently defined health checks into the
// two verdicts probes ask about: ready and alive.
//
// # Core Concepts
//
// A Check reports (true, nil) when healthy, (false, nil) when it ran and
// found a problem, and a non-nil error when it could not run at all. The
// aggregator keeps those apart: the combined Outcome is Success(true) only if
// every check passed, Success(false) if some check reported false and none
// failed, and Failure(cause) if any check failed, carrying that check's error
// unchanged.
//
// # Loading Checks
//
// Checks are named by identifiers in Settings and resolved through a
// Registry of factories. Every factory receives the Runtime handle:
//
//	reg := health.NewRegistry()
//	reg.MustRegister("database", func(rt health.Runtime) (any, error) {
//	    return health.CheckFunc(func(ctx context.Context) (bool, error) {
//	        return true, db.PingContext(ctx)
//	    }), nil
//	})
//
//	settings, _ := health.NewSettings([]string{"database"}, nil, "ready", "alive")
//	agg, err := health.NewAggregator(rt, settings, health.AggregatorConfig{Registry: reg})
//
// NewAggregator loads every identifier eagerly, so an unknown name
// (ErrCheckNotFound), a failing factory (ErrCheckInitialization) or a factory
// that returns something other than a check (ErrCheckNotApplicable) is
// reported at startup instead of at the first probe.
//
// # Evaluating Verdicts
//
//	ok, err := agg.Ready(ctx)
//	switch {
//	case err != nil:
//	    // a check is broken; log err
//	case !ok:
//	    // service is up but not ready
//	}
//
// Each evaluation runs every member check in its own goroutine and waits for
// all of them. Nothing is cached and nothing is retried. By default there is
// no per-check timeout; set AggregatorConfig.CheckTimeout to bound hung
// checks.
//
// # HTTP Endpoints
//
//	mux := http.NewServeMux()
//	health.RegisterHandlers(mux, agg, logger)
//
// serves GET /ready and GET /alive with 200 for Success(true), 503 for
// Success(false) and 500 for Failure.
package health
