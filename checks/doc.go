// Package checks provides built-in health check plugins.
//
// Each plugin is exposed as a health.Factory so it can be registered under
// any identifier, and Register installs the defaults under their
// conventional names:
//
//	reg := health.NewRegistry()
//	if err := checks.Register(reg); err != nil {
//	    return err
//	}
//
//	gate := checks.NewGate()
//	reg.MustRegister("drain", gate.Factory())
//
//	// On SIGTERM, stop advertising readiness before shutting down.
//	gate.Set()
//
// The plugins report (false, nil) for a detected problem and reserve errors
// for a check that could not run, typically because its context ended.
package checks
