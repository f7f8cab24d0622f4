package checks

import (
	"errors"

	"github.com/jonwraymond/healthops/health"
)

// Register installs the memory, host-memory, goroutines and startup checks
// into reg with their default configuration. Identifiers already taken are
// reported in the joined error; the remaining checks are still registered.
func Register(reg *health.Registry) error {
	if reg == nil {
		reg = health.DefaultRegistry
	}

	var errs []error
	for id, factory := range map[string]health.Factory{
		MemoryID:     MemoryFactory(MemoryConfig{}),
		HostMemoryID: HostMemoryFactory(0),
		GoroutinesID: GoroutinesFactory(0),
		StartupID:    StartupFactory(0),
	} {
		if err := reg.Register(id, factory); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
