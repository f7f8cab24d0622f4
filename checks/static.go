package checks

import (
	"context"

	"github.com/jonwraymond/healthops/health"
)

// Static returns a factory whose check always reports ok.
func Static(ok bool) health.Factory {
	return func(health.Runtime) (any, error) {
		return health.CheckFunc(func(context.Context) (bool, error) {
			return ok, nil
		}), nil
	}
}

// Failing returns a factory whose check always fails with err. A nil err
// becomes health.ErrCheckFailed.
func Failing(err error) health.Factory {
	if err == nil {
		err = health.ErrCheckFailed
	}
	return func(health.Runtime) (any, error) {
		return health.CheckFunc(func(context.Context) (bool, error) {
			return false, err
		}), nil
	}
}
