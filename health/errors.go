package health

import (
	"errors"
	"fmt"
)

// Load-time errors. These abort aggregator construction.
var (
	// ErrCheckNotFound indicates an identifier with no registered factory.
	ErrCheckNotFound = errors.New("health: check not found")

	// ErrCheckInitialization indicates a factory failed to construct its check.
	ErrCheckInitialization = errors.New("health: check initialization failed")

	// ErrCheckNotApplicable indicates a factory produced something that is not a check.
	ErrCheckNotApplicable = errors.New("health: check not applicable")

	// ErrInvalidRegistration indicates an empty identifier or nil factory.
	ErrInvalidRegistration = errors.New("health: invalid check registration")

	// ErrDuplicateCheck indicates an identifier registered twice.
	ErrDuplicateCheck = errors.New("health: check already registered")

	// ErrInvalidSettings indicates settings that cannot be served.
	ErrInvalidSettings = errors.New("health: invalid settings")

	// ErrUnknownVerdict indicates a verdict other than Ready or Alive.
	ErrUnknownVerdict = errors.New("health: unknown verdict")
)

// Request-time errors. These surface as Failure outcomes.
var (
	// ErrCheckFailed indicates a check failed without reporting a cause.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout indicates a check was still running at its deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)

// LoadError reports why a configured identifier could not become a check.
// Kind is one of ErrCheckNotFound, ErrCheckInitialization or
// ErrCheckNotApplicable.
type LoadError struct {
	ID    string
	Kind  error
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %q: %v", e.Kind, e.ID, e.Cause)
	}
	return fmt.Sprintf("%v: %q", e.Kind, e.ID)
}

// Unwrap exposes both Kind and Cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// PanicError carries the value recovered from a panicking factory or check.
type PanicError struct {
	ID    string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("health: check %q panicked: %v", e.ID, e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
