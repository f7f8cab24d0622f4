package health

import (
	"fmt"
	"strings"
)

// Verdict selects which check set to evaluate.
type Verdict int

const (
	// Ready asks whether the service can accept traffic.
	Ready Verdict = iota
	// Alive asks whether the process is functioning and should be kept.
	Alive
)

// String returns "ready" or "alive".
func (v Verdict) String() string {
	switch v {
	case Ready:
		return "ready"
	case Alive:
		return "alive"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// ParseVerdict parses "ready" / "readiness" and "alive" / "liveness".
func ParseVerdict(s string) (Verdict, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ready", "readiness":
		return Ready, nil
	case "alive", "liveness":
		return Alive, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVerdict, s)
	}
}

// Outcome is the result of evaluating a check or a check set: either
// Success carrying the reported health, or Failure carrying the cause that
// kept the check from reporting at all.
//
// The zero Outcome is Success(false).
type Outcome struct {
	healthy bool
	err     error
}

// Success returns an outcome for a check that ran and reported healthy.
func Success(healthy bool) Outcome {
	return Outcome{healthy: healthy}
}

// Failure returns an outcome for a check that could not report. A nil err
// is replaced with ErrCheckFailed so a Failure always carries a cause.
func Failure(err error) Outcome {
	if err == nil {
		err = ErrCheckFailed
	}
	return Outcome{err: err}
}

// Healthy reports whether the outcome is Success(true).
func (o Outcome) Healthy() bool {
	return o.err == nil && o.healthy
}

// Failed reports whether the outcome is a Failure.
func (o Outcome) Failed() bool {
	return o.err != nil
}

// Err returns the failure cause, or nil for a Success.
func (o Outcome) Err() error {
	return o.err
}

// Result unpacks the outcome into the (healthy, err) pair callers return.
func (o Outcome) Result() (bool, error) {
	if o.err != nil {
		return false, o.err
	}
	return o.healthy, nil
}

func (o Outcome) String() string {
	if o.err != nil {
		return "failure: " + o.err.Error()
	}
	return fmt.Sprintf("success(%t)", o.healthy)
}

// Combine folds outcomes with AND semantics. The first Failure in argument
// order wins; otherwise the result is Success(true) only when every outcome
// is Success(true). No outcomes combine to Success(true).
func Combine(outcomes ...Outcome) Outcome {
	healthy := true
	for _, o := range outcomes {
		if o.err != nil {
			return o
		}
		healthy = healthy && o.healthy
	}
	return Success(healthy)
}
