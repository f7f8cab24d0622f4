package health

import (
	"fmt"
	"slices"
	"strings"
)

// Default path segments for the two verdicts.
const (
	DefaultReadinessPath = "ready"
	DefaultLivenessPath  = "alive"
)

// Settings is the immutable health check configuration: which checks back
// each verdict, and where the verdicts are exposed.
//
// Construct with NewSettings; the zero value has no checks and default paths.
type Settings struct {
	readiness     []string
	liveness      []string
	readinessPath string
	livenessPath  string
}

// NewSettings validates and copies its inputs. Empty path segments fall back
// to "ready" and "alive"; surrounding slashes and whitespace are trimmed.
func NewSettings(readinessChecks, livenessChecks []string, readinessPath, livenessPath string) (Settings, error) {
	s := Settings{
		readiness:     slices.Clone(readinessChecks),
		liveness:      slices.Clone(livenessChecks),
		readinessPath: normalizePath(readinessPath, DefaultReadinessPath),
		livenessPath:  normalizePath(livenessPath, DefaultLivenessPath),
	}

	if s.readinessPath == s.livenessPath {
		return Settings{}, fmt.Errorf("%w: readiness and liveness share path %q", ErrInvalidSettings, s.readinessPath)
	}
	return s, nil
}

func normalizePath(p, fallback string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return fallback
	}
	return p
}

// ReadinessChecks returns a copy of the readiness check identifiers in order.
func (s Settings) ReadinessChecks() []string { return slices.Clone(s.readiness) }

// LivenessChecks returns a copy of the liveness check identifiers in order.
func (s Settings) LivenessChecks() []string { return slices.Clone(s.liveness) }

// ReadinessPath returns the readiness path segment.
func (s Settings) ReadinessPath() string {
	if s.readinessPath == "" {
		return DefaultReadinessPath
	}
	return s.readinessPath
}

// LivenessPath returns the liveness path segment.
func (s Settings) LivenessPath() string {
	if s.livenessPath == "" {
		return DefaultLivenessPath
	}
	return s.livenessPath
}

// Checks returns the identifiers configured for v.
func (s Settings) Checks(v Verdict) ([]string, error) {
	switch v {
	case Ready:
		return s.ReadinessChecks(), nil
	case Alive:
		return s.LivenessChecks(), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVerdict, v)
	}
}

// Path returns the path segment for v.
func (s Settings) Path(v Verdict) string {
	if v == Alive {
		return s.LivenessPath()
	}
	return s.ReadinessPath()
}
