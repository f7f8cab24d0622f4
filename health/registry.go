package health

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Factory constructs a check from the runtime handle.
//
// The returned value must be a Check or a func(context.Context) (bool, error);
// anything else is rejected with ErrCheckNotApplicable when loaded.
type Factory func(rt Runtime) (any, error)

// Registry maps check identifiers to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under id.
func (r *Registry) Register(id string, factory Factory) error {
	id = strings.TrimSpace(id)
	if id == "" || factory == nil {
		return ErrInvalidRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCheck, id)
	}
	r.factories[id] = factory
	return nil
}

// MustRegister is like Register but panics on error. It is intended for
// package init functions.
func (r *Registry) MustRegister(id string, factory Factory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// List returns registered identifiers in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Load resolves id into a live check. Errors are *LoadError values matching
// ErrCheckNotFound, ErrCheckInitialization or ErrCheckNotApplicable.
func (r *Registry) Load(id string, rt Runtime) (Check, error) {
	id = strings.TrimSpace(id)

	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &LoadError{ID: id, Kind: ErrCheckNotFound}
	}

	v, err := construct(id, factory, rt)
	if err != nil {
		return nil, &LoadError{ID: id, Kind: ErrCheckInitialization, Cause: err}
	}

	if v == nil {
		return nil, &LoadError{ID: id, Kind: ErrCheckNotApplicable, Cause: errors.New("factory returned nil")}
	}
	if isNil(v) {
		return nil, &LoadError{ID: id, Kind: ErrCheckNotApplicable, Cause: fmt.Errorf("factory returned nil %T", v)}
	}

	switch c := v.(type) {
	case Check:
		return c, nil
	case func(context.Context) (bool, error):
		return CheckFunc(c), nil
	default:
		return nil, &LoadError{ID: id, Kind: ErrCheckNotApplicable, Cause: fmt.Errorf("factory returned %T", v)}
	}
}

// isNil reports whether v holds a typed nil, e.g. a nil *T returned as any.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func construct(id string, factory Factory, rt Runtime) (v any, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, &PanicError{ID: id, Value: p}
		}
	}()
	return factory(rt)
}

// DefaultRegistry is the process-wide registry used when an aggregator is
// not given one explicitly.
var DefaultRegistry = NewRegistry()

// Register adds a factory to DefaultRegistry.
func Register(id string, factory Factory) error {
	return DefaultRegistry.Register(id, factory)
}
