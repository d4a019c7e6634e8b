package registry

import (
	"fmt"
	"sort"
	"sync"

	diag "github.com/your-org/modulecontainer/modules/diagnostics"
)

// Factory builds a new provider that reports to emitter
type Factory[T any] func(emitter diag.Emitter) T

// Registry stores provider factories for one capability type
type Registry[T any] struct {
	mu         sync.RWMutex
	capability string
	factories  map[string]Factory[T]
}

// New creates an empty registry for the named capability
func New[T any](capability string) *Registry[T] {
	return &Registry[T]{
		capability: capability,
		factories:  make(map[string]Factory[T]),
	}
}

// Capability returns the capability name the registry serves
func (r *Registry[T]) Capability() string {
	return r.capability
}

// Register adds or replaces a provider factory
func (r *Registry[T]) Register(name string, factory Factory[T]) error {
	if name == "" {
		return ErrNameRequired
	}
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[name] = factory
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error
func (r *Registry[T]) MustRegister(name string, factory Factory[T]) {
	if err := r.Register(name, factory); err != nil {
		panic(fmt.Sprintf("registry %s: %v", r.capability, err))
	}
}

// Deregister removes a provider factory
func (r *Registry[T]) Deregister(name string) error {
	if name == "" {
		return ErrNameRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; !exists {
		return fmt.Errorf("%w: %s/%s", ErrProviderNotFound, r.capability, name)
	}

	delete(r.factories, name)
	return nil
}

// New constructs a fresh provider instance
func (r *Registry[T]) New(name string, emitter diag.Emitter) (T, error) {
	var zero T
	if name == "" {
		return zero, ErrNameRequired
	}

	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return zero, fmt.Errorf("%w: %s/%s", ErrProviderNotFound, r.capability, name)
	}

	// Factory runs outside the lock so it may consult the registry itself
	return factory(diag.OrDiscard(emitter)), nil
}

// Exists checks if a provider is registered
func (r *Registry[T]) Exists(name string) (bool, error) {
	if name == "" {
		return false, ErrNameRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists, nil
}

// List returns the registered provider names in sorted order
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Count returns the number of registered providers
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.factories)
}
