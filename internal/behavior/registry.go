package behavior

import (
	"fmt"
	"sort"
	"sync"
)

// Factory constructs a behavior instance.
type Factory func() (Behavior, error)

// Registry maintains known behavior factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register installs a behavior factory. Returns an error if the ID already
// exists.
func (r *Registry) Register(id string, factory Factory) error {
	if id == "" {
		return fmt.Errorf("behavior: id is required")
	}
	if factory == nil {
		return fmt.Errorf("behavior: factory is required for %s", id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("behavior: %s already registered", id)
	}
	r.factories[id] = factory
	return nil
}

// MustRegister panics if registration fails.
func (r *Registry) MustRegister(id string, factory Factory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// Resolve constructs a behavior by ID.
func (r *Registry) Resolve(id string) (Behavior, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("behavior: unknown id %s", id)
	}
	b, err := factory()
	if err != nil {
		return nil, err
	}
	if err := b.Info().Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// IDs returns a sorted list of registered behavior identifiers.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
