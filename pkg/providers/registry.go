package providers

import (
	"fmt"
	"sync"
)

// ErrProviderNotFound is returned when a registry lookup misses.
var ErrProviderNotFound = fmt.Errorf("providers: provider not found")

// Registry stores providers by name with thread-safe access. Grounded on
// the teacher's LLMProviderRegistry (pkg/config/llm.go): map + RWMutex,
// defensive-copy construction, Get/GetAll/Names.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry builds a Registry from the given providers, keyed by each
// provider's Name().
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.Name()] = p
	}
	return r
}

// Get retrieves a provider by name.
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// GetAll returns a defensive copy of the full provider map.
func (r *Registry) GetAll() map[string]Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Provider, len(r.providers))
	for k, v := range r.providers {
		out[k] = v
	}
	return out
}

// Names returns the registry's provider names, in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.providers))
	for k := range r.providers {
		out = append(out, k)
	}
	return out
}
