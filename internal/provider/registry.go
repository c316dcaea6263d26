package provider

import (
	"fmt"
	"sync"

	"github.com/avastudio/avatar-api/internal/domain"
)

// Registry manages generation providers and routing
type Registry struct {
	providers       map[string]Provider
	defaultProvider string
	mu              sync.RWMutex
}

// NewRegistry creates a new provider registry
func NewRegistry(defaultProvider string) *Registry {
	return &Registry{
		providers:       make(map[string]Provider),
		defaultProvider: defaultProvider,
	}
}

// Register registers a generation provider
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns a provider by name, falling back to the default. An
// unconfigured provider is reported as not configured rather than used.
func (r *Registry) Get(name string) (Provider, error) {
	if name == "" {
		name = r.defaultProvider
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider not found: %s", name)
	}

	if !p.IsConfigured() {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotConfigured, name)
	}

	return p, nil
}

// Default returns the default provider name
func (r *Registry) Default() string {
	return r.defaultProvider
}

// Info contains information about a registered provider
type Info struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Default    bool   `json:"default"`
	Configured bool   `json:"configured"`
}

// List returns information about all registered providers
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var infos []Info
	for name, p := range r.providers {
		infos = append(infos, Info{
			Name:       name,
			Kind:       string(p.Kind()),
			Default:    name == r.defaultProvider,
			Configured: p.IsConfigured(),
		})
	}
	return infos
}
