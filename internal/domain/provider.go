package domain

import (
	"context"
	"sync"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// OfferProvider is implemented by every flight offer source, simulated or
// live. Implementations must be safe for concurrent use.
type OfferProvider interface {
	// Name returns the unique provider identifier (e.g., "pegasus").
	Name() string

	// Search returns the provider's offers for the given query.
	// An empty result with a nil error is a valid outcome.
	Search(ctx context.Context, query SearchQuery) ([]FlightOffer, error)
}

// ProviderRegistry holds the set of registered offer providers.
// Registration order is preserved; registering a provider with an existing
// name replaces it in place.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]OfferProvider
	order     []string
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]OfferProvider),
	}
}

// Register adds a provider to the registry. Nil providers are ignored.
func (r *ProviderRegistry) Register(p OfferProvider) {
	if p == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.providers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.providers[name] = p
}

// Get returns the provider with the given name, or nil if not registered.
func (r *ProviderRegistry) Get(name string) OfferProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// GetAll returns all registered providers in registration order.
func (r *ProviderRegistry) GetAll() []OfferProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]OfferProvider, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.providers[name])
	}
	return result
}

// Names returns the names of all registered providers in registration order.
func (r *ProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
