package strategy

import (
	"sync"

	"github.com/google/uuid"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// Registry resolves adapter IDs to adapters. Vaults store only the ID, so
// switching strategies never leaves a dangling reference.
type Registry struct {
	mu       sync.RWMutex
	adapters map[uuid.UUID]domain.StrategyAdapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[uuid.UUID]domain.StrategyAdapter)}
}

// Register adds an adapter to the registry.
func (r *Registry) Register(a domain.StrategyAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[a.ID()] = a
}

// Resolve returns the adapter for id.
func (r *Registry) Resolve(id uuid.UUID) (domain.StrategyAdapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[id]
	if !ok {
		return nil, domain.Ef(domain.KindNotFound, "adapter %s not registered", id)
	}
	return a, nil
}
