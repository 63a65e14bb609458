// Package memory provides in-memory repository implementations used by
// service tests and adapter-free local runs. Aggregates are deep-copied on
// the way in and out so callers never share mutable state with the store.
package memory

import (
	"context"
	"sync"
	"sync/atomic"
)

// Store holds all in-memory repositories behind one struct.
type Store struct {
	mu  sync.Mutex
	seq atomic.Int64

	Vaults        *VaultRepository
	Positions     *PositionRepository
	Preferences   *PreferenceRepository
	Campaigns     *CampaignRepository
	Stakes        *StakeRepository
	Checkpoints   *CheckpointRepository
	Distributions *DistributionRepository
	Payouts       *PayoutRepository
}

// NewStore creates an empty store with all repositories wired.
func NewStore() *Store {
	s := &Store{}
	s.Vaults = &VaultRepository{store: s}
	s.Positions = &PositionRepository{store: s}
	s.Preferences = &PreferenceRepository{store: s}
	s.Campaigns = &CampaignRepository{store: s}
	s.Stakes = &StakeRepository{store: s}
	s.Checkpoints = &CheckpointRepository{store: s}
	s.Distributions = &DistributionRepository{store: s}
	s.Payouts = &PayoutRepository{store: s}
	return s
}

type txMarker struct{}

// RunAtomic serializes fn against all other atomic units on this store.
// Nested calls within the same unit run inline. There is no rollback: a fn
// that fails after its first repository write leaves that write in place.
func (s *Store) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, txMarker{}, true))
}

// Next allocates the next global sequence value.
func (s *Store) Next(_ context.Context) (int64, error) {
	return s.seq.Add(1), nil
}

// Current returns the most recently allocated sequence value.
func (s *Store) Current(_ context.Context) (int64, error) {
	return s.seq.Load(), nil
}
