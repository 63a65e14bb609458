// Package scheduler runs the harvest keeper. It is operational convenience
// only: all consistency-relevant time gates in the ledger are lazy
// comparisons, so a stalled keeper delays yield recognition but never
// corrupts state.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/donorvault/donorvault-backend/internal/usecase/vault"
)

// Scheduler triggers periodic harvests on a set of vaults.
type Scheduler struct {
	Cron     *cron.Cron
	Vaults   *vault.Service
	Keeper   uuid.UUID
	VaultIDs []uuid.UUID
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler. The keeper ID is the actor recorded
// on scheduled harvests.
func NewScheduler(ctx context.Context, vaults *vault.Service, keeper uuid.UUID, vaultIDs []uuid.UUID) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(),
		Vaults:   vaults,
		Keeper:   keeper,
		VaultIDs: vaultIDs,
		Ctx:      ctx,
	}
}

// Register registers the harvest task on the given cron spec.
func (s *Scheduler) Register(harvestCron string) error {
	if _, err := s.Cron.AddFunc(harvestCron, s.harvestTask); err != nil {
		return fmt.Errorf("register harvest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] harvest scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] harvest scheduler stopped")
}

// RunHarvestNow executes the harvest task immediately (manual trigger).
func (s *Scheduler) RunHarvestNow() {
	s.harvestTask()
}

func (s *Scheduler) harvestTask() {
	for _, vaultID := range s.VaultIDs {
		profit, loss, err := s.Vaults.Harvest(s.Ctx, s.Keeper, vaultID)
		if err != nil {
			// Paused and emergency vaults reject harvests; that is routine,
			// not a keeper failure.
			log.Printf("[WARN] harvest vault %s: %v", vaultID, err)
			continue
		}
		log.Printf("[INFO] harvested vault %s: profit=%s loss=%s", vaultID, profit, loss)
	}
}
