package vault

import (
	"sync"

	"github.com/google/uuid"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// entryGuard rejects nested mutating entry into the same vault. Adapters and
// payout recipients run synchronously inside ledger operations; a callback
// into the ledger mid-operation would observe half-applied state.
type entryGuard struct {
	mu     sync.Mutex
	active map[uuid.UUID]bool
}

func newEntryGuard() *entryGuard {
	return &entryGuard{active: make(map[uuid.UUID]bool)}
}

// Enter marks the vault as mid-operation. The caller must pair every
// successful Enter with Exit, including on error paths.
func (g *entryGuard) Enter(vaultID uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active[vaultID] {
		return domain.E(domain.KindConcurrency, "reentrant call on vault detected")
	}
	g.active[vaultID] = true
	return nil
}

// Exit clears the mid-operation mark.
func (g *entryGuard) Exit(vaultID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, vaultID)
}
