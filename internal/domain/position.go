package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LockTranche is a time-boxed sub-position created when a deposit is
// designated to a campaign. Shares in an unexpired tranche cannot be
// withdrawn unless the tranche's restriction has been lifted by governance.
type LockTranche struct {
	Shares            decimal.Decimal
	CampaignID        uuid.UUID
	UnlockTime        time.Time
	CreatedAt         time.Time
	RestrictionLifted bool
}

// Position is a depositor's claim on a vault: their share balance, any
// time-boxed lock tranches, and share allowances granted to other actors.
// Persisted fields are append-only after SchemaVersion.
type Position struct {
	Depositor     uuid.UUID
	VaultID       uuid.UUID
	Shares        decimal.Decimal
	LockTranches  []LockTranche
	Allowances    map[uuid.UUID]decimal.Decimal
	SchemaVersion int
}

// NewPosition returns an empty position for the depositor.
func NewPosition(depositor, vaultID uuid.UUID) *Position {
	return &Position{
		Depositor:  depositor,
		VaultID:    vaultID,
		Shares:     decimal.Zero,
		Allowances: make(map[uuid.UUID]decimal.Decimal),
	}
}

// LockedShares returns the shares still locked at the given time.
// Tranches whose restriction was lifted do not count as locked.
func (p *Position) LockedShares(now time.Time) decimal.Decimal {
	locked := decimal.Zero
	for _, tr := range p.LockTranches {
		if tr.RestrictionLifted {
			continue
		}
		if now.Before(tr.UnlockTime) {
			locked = locked.Add(tr.Shares)
		}
	}
	return locked
}

// UnlockedShares returns the shares freely withdrawable at the given time.
func (p *Position) UnlockedShares(now time.Time) decimal.Decimal {
	unlocked := p.Shares.Sub(p.LockedShares(now))
	if unlocked.IsNegative() {
		return decimal.Zero
	}
	return unlocked
}

// PruneExpiredTranches drops tranches whose unlock time has passed.
func (p *Position) PruneExpiredTranches(now time.Time) {
	kept := p.LockTranches[:0]
	for _, tr := range p.LockTranches {
		if now.Before(tr.UnlockTime) && !tr.RestrictionLifted {
			kept = append(kept, tr)
		}
	}
	p.LockTranches = kept
}

// LiftCampaignRestriction marks every tranche tied to the campaign as
// unrestricted so the supporter may exit early.
func (p *Position) LiftCampaignRestriction(campaignID uuid.UUID) {
	for i := range p.LockTranches {
		if p.LockTranches[i].CampaignID == campaignID {
			p.LockTranches[i].RestrictionLifted = true
		}
	}
}

// Allowance returns the share allowance granted to spender.
func (p *Position) Allowance(spender uuid.UUID) decimal.Decimal {
	if p.Allowances == nil {
		return decimal.Zero
	}
	if a, ok := p.Allowances[spender]; ok {
		return a
	}
	return decimal.Zero
}

// SpendAllowance consumes shares from spender's allowance.
func (p *Position) SpendAllowance(spender uuid.UUID, shares decimal.Decimal) error {
	current := p.Allowance(spender)
	if current.LessThan(shares) {
		return Ef(KindIntegrity, "allowance %s is below requested %s shares", current, shares)
	}
	p.Allowances[spender] = current.Sub(shares)
	return nil
}

// ShareSnapshot records a depositor's share balance after a mutation, stamped
// with the global sequence. Historical balances for harvest entitlements are
// reconstructed from these rows.
type ShareSnapshot struct {
	Depositor     uuid.UUID
	VaultID       uuid.UUID
	Seq           int64
	Shares        decimal.Decimal
	SchemaVersion int
}
