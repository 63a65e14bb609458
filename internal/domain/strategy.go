package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StrategyAdapter is the port a pluggable yield strategy must satisfy.
//
// Binding contract: an adapter is bound to exactly one vault and one asset.
// Every mutating method takes the caller vault's ID and must reject any other
// caller; the vault verifies the adapter's declared binding before use. The
// mutual check stops a swapped adapter from silently misrouting funds.
type StrategyAdapter interface {
	// ID is the opaque identifier the vault stores and resolves through a
	// Registry. The vault never holds the adapter itself.
	ID() uuid.UUID

	// Asset is the asset symbol the adapter accepts.
	Asset() string

	// VaultID is the vault the adapter is bound to.
	VaultID() uuid.UUID

	// TotalAssets reports the assets currently under the strategy.
	TotalAssets(ctx context.Context) (decimal.Decimal, error)

	// Invest moves amount from the vault into the strategy.
	Invest(ctx context.Context, callerVault uuid.UUID, amount decimal.Decimal) error

	// Divest asks the strategy to return amount. The returned value may be
	// less than requested; the vault decides whether the deficit is an
	// acceptable realized loss.
	Divest(ctx context.Context, callerVault uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)

	// Harvest realizes accrued profit or loss since the last harvest and
	// releases any profit to the caller. The vault hands released profit
	// straight to the payout router; it never enters the cash buffer.
	Harvest(ctx context.Context, callerVault uuid.UUID) (profit, loss decimal.Decimal, err error)

	// EmergencyWithdraw pulls everything the strategy can return.
	EmergencyWithdraw(ctx context.Context, callerVault uuid.UUID) (decimal.Decimal, error)
}

// AdapterRegistry resolves opaque adapter IDs. Vaults store IDs, never
// adapter references, so there is no ledger<->adapter ownership cycle.
type AdapterRegistry interface {
	Resolve(id uuid.UUID) (StrategyAdapter, error)
}

// DivestResult is the outcome of a best-effort emergency divestment.
type DivestResult struct {
	Withdrawn decimal.Decimal
	Err       error
}

// TryEmergencyDivest wraps an adapter's EmergencyWithdraw as a non-fatal,
// result-returning call. This is the documented best-effort exception used
// on emergency-shutdown entry; everywhere else adapter errors abort the
// enclosing operation.
func TryEmergencyDivest(ctx context.Context, a StrategyAdapter, callerVault uuid.UUID) DivestResult {
	withdrawn, err := a.EmergencyWithdraw(ctx, callerVault)
	if err != nil {
		return DivestResult{Withdrawn: decimal.Zero, Err: err}
	}
	return DivestResult{Withdrawn: withdrawn}
}
