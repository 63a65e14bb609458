package strategy

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// FixedRateAdapter is the reference strategy: it accrues yield on invested
// principal at a fixed basis-point rate per accrual interval. Useful as the
// default strategy for simulated or custodial deployments and as the model
// for external integrations.
type FixedRateAdapter struct {
	id      uuid.UUID
	vaultID uuid.UUID
	asset   string

	// RatePerIntervalBps accrues on principal once per Interval.
	RatePerIntervalBps int64
	Interval           time.Duration

	mu          sync.Mutex
	principal   decimal.Decimal
	accrued     decimal.Decimal
	lastAccrual time.Time
	now         func() time.Time
}

// NewFixedRateAdapter binds a fixed-rate strategy to one vault and asset.
func NewFixedRateAdapter(vaultID uuid.UUID, asset string, rateBps int64, interval time.Duration) *FixedRateAdapter {
	return &FixedRateAdapter{
		id:                 uuid.New(),
		vaultID:            vaultID,
		asset:              asset,
		RatePerIntervalBps: rateBps,
		Interval:           interval,
		principal:          decimal.Zero,
		accrued:            decimal.Zero,
		now:                time.Now,
	}
}

// WithClock overrides the adapter clock. Test hook.
func (a *FixedRateAdapter) WithClock(now func() time.Time) *FixedRateAdapter {
	a.now = now
	return a
}

func (a *FixedRateAdapter) ID() uuid.UUID      { return a.id }
func (a *FixedRateAdapter) Asset() string      { return a.asset }
func (a *FixedRateAdapter) VaultID() uuid.UUID { return a.vaultID }

// checkCaller enforces the adapter side of the mutual-binding contract.
func (a *FixedRateAdapter) checkCaller(callerVault uuid.UUID) error {
	if callerVault != a.vaultID {
		return domain.E(domain.KindAuthorization, "caller is not the bound vault")
	}
	return nil
}

// accrue folds elapsed whole intervals into the accrued balance.
// Callers must hold the mutex.
func (a *FixedRateAdapter) accrue() {
	now := a.now()
	if a.lastAccrual.IsZero() {
		a.lastAccrual = now
		return
	}
	if a.Interval <= 0 || a.RatePerIntervalBps == 0 {
		return
	}
	intervals := int64(now.Sub(a.lastAccrual) / a.Interval)
	if intervals <= 0 {
		return
	}
	rate := decimal.NewFromInt(a.RatePerIntervalBps).Div(decimal.NewFromInt(domain.BpsDenominator))
	for i := int64(0); i < intervals; i++ {
		a.accrued = a.accrued.Add(a.principal.Mul(rate).Floor())
	}
	a.lastAccrual = a.lastAccrual.Add(time.Duration(intervals) * a.Interval)
}

// TotalAssets reports principal plus accrued, pending yield.
func (a *FixedRateAdapter) TotalAssets(_ context.Context) (decimal.Decimal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accrue()
	return a.principal.Add(a.accrued), nil
}

// Invest accepts funds from the bound vault.
func (a *FixedRateAdapter) Invest(_ context.Context, callerVault uuid.UUID, amount decimal.Decimal) error {
	if err := a.checkCaller(callerVault); err != nil {
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.E(domain.KindValidation, "invest amount must be positive")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accrue()
	a.principal = a.principal.Add(amount)
	return nil
}

// Divest returns up to amount from principal. A fixed-rate strategy has no
// slippage, so the return is amount or everything it holds.
func (a *FixedRateAdapter) Divest(_ context.Context, callerVault uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := a.checkCaller(callerVault); err != nil {
		return decimal.Zero, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.E(domain.KindValidation, "divest amount must be positive")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accrue()
	returned := amount
	if a.principal.LessThan(amount) {
		returned = a.principal
	}
	a.principal = a.principal.Sub(returned)
	return returned, nil
}

// Harvest realizes accrued yield as profit. Fixed-rate strategies never
// produce a loss.
func (a *FixedRateAdapter) Harvest(_ context.Context, callerVault uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	if err := a.checkCaller(callerVault); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accrue()
	profit := a.accrued
	a.accrued = decimal.Zero
	return profit, decimal.Zero, nil
}

// EmergencyWithdraw returns everything under management.
func (a *FixedRateAdapter) EmergencyWithdraw(_ context.Context, callerVault uuid.UUID) (decimal.Decimal, error) {
	if err := a.checkCaller(callerVault); err != nil {
		return decimal.Zero, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accrue()
	withdrawn := a.principal.Add(a.accrued)
	a.principal = decimal.Zero
	a.accrued = decimal.Zero
	return withdrawn, nil
}
