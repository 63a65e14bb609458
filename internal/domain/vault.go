package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BpsDenominator is the basis-point scale used for all percentage math.
// There is no floating point anywhere in the accounting path.
const BpsDenominator = 10000

// All asset and share amounts are integral base units of the vault asset
// (cents, wei, ...). Conversions floor or ceil to whole units, always in the
// pool's favor.

// VaultMode represents the vault's operating state.
type VaultMode string

const (
	VaultModeNormal            VaultMode = "NORMAL"
	VaultModePaused            VaultMode = "PAUSED"
	VaultModeEmergencyShutdown VaultMode = "EMERGENCY_SHUTDOWN"
)

// vaultModeTransitions is the single allowed-transition table for VaultMode.
// Every mode change must go through Vault.TransitionMode.
var vaultModeTransitions = map[VaultMode][]VaultMode{
	VaultModeNormal:            {VaultModePaused, VaultModeEmergencyShutdown},
	VaultModePaused:            {VaultModeNormal, VaultModeEmergencyShutdown},
	VaultModeEmergencyShutdown: {VaultModeNormal}, // ResumeFromEmergency only
}

// Vault is the pooled custody-and-accounting unit for one asset.
// Persisted fields are append-only: new fields may only be added after
// SchemaVersion, never inserted or reordered.
type Vault struct {
	ID                   uuid.UUID
	Name                 string
	Asset                string
	CashBalance          decimal.Decimal
	SharesOutstanding    decimal.Decimal
	CashBufferBps        int64
	SlippageBps          int64
	MaxLossBps           int64
	ProtocolFeeBps       int64
	ActiveAdapterID      *uuid.UUID
	TotalProfit          decimal.Decimal
	TotalLoss            decimal.Decimal
	LastHarvestTime      time.Time
	Mode                 VaultMode
	EmergencyActivatedAt *time.Time
	LastDivestError      string
	GracePeriod          time.Duration
	MinHoldPeriod        time.Duration
	CreatedAt            time.Time
	SchemaVersion        int
}

// virtualOffset defeats first-depositor share price manipulation: conversion
// behaves as if one virtual share backed by one virtual asset unit always
// exists, so donating assets before the first deposit cannot inflate the
// share price enough to round later depositors down to zero shares.
var virtualOffset = decimal.NewFromInt(1)

// Validate ensures the vault adheres to domain rules.
func (v *Vault) Validate() error {
	if v.Name == "" {
		return E(KindValidation, "vault name cannot be empty")
	}
	if v.Asset == "" {
		return E(KindValidation, "vault asset cannot be empty")
	}
	for _, bps := range []int64{v.CashBufferBps, v.SlippageBps, v.MaxLossBps, v.ProtocolFeeBps} {
		if bps < 0 || bps > BpsDenominator {
			return Ef(KindValidation, "basis points value %d out of range [0, %d]", bps, BpsDenominator)
		}
	}
	if v.CashBalance.IsNegative() || v.SharesOutstanding.IsNegative() {
		return E(KindValidation, "vault balances cannot be negative")
	}
	return nil
}

// CanTransitionMode reports whether the mode change is in the transition table.
func (v *Vault) CanTransitionMode(to VaultMode) bool {
	for _, allowed := range vaultModeTransitions[v.Mode] {
		if allowed == to {
			return true
		}
	}
	return false
}

// TransitionMode applies a mode change, rejecting any move not in the table.
func (v *Vault) TransitionMode(to VaultMode) error {
	if !v.CanTransitionMode(to) {
		return Ef(KindState, "vault mode transition %s -> %s not allowed", v.Mode, to)
	}
	v.Mode = to
	return nil
}

// ConvertToShares returns the shares minted for a deposit of assets against
// the given total pool assets. Rounds down: deposits favor the pool.
func (v *Vault) ConvertToShares(assets, totalAssets decimal.Decimal) decimal.Decimal {
	return assets.
		Mul(v.SharesOutstanding.Add(virtualOffset)).
		Div(totalAssets.Add(virtualOffset)).
		Floor()
}

// ConvertToSharesUp returns the shares burned to withdraw assets.
// Rounds up: withdrawals burn more shares, favoring the pool.
func (v *Vault) ConvertToSharesUp(assets, totalAssets decimal.Decimal) decimal.Decimal {
	return assets.
		Mul(v.SharesOutstanding.Add(virtualOffset)).
		Div(totalAssets.Add(virtualOffset)).
		Ceil()
}

// ConvertToAssets returns the assets paid out for redeeming shares.
// Rounds down: the pool never pays out more than the proportional claim.
func (v *Vault) ConvertToAssets(shares, totalAssets decimal.Decimal) decimal.Decimal {
	return shares.
		Mul(totalAssets.Add(virtualOffset)).
		Div(v.SharesOutstanding.Add(virtualOffset)).
		Floor()
}

// ConvertToAssetsUp returns the assets required to mint an exact share count.
// Rounds up: minting charges more assets, favoring the pool.
func (v *Vault) ConvertToAssetsUp(shares, totalAssets decimal.Decimal) decimal.Decimal {
	return shares.
		Mul(totalAssets.Add(virtualOffset)).
		Div(v.SharesOutstanding.Add(virtualOffset)).
		Ceil()
}

// CashBufferTarget returns the cash amount the vault keeps liquid for the
// given total assets: totalAssets * CashBufferBps / 10000, rounded up so the
// buffer is never undershot by rounding.
func (v *Vault) CashBufferTarget(totalAssets decimal.Decimal) decimal.Decimal {
	return totalAssets.
		Mul(decimal.NewFromInt(v.CashBufferBps)).
		Div(decimal.NewFromInt(BpsDenominator)).
		Ceil()
}

// MaxDivestLoss returns the largest divestment deficit tolerated for the
// given shortfall: shortfall * MaxLossBps / 10000, rounded down.
func (v *Vault) MaxDivestLoss(shortfall decimal.Decimal) decimal.Decimal {
	return shortfall.
		Mul(decimal.NewFromInt(v.MaxLossBps)).
		Div(decimal.NewFromInt(BpsDenominator)).
		Floor()
}

// GracePeriodElapsed reports whether the post-shutdown grace period has
// passed at the given time. Always false outside emergency shutdown.
func (v *Vault) GracePeriodElapsed(now time.Time) bool {
	if v.Mode != VaultModeEmergencyShutdown || v.EmergencyActivatedAt == nil {
		return false
	}
	return !now.Before(v.EmergencyActivatedAt.Add(v.GracePeriod))
}
