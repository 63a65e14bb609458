package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Distribution is the record of one harvested profit made claimable. The
// router never iterates depositors: each depositor settles their own
// entitlement with a claim against this record, priced by their share
// balance at SnapshotSeq. Persisted fields are append-only after
// SchemaVersion.
type Distribution struct {
	ID            uuid.UUID
	VaultID       uuid.UUID
	GrossProfit   decimal.Decimal
	Fee           decimal.Decimal
	Amount        decimal.Decimal // net claimable: GrossProfit - Fee
	TotalShares   decimal.Decimal
	SnapshotSeq   int64
	ClaimedShares decimal.Decimal
	ClaimedAmount decimal.Decimal
	CreatedAt     time.Time
	SchemaVersion int
}

// Entitlement returns the floor-rounded claim for the given share balance.
func (d *Distribution) Entitlement(shares decimal.Decimal) decimal.Decimal {
	if d.TotalShares.IsZero() {
		return decimal.Zero
	}
	return d.Amount.Mul(shares).Div(d.TotalShares).Floor()
}

// FullyClaimed reports whether every share has settled its entitlement.
// Once true, Amount - ClaimedAmount is pure rounding dust.
func (d *Distribution) FullyClaimed() bool {
	return d.ClaimedShares.GreaterThanOrEqual(d.TotalShares)
}

// Dust returns the rounding remainder left after all claims settle.
func (d *Distribution) Dust() decimal.Decimal {
	return d.Amount.Sub(d.ClaimedAmount)
}

// PayoutKind classifies a payout ledger entry.
type PayoutKind string

const (
	PayoutKindCampaign    PayoutKind = "CAMPAIGN"
	PayoutKindBeneficiary PayoutKind = "BENEFICIARY"
	PayoutKindFee         PayoutKind = "FEE"
	PayoutKindEscrow      PayoutKind = "ESCROW"
	PayoutKindRelease     PayoutKind = "RELEASE"
	PayoutKindRefund      PayoutKind = "REFUND"
)

// PayoutEntry is one executed credit in the payout ledger.
// Persisted fields are append-only after SchemaVersion.
type PayoutEntry struct {
	ID             uuid.UUID
	VaultID        uuid.UUID
	DistributionID uuid.UUID
	Kind           PayoutKind
	CampaignID     *uuid.UUID
	Beneficiary    *uuid.UUID
	Amount         decimal.Decimal
	CreatedAt      time.Time
	SchemaVersion  int
}

// ClaimRecord marks a depositor's settled claim against a distribution and
// keeps the split it produced. A second claim for the same pair is rejected.
type ClaimRecord struct {
	DistributionID    uuid.UUID
	Depositor         uuid.UUID
	Shares            decimal.Decimal
	Entitlement       decimal.Decimal
	CampaignAmount    decimal.Decimal
	BeneficiaryAmount decimal.Decimal
	Escrowed          bool
	ClaimedAt         time.Time
	SchemaVersion     int
}

// EscrowBucket holds a halted campaign's entitlements until the halt clears
// (release) or the campaign is cancelled (refund to contributors).
type EscrowBucket struct {
	CampaignID    uuid.UUID
	Amount        decimal.Decimal
	SchemaVersion int
}

// EscrowContribution tracks how much of an escrow bucket each depositor's
// claims supplied, so a cancellation can refund pro-rata exactly.
type EscrowContribution struct {
	CampaignID    uuid.UUID
	Depositor     uuid.UUID
	Amount        decimal.Decimal
	SchemaVersion int
}
