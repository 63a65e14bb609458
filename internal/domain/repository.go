package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Atomic runs fn as one indivisible unit with respect to concurrent units.
// The postgres implementation backs this with a transaction and rolls back
// every write inside a failing fn; the memory implementation only
// serializes, so a fn that fails midway may leave partial writes there.
type Atomic interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error
}

// Sequence is the global monotonic counter used as the snapshot reference
// for checkpoint voting power and harvest entitlements.
type Sequence interface {
	// Next allocates and returns the next sequence value.
	Next(ctx context.Context) (int64, error)

	// Current returns the most recently allocated value.
	Current(ctx context.Context) (int64, error)
}

// VaultRepository persists vaults.
type VaultRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Vault, error)
	Create(ctx context.Context, v *Vault) error
	Update(ctx context.Context, v *Vault) error
	List(ctx context.Context) ([]*Vault, error)
}

// PositionRepository persists depositor positions and their share history.
type PositionRepository interface {
	// Get retrieves a position, or a zero position if none exists yet.
	Get(ctx context.Context, depositor, vaultID uuid.UUID) (*Position, error)
	Save(ctx context.Context, p *Position) error

	// AppendSnapshot records the depositor's share balance after a mutation.
	AppendSnapshot(ctx context.Context, snap *ShareSnapshot) error

	// SharesAt returns the depositor's share balance as of seq: the latest
	// snapshot with Seq <= seq, or zero if none.
	SharesAt(ctx context.Context, depositor, vaultID uuid.UUID, seq int64) (decimal.Decimal, error)

	// LiftCampaignRestriction unlocks every tranche tied to the campaign
	// across all positions.
	LiftCampaignRestriction(ctx context.Context, campaignID uuid.UUID) error
}

// PreferenceRepository persists payout preferences.
type PreferenceRepository interface {
	// Get retrieves a preference, or a NotFound error if unset.
	Get(ctx context.Context, depositor, vaultID uuid.UUID) (*PayoutPreference, error)
	Save(ctx context.Context, p *PayoutPreference) error
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	Create(ctx context.Context, c *Campaign) error
	Update(ctx context.Context, c *Campaign) error
	List(ctx context.Context, statusFilter CampaignStatus) ([]*Campaign, error)
}

// StakeRepository persists supporter stake movements.
type StakeRepository interface {
	Append(ctx context.Context, s *SupporterStake) error

	// StakedAt returns the supporter's staked balance for the campaign as of
	// seq: the signed sum of movements with Seq <= seq.
	StakedAt(ctx context.Context, supporter, campaignID uuid.UUID, seq int64) (decimal.Decimal, error)

	// TotalStakedAt returns the campaign's total staked balance as of seq.
	TotalStakedAt(ctx context.Context, campaignID uuid.UUID, seq int64) (decimal.Decimal, error)

	// Staked returns the supporter's current staked balance for the campaign.
	Staked(ctx context.Context, supporter, campaignID uuid.UUID) (decimal.Decimal, error)
}

// CheckpointRepository persists checkpoints and votes.
type CheckpointRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Checkpoint, error)
	Create(ctx context.Context, cp *Checkpoint) error
	Update(ctx context.Context, cp *Checkpoint) error
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*Checkpoint, error)

	// HasPending reports whether the campaign has an unfinalized checkpoint.
	HasPending(ctx context.Context, campaignID uuid.UUID) (bool, error)

	// GetVote retrieves a vote, or a NotFound error if never cast.
	GetVote(ctx context.Context, checkpointID, supporter uuid.UUID) (*VoteRecord, error)
	SaveVote(ctx context.Context, v *VoteRecord) error
}

// DistributionRepository persists harvest distributions and claims.
type DistributionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Distribution, error)
	Create(ctx context.Context, d *Distribution) error
	Update(ctx context.Context, d *Distribution) error
	ListByVault(ctx context.Context, vaultID uuid.UUID) ([]*Distribution, error)

	// GetClaim retrieves a claim, or a NotFound error if unclaimed.
	GetClaim(ctx context.Context, distributionID, depositor uuid.UUID) (*ClaimRecord, error)
	SaveClaim(ctx context.Context, c *ClaimRecord) error
}

// PayoutRepository persists the executed payout ledger and escrow buckets.
type PayoutRepository interface {
	Append(ctx context.Context, e *PayoutEntry) error
	ListByDistribution(ctx context.Context, distributionID uuid.UUID) ([]*PayoutEntry, error)

	// GetEscrow retrieves a campaign's escrow bucket, zero-valued if absent.
	GetEscrow(ctx context.Context, campaignID uuid.UUID) (*EscrowBucket, error)
	SaveEscrow(ctx context.Context, b *EscrowBucket) error

	// AddEscrowContribution accumulates a depositor's share of the escrow.
	AddEscrowContribution(ctx context.Context, c *EscrowContribution) error
	ListEscrowContributions(ctx context.Context, campaignID uuid.UUID) ([]*EscrowContribution, error)
	ClearEscrowContributions(ctx context.Context, campaignID uuid.UUID) error
}

// EventRecorder receives state-change notifications. Recording failures are
// logged by callers and never abort the enclosing operation: the event log
// is an observability channel, not ledger state.
type EventRecorder interface {
	Record(ctx context.Context, e *Event) error
}
