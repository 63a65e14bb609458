package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckpointStatus represents a checkpoint's state. Passed and Failed are
// terminal; a finalized checkpoint is immutable.
type CheckpointStatus string

const (
	CheckpointStatusPending CheckpointStatus = "PENDING"
	CheckpointStatusPassed  CheckpointStatus = "PASSED"
	CheckpointStatusFailed  CheckpointStatus = "FAILED"
)

var checkpointTransitions = map[CheckpointStatus][]CheckpointStatus{
	CheckpointStatusPending: {CheckpointStatusPassed, CheckpointStatusFailed},
	CheckpointStatusPassed:  {},
	CheckpointStatusFailed:  {},
}

// Checkpoint is a scheduled milestone vote gating a campaign's payouts.
// SnapshotSeq is the global sequence at scheduling time; only stake recorded
// at or before it carries voting power. Persisted fields are append-only
// after SchemaVersion.
type Checkpoint struct {
	ID                 uuid.UUID
	CampaignID         uuid.UUID
	Title              string
	VoteDeadline       time.Time
	QuorumBps          int64
	SnapshotSeq        int64
	VotesFor           decimal.Decimal
	VotesAgainst       decimal.Decimal
	TotalEligiblePower decimal.Decimal
	Status             CheckpointStatus
	CreatedAt          time.Time
	SchemaVersion      int
}

// Validate ensures the checkpoint adheres to domain rules.
func (cp *Checkpoint) Validate() error {
	if cp.CampaignID == uuid.Nil {
		return E(KindValidation, "checkpoint campaign ID cannot be empty")
	}
	if cp.Title == "" {
		return E(KindValidation, "checkpoint title cannot be empty")
	}
	if cp.QuorumBps < 0 || cp.QuorumBps > BpsDenominator {
		return Ef(KindValidation, "quorum %d out of range [0, %d]", cp.QuorumBps, BpsDenominator)
	}
	return nil
}

// CanTransition reports whether the status change is in the transition table.
func (cp *Checkpoint) CanTransition(to CheckpointStatus) bool {
	for _, allowed := range checkpointTransitions[cp.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition applies a status change, rejecting any move not in the table.
func (cp *Checkpoint) Transition(to CheckpointStatus) error {
	if !cp.CanTransition(to) {
		return Ef(KindState, "checkpoint status transition %s -> %s not allowed", cp.Status, to)
	}
	cp.Status = to
	return nil
}

// QuorumReached reports whether participation meets the quorum.
// participation = (for + against) / totalEligiblePower, in basis points.
func (cp *Checkpoint) QuorumReached() bool {
	if cp.TotalEligiblePower.IsZero() {
		return false
	}
	participation := cp.VotesFor.Add(cp.VotesAgainst).
		Mul(decimal.NewFromInt(BpsDenominator)).
		Div(cp.TotalEligiblePower)
	return participation.GreaterThanOrEqual(decimal.NewFromInt(cp.QuorumBps))
}

// Outcome returns the terminal status the checkpoint should finalize to.
// A tie fails: passing requires strictly more For votes.
func (cp *Checkpoint) Outcome() CheckpointStatus {
	if cp.QuorumReached() && cp.VotesFor.GreaterThan(cp.VotesAgainst) {
		return CheckpointStatusPassed
	}
	return CheckpointStatusFailed
}

// VoteRecord is a supporter's vote on a checkpoint. Power is frozen on the
// first vote from the supporter's staked balance at the checkpoint's
// snapshot sequence; later balance changes never alter it. Support may flip
// before the deadline but Power does not.
type VoteRecord struct {
	CheckpointID  uuid.UUID
	Supporter     uuid.UUID
	Power         decimal.Decimal
	Support       bool
	CastAt        time.Time
	SchemaVersion int
}
