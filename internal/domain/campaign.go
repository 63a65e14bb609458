package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus represents a campaign's lifecycle state.
type CampaignStatus string

const (
	CampaignStatusSubmitted CampaignStatus = "SUBMITTED"
	CampaignStatusApproved  CampaignStatus = "APPROVED"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusCancelled CampaignStatus = "CANCELLED"
)

// campaignTransitions is the single allowed-transition table for campaigns.
// Completed and Cancelled are terminal.
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusSubmitted: {CampaignStatusApproved, CampaignStatusCancelled},
	CampaignStatusApproved:  {CampaignStatusActive, CampaignStatusCancelled},
	CampaignStatusActive:    {CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusCancelled},
	CampaignStatusPaused:    {CampaignStatusActive, CampaignStatusCompleted, CampaignStatusCancelled},
	CampaignStatusCompleted: {},
	CampaignStatusCancelled: {},
}

// Campaign is a beneficiary cause receiving redirected yield.
// Persisted fields are append-only after SchemaVersion.
type Campaign struct {
	ID            uuid.UUID
	Name          string
	Curator       uuid.UUID
	Status        CampaignStatus
	TotalReceived decimal.Decimal
	StakeAmount   decimal.Decimal
	FundingTarget decimal.Decimal
	PayoutsHalted bool
	CreatedAt     time.Time
	SchemaVersion int
}

// Validate ensures the campaign adheres to domain rules.
func (c *Campaign) Validate() error {
	if c.Name == "" {
		return E(KindValidation, "campaign name cannot be empty")
	}
	if c.Curator == uuid.Nil {
		return E(KindValidation, "campaign curator cannot be empty")
	}
	if c.TotalReceived.IsNegative() || c.StakeAmount.IsNegative() || c.FundingTarget.IsNegative() {
		return E(KindValidation, "campaign amounts cannot be negative")
	}
	return nil
}

// CanTransition reports whether the status change is in the transition table.
func (c *Campaign) CanTransition(to CampaignStatus) bool {
	for _, allowed := range campaignTransitions[c.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition applies a status change, rejecting any move not in the table.
func (c *Campaign) Transition(to CampaignStatus) error {
	if !c.CanTransition(to) {
		return Ef(KindState, "campaign status transition %s -> %s not allowed", c.Status, to)
	}
	c.Status = to
	return nil
}

// IsTerminal reports whether the campaign can never transition again.
func (c *Campaign) IsTerminal() bool {
	return c.Status == CampaignStatusCompleted || c.Status == CampaignStatusCancelled
}

// RecordReceived credits a routed payout against the campaign and marks it
// completed once the funding target is reached.
func (c *Campaign) RecordReceived(amount decimal.Decimal) error {
	c.TotalReceived = c.TotalReceived.Add(amount)
	if c.FundingTarget.GreaterThan(decimal.Zero) &&
		c.TotalReceived.GreaterThanOrEqual(c.FundingTarget) &&
		c.CanTransition(CampaignStatusCompleted) {
		return c.Transition(CampaignStatusCompleted)
	}
	return nil
}

// Payable reports whether the campaign may be named in a payout preference.
func (c *Campaign) Payable() bool {
	switch c.Status {
	case CampaignStatusApproved, CampaignStatusActive, CampaignStatusPaused:
		return true
	}
	return false
}

// SupporterStake is one signed stake movement for a campaign, stamped with
// the global sequence. Negative amounts are unstakes. A supporter's balance
// as of sequence S is the fold of all rows with Seq <= S.
type SupporterStake struct {
	ID            uuid.UUID
	Supporter     uuid.UUID
	CampaignID    uuid.UUID
	VaultID       uuid.UUID
	Amount        decimal.Decimal
	Seq           int64
	CreatedAt     time.Time
	SchemaVersion int
}
