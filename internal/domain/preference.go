package domain

import (
	"github.com/google/uuid"
)

// PayoutPreference is a depositor's chosen split of their yield entitlement
// between a campaign and a personal beneficiary. CampaignBps of the
// entitlement goes to the campaign; the remainder goes to the beneficiary.
// Persisted fields are append-only after SchemaVersion.
type PayoutPreference struct {
	Depositor     uuid.UUID
	VaultID       uuid.UUID
	CampaignID    uuid.UUID
	Beneficiary   uuid.UUID
	CampaignBps   int64
	SchemaVersion int
}

// DefaultPreference is the split applied when a depositor never set one:
// 100% of the entitlement to the named campaign.
func DefaultPreference(depositor, vaultID, campaignID uuid.UUID) *PayoutPreference {
	return &PayoutPreference{
		Depositor:   depositor,
		VaultID:     vaultID,
		CampaignID:  campaignID,
		CampaignBps: BpsDenominator,
	}
}

// Validate ensures the preference adheres to domain rules.
func (p *PayoutPreference) Validate() error {
	if p.Depositor == uuid.Nil {
		return E(KindValidation, "preference depositor cannot be empty")
	}
	if p.CampaignID == uuid.Nil {
		return E(KindValidation, "preference campaign ID cannot be empty")
	}
	if p.CampaignBps < 0 || p.CampaignBps > BpsDenominator {
		return Ef(KindValidation, "campaign bps %d out of range [0, %d]", p.CampaignBps, BpsDenominator)
	}
	// Anything not routed to the campaign needs somewhere to go.
	if p.CampaignBps < BpsDenominator && p.Beneficiary == uuid.Nil {
		return E(KindValidation, "preference with campaign bps below 10000 must name a beneficiary")
	}
	return nil
}
