package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaign_Lifecycle(t *testing.T) {
	c := &Campaign{
		ID:      uuid.New(),
		Name:    "Clean Water",
		Curator: uuid.New(),
		Status:  CampaignStatusSubmitted,
	}
	require.NoError(t, c.Validate())

	require.NoError(t, c.Transition(CampaignStatusApproved))
	require.NoError(t, c.Transition(CampaignStatusActive))
	require.NoError(t, c.Transition(CampaignStatusPaused))
	require.NoError(t, c.Transition(CampaignStatusActive))
	require.NoError(t, c.Transition(CampaignStatusCompleted))
	assert.True(t, c.IsTerminal())

	// Terminal states reject everything.
	err := c.Transition(CampaignStatusActive)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindState))
}

func TestCampaign_RejectsSkippedTransitions(t *testing.T) {
	c := &Campaign{Status: CampaignStatusSubmitted}

	// Submitted cannot jump straight to Active.
	err := c.Transition(CampaignStatusActive)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindState))
	assert.Equal(t, CampaignStatusSubmitted, c.Status, "failed transition must not mutate status")
}

func TestCampaign_Payable(t *testing.T) {
	c := &Campaign{Status: CampaignStatusSubmitted}
	assert.False(t, c.Payable())

	c.Status = CampaignStatusActive
	assert.True(t, c.Payable())

	c.Status = CampaignStatusPaused
	assert.True(t, c.Payable(), "halted campaigns escrow, they do not reject preferences")

	c.Status = CampaignStatusCancelled
	assert.False(t, c.Payable())
}

func TestCampaign_ValidateNegativeAmounts(t *testing.T) {
	c := &Campaign{
		Name:          "X",
		Curator:       uuid.New(),
		TotalReceived: decimal.NewFromInt(-1),
	}
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}
