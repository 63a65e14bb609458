package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpoint_QuorumReached(t *testing.T) {
	cp := &Checkpoint{
		QuorumBps:          5000, // 50%
		TotalEligiblePower: decimal.NewFromInt(1000),
		VotesFor:           decimal.NewFromInt(300),
		VotesAgainst:       decimal.NewFromInt(100),
	}

	// Participation 40% < 50%.
	assert.False(t, cp.QuorumReached())
	assert.Equal(t, CheckpointStatusFailed, cp.Outcome())

	cp.VotesFor = decimal.NewFromInt(400)
	// Participation exactly 50%.
	assert.True(t, cp.QuorumReached())
	assert.Equal(t, CheckpointStatusPassed, cp.Outcome())
}

func TestCheckpoint_TieFails(t *testing.T) {
	cp := &Checkpoint{
		QuorumBps:          1000,
		TotalEligiblePower: decimal.NewFromInt(1000),
		VotesFor:           decimal.NewFromInt(250),
		VotesAgainst:       decimal.NewFromInt(250),
	}

	assert.True(t, cp.QuorumReached())
	assert.Equal(t, CheckpointStatusFailed, cp.Outcome(), "tie must fail")
}

func TestCheckpoint_ZeroEligiblePowerFails(t *testing.T) {
	cp := &Checkpoint{
		QuorumBps:          1,
		TotalEligiblePower: decimal.Zero,
	}
	assert.False(t, cp.QuorumReached())
	assert.Equal(t, CheckpointStatusFailed, cp.Outcome())
}

func TestCheckpoint_Transitions(t *testing.T) {
	cp := &Checkpoint{Status: CheckpointStatusPending}
	require.NoError(t, cp.Transition(CheckpointStatusPassed))

	err := cp.Transition(CheckpointStatusFailed)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindState), "finalized checkpoints are immutable")
}

func TestCheckpoint_Validate(t *testing.T) {
	cp := &Checkpoint{
		CampaignID: uuid.New(),
		Title:      "Milestone 1",
		QuorumBps:  20000,
	}
	err := cp.Validate()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestPreference_Validate(t *testing.T) {
	p := &PayoutPreference{
		Depositor:   uuid.New(),
		VaultID:     uuid.New(),
		CampaignID:  uuid.New(),
		CampaignBps: 8000,
	}
	// 20% routed away from the campaign but no beneficiary named.
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))

	p.Beneficiary = uuid.New()
	require.NoError(t, p.Validate())

	p.CampaignBps = 10001
	err = p.Validate()
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestDefaultPreference_AllToCampaign(t *testing.T) {
	p := DefaultPreference(uuid.New(), uuid.New(), uuid.New())
	assert.EqualValues(t, BpsDenominator, p.CampaignBps)
	require.NoError(t, p.Validate())
}
