package governance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donorvault/donorvault-backend/internal/adapter/repository/memory"
	"github.com/donorvault/donorvault-backend/internal/domain"
)

type fixture struct {
	store    *memory.Store
	svc      *Service
	campaign *domain.Campaign
	vaultID  uuid.UUID
	clock    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:   memory.NewStore(),
		vaultID: uuid.New(),
		clock:   time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(
		f.store.Campaigns, f.store.Checkpoints, f.store.Stakes, f.store.Positions,
		f.store, f.store, nil,
	).WithClock(func() time.Time { return f.clock })

	f.campaign = &domain.Campaign{
		ID: uuid.New(), Name: "solar-wells", Curator: uuid.New(),
		Status: domain.CampaignStatusActive, CreatedAt: f.clock,
	}
	require.NoError(t, f.store.Campaigns.Create(context.Background(), f.campaign))
	return f
}

func (f *fixture) stake(t *testing.T, supporter uuid.UUID, amount int64) {
	t.Helper()
	ctx := context.Background()
	seq, err := f.store.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.store.Stakes.Append(ctx, &domain.SupporterStake{
		ID: uuid.New(), Supporter: supporter, CampaignID: f.campaign.ID,
		VaultID: f.vaultID, Amount: decimal.NewFromInt(amount), Seq: seq, CreatedAt: f.clock,
	}))
}

func (f *fixture) schedule(t *testing.T, quorumBps int64) *domain.Checkpoint {
	t.Helper()
	cp, err := f.svc.ScheduleCheckpoint(context.Background(), ScheduleInput{
		Caller:       f.campaign.Curator,
		CampaignID:   f.campaign.ID,
		Title:        "phase one delivered",
		VoteDeadline: f.clock.Add(72 * time.Hour),
		QuorumBps:    quorumBps,
	})
	require.NoError(t, err)
	return cp
}

func TestScheduleCheckpoint_SnapshotsEligiblePower(t *testing.T) {
	f := newFixture(t)
	supporter := uuid.New()
	f.stake(t, supporter, 100)
	f.stake(t, uuid.New(), 50)

	cp := f.schedule(t, 3000)
	assert.True(t, cp.TotalEligiblePower.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, domain.CheckpointStatusPending, cp.Status)

	// Curator-only, active-only, future-deadline-only.
	_, err := f.svc.ScheduleCheckpoint(context.Background(), ScheduleInput{
		Caller: uuid.New(), CampaignID: f.campaign.ID, Title: "x",
		VoteDeadline: f.clock.Add(time.Hour), QuorumBps: 3000,
	})
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))

	_, err = f.svc.ScheduleCheckpoint(context.Background(), ScheduleInput{
		Caller: f.campaign.Curator, CampaignID: f.campaign.ID, Title: "x",
		VoteDeadline: f.clock.Add(-time.Hour), QuorumBps: 3000,
	})
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestVote_PowerFrozenAtSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	early := uuid.New()
	f.stake(t, early, 100)

	cp := f.schedule(t, 3000)

	// Stake added after the snapshot buys no power for this checkpoint.
	late := uuid.New()
	f.stake(t, late, 1000)
	err := f.svc.Vote(ctx, late, cp.ID, true)
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))

	require.NoError(t, f.svc.Vote(ctx, early, cp.ID, true))
	got, err := f.store.Checkpoints.GetByID(ctx, cp.ID)
	require.NoError(t, err)
	assert.True(t, got.VotesFor.Equal(decimal.NewFromInt(100)))
}

func TestVote_RevoteFlipsFrozenPower(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	supporter := uuid.New()
	f.stake(t, supporter, 100)
	cp := f.schedule(t, 3000)

	require.NoError(t, f.svc.Vote(ctx, supporter, cp.ID, true))

	// Unstaking after voting does not shrink the frozen power.
	seq, err := f.store.Next(ctx)
	require.NoError(t, err)
	require.NoError(t, f.store.Stakes.Append(ctx, &domain.SupporterStake{
		ID: uuid.New(), Supporter: supporter, CampaignID: f.campaign.ID,
		VaultID: f.vaultID, Amount: decimal.NewFromInt(-100), Seq: seq, CreatedAt: f.clock,
	}))

	require.NoError(t, f.svc.Vote(ctx, supporter, cp.ID, false))
	got, err := f.store.Checkpoints.GetByID(ctx, cp.ID)
	require.NoError(t, err)
	assert.True(t, got.VotesFor.IsZero())
	assert.True(t, got.VotesAgainst.Equal(decimal.NewFromInt(100)))

	// Re-casting the same side is a no-op.
	require.NoError(t, f.svc.Vote(ctx, supporter, cp.ID, false))
	got, err = f.store.Checkpoints.GetByID(ctx, cp.ID)
	require.NoError(t, err)
	assert.True(t, got.VotesAgainst.Equal(decimal.NewFromInt(100)))
}

func TestVote_DeadlineAndStatusGates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	supporter := uuid.New()
	f.stake(t, supporter, 100)
	cp := f.schedule(t, 3000)

	f.clock = cp.VoteDeadline
	err := f.svc.Vote(ctx, supporter, cp.ID, true)
	assert.True(t, domain.IsKind(err, domain.KindTemporal))

	_, err = f.svc.Finalize(ctx, uuid.New(), cp.ID)
	require.NoError(t, err)
	err = f.svc.Vote(ctx, supporter, cp.ID, true)
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestFinalize_PassRequiresQuorumAndMajority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	yes := uuid.New()
	no := uuid.New()
	f.stake(t, yes, 60)
	f.stake(t, no, 40)
	cp := f.schedule(t, 5000)

	require.NoError(t, f.svc.Vote(ctx, yes, cp.ID, true))
	require.NoError(t, f.svc.Vote(ctx, no, cp.ID, false))

	// Finalizing before the deadline is temporally blocked.
	_, err := f.svc.Finalize(ctx, uuid.New(), cp.ID)
	assert.True(t, domain.IsKind(err, domain.KindTemporal))

	f.clock = cp.VoteDeadline.Add(time.Second)
	finalized, err := f.svc.Finalize(ctx, uuid.New(), cp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckpointStatusPassed, finalized.Status)

	campaign, err := f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
	assert.False(t, campaign.PayoutsHalted)

	// A finalized checkpoint cannot be finalized again.
	_, err = f.svc.Finalize(ctx, uuid.New(), cp.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestFinalize_TieFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	yes := uuid.New()
	no := uuid.New()
	f.stake(t, yes, 50)
	f.stake(t, no, 50)
	cp := f.schedule(t, 5000)

	require.NoError(t, f.svc.Vote(ctx, yes, cp.ID, true))
	require.NoError(t, f.svc.Vote(ctx, no, cp.ID, false))

	f.clock = cp.VoteDeadline.Add(time.Second)
	finalized, err := f.svc.Finalize(ctx, uuid.New(), cp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckpointStatusFailed, finalized.Status)
}

func TestFinalize_MissedQuorumFailsDespiteUnanimity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	voter := uuid.New()
	f.stake(t, voter, 10)
	f.stake(t, uuid.New(), 90) // never votes
	cp := f.schedule(t, 5000)

	require.NoError(t, f.svc.Vote(ctx, voter, cp.ID, true))

	f.clock = cp.VoteDeadline.Add(time.Second)
	finalized, err := f.svc.Finalize(ctx, uuid.New(), cp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckpointStatusFailed, finalized.Status)
}

func TestFinalize_FailureHaltsCampaignAndUnlocksSupporters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	supporter := uuid.New()
	f.stake(t, supporter, 100)

	// The supporter's deposit is lock-designated to the campaign.
	pos := domain.NewPosition(supporter, f.vaultID)
	pos.Shares = decimal.NewFromInt(100)
	pos.LockTranches = []domain.LockTranche{{
		Shares:     decimal.NewFromInt(100),
		CampaignID: f.campaign.ID,
		UnlockTime: f.clock.Add(30 * 24 * time.Hour),
		CreatedAt:  f.clock,
	}}
	require.NoError(t, f.store.Positions.Save(ctx, pos))

	cp := f.schedule(t, 5000)
	require.NoError(t, f.svc.Vote(ctx, supporter, cp.ID, false))

	f.clock = cp.VoteDeadline.Add(time.Second)
	finalized, err := f.svc.Finalize(ctx, uuid.New(), cp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckpointStatusFailed, finalized.Status)

	campaign, err := f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
	assert.True(t, campaign.PayoutsHalted)

	got, err := f.store.Positions.Get(ctx, supporter, f.vaultID)
	require.NoError(t, err)
	assert.True(t, got.UnlockedShares(f.clock).Equal(decimal.NewFromInt(100)),
		"campaign tranches unlock on governance failure")
}

func TestClearHalt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	supporter := uuid.New()
	f.stake(t, supporter, 100)

	cp := f.schedule(t, 5000)
	require.NoError(t, f.svc.Vote(ctx, supporter, cp.ID, false))
	f.clock = cp.VoteDeadline.Add(time.Second)
	_, err := f.svc.Finalize(ctx, uuid.New(), cp.ID)
	require.NoError(t, err)

	// Curator only.
	err = f.svc.ClearHalt(ctx, uuid.New(), f.campaign.ID)
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))

	require.NoError(t, f.svc.ClearHalt(ctx, f.campaign.Curator, f.campaign.ID))
	campaign, err := f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.False(t, campaign.PayoutsHalted)
	// The halt is cleared without resuming the campaign.
	assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)

	err = f.svc.ClearHalt(ctx, f.campaign.Curator, f.campaign.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestZeroEligiblePowerNeverPasses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cp := f.schedule(t, 0)
	assert.True(t, cp.TotalEligiblePower.IsZero())

	f.clock = cp.VoteDeadline.Add(time.Second)
	finalized, err := f.svc.Finalize(ctx, uuid.New(), cp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckpointStatusFailed, finalized.Status)
}
