package campaign

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

func newService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewService(
		store.Campaigns, store.Stakes, store.Checkpoints, store.Positions,
		store, store, nil,
	).WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	})
	return svc, store
}

func submitActive(t *testing.T, svc *Service, curator uuid.UUID) *domain.Campaign {
	t.Helper()
	ctx := context.Background()
	c, err := svc.Submit(ctx, SubmitInput{Curator: curator, Name: "reef-restore"})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, curator, c.ID))
	require.NoError(t, svc.Activate(ctx, curator, c.ID))
	return c
}

func TestLifecycle(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	curator := uuid.New()

	c, err := svc.Submit(ctx, SubmitInput{
		Curator:       curator,
		Name:          "reef-restore",
		FundingTarget: decimal.NewFromInt(100000),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusSubmitted, c.Status)

	// Activation requires approval first.
	err = svc.Activate(ctx, curator, c.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))

	require.NoError(t, svc.Approve(ctx, curator, c.ID))

	// Only the curator may activate.
	err = svc.Activate(ctx, uuid.New(), c.ID)
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))
	require.NoError(t, svc.Activate(ctx, curator, c.ID))

	require.NoError(t, svc.Pause(ctx, curator, c.ID))
	got, err := store.Campaigns.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusPaused, got.Status)
	assert.True(t, got.PayoutsHalted)

	require.NoError(t, svc.Resume(ctx, curator, c.ID))
	got, err = store.Campaigns.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusActive, got.Status)
	assert.False(t, got.PayoutsHalted)

	require.NoError(t, svc.Complete(ctx, curator, c.ID))

	// Terminal states accept no further transitions.
	err = svc.Cancel(ctx, curator, c.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestSubmit_Validation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitInput{Curator: uuid.New()})
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = svc.Submit(ctx, SubmitInput{Name: "no-curator"})
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestStake_ActiveCampaignOnly(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	curator := uuid.New()
	supporter := uuid.New()
	vaultID := uuid.New()

	c, err := svc.Submit(ctx, SubmitInput{Curator: curator, Name: "pending"})
	require.NoError(t, err)
	err = svc.Stake(ctx, supporter, c.ID, vaultID, decimal.NewFromInt(100))
	assert.True(t, domain.IsKind(err, domain.KindState))

	active := submitActive(t, svc, curator)
	require.NoError(t, svc.Stake(ctx, supporter, active.ID, vaultID, decimal.NewFromInt(100)))

	staked, err := store.Stakes.Staked(ctx, supporter, active.ID)
	require.NoError(t, err)
	assert.True(t, staked.Equal(decimal.NewFromInt(100)))
}

func TestUnstake_BalanceAndPendingCheckpointChecks(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	curator := uuid.New()
	supporter := uuid.New()
	vaultID := uuid.New()
	c := submitActive(t, svc, curator)
	require.NoError(t, svc.Stake(ctx, supporter, c.ID, vaultID, decimal.NewFromInt(100)))

	err := svc.Unstake(ctx, supporter, c.ID, vaultID, decimal.NewFromInt(150))
	assert.True(t, domain.IsKind(err, domain.KindIntegrity))

	// A pending checkpoint freezes exits.
	require.NoError(t, store.Checkpoints.Create(ctx, &domain.Checkpoint{
		ID: uuid.New(), CampaignID: c.ID, Status: domain.CheckpointStatusPending,
	}))
	err = svc.Unstake(ctx, supporter, c.ID, vaultID, decimal.NewFromInt(50))
	assert.True(t, domain.IsKind(err, domain.KindState))

	// A halted campaign lets supporters leave even mid-vote.
	got, err := store.Campaigns.GetByID(ctx, c.ID)
	require.NoError(t, err)
	got.PayoutsHalted = true
	require.NoError(t, store.Campaigns.Update(ctx, got))

	require.NoError(t, svc.Unstake(ctx, supporter, c.ID, vaultID, decimal.NewFromInt(50)))
	staked, err := store.Stakes.Staked(ctx, supporter, c.ID)
	require.NoError(t, err)
	assert.True(t, staked.Equal(decimal.NewFromInt(50)))
}

func TestList_FiltersByStatus(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	curator := uuid.New()
	submitActive(t, svc, curator)
	_, err := svc.Submit(ctx, SubmitInput{Curator: curator, Name: "still-submitted"})
	require.NoError(t, err)

	active, err := svc.List(ctx, domain.CampaignStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
