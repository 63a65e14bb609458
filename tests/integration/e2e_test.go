package integration

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donorvault/donorvault-backend/internal/adapter/recorder"
	"github.com/donorvault/donorvault-backend/internal/adapter/repository/memory"
	"github.com/donorvault/donorvault-backend/internal/adapter/strategy"
	"github.com/donorvault/donorvault-backend/internal/domain"
	"github.com/donorvault/donorvault-backend/internal/usecase/campaign"
	"github.com/donorvault/donorvault-backend/internal/usecase/governance"
	"github.com/donorvault/donorvault-backend/internal/usecase/payout"
	"github.com/donorvault/donorvault-backend/internal/usecase/vault"
)

// engine wires every service over the in-memory store with one shared,
// controllable clock.
type engine struct {
	store      *memory.Store
	registry   *strategy.Registry
	vaults     *vault.Service
	payouts    *payout.Service
	campaigns  *campaign.Service
	governance *governance.Service
	vault      *domain.Vault
	adapter    *strategy.FixedRateAdapter

	clock time.Time
}

func (e *engine) now() time.Time { return e.clock }

func (e *engine) advance(d time.Duration) { e.clock = e.clock.Add(d) }

func newEngine(t *testing.T, rec domain.EventRecorder) *engine {
	t.Helper()

	e := &engine{
		store:    memory.NewStore(),
		registry: strategy.NewRegistry(),
		clock:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	e.payouts = payout.NewService(
		e.store.Vaults, e.store.Positions, e.store.Preferences, e.store.Campaigns,
		e.store.Distributions, e.store.Payouts, e.store, e.store, rec,
	).WithClock(e.now)
	e.vaults = vault.NewService(
		e.store.Vaults, e.store.Positions, e.store.Campaigns, e.store.Stakes,
		e.registry, e.store, e.store, e.payouts, rec,
	).WithClock(e.now)
	e.campaigns = campaign.NewService(
		e.store.Campaigns, e.store.Stakes, e.store.Checkpoints, e.store.Positions,
		e.store, e.store, rec,
	).WithClock(e.now)
	e.governance = governance.NewService(
		e.store.Campaigns, e.store.Checkpoints, e.store.Stakes, e.store.Positions,
		e.store, e.store, rec,
	).WithClock(e.now)

	e.vault = &domain.Vault{
		ID:                uuid.New(),
		Name:              "main",
		Asset:             "USDC",
		CashBalance:       decimal.Zero,
		SharesOutstanding: decimal.Zero,
		CashBufferBps:     100,
		SlippageBps:       50,
		MaxLossBps:        50,
		ProtocolFeeBps:    200,
		Mode:              domain.VaultModeNormal,
		GracePeriod:       24 * time.Hour,
		MinHoldPeriod:     7 * 24 * time.Hour,
		CreatedAt:         e.clock,
	}
	require.NoError(t, e.store.Vaults.Create(context.Background(), e.vault))

	e.adapter = strategy.NewFixedRateAdapter(e.vault.ID, e.vault.Asset, 100, time.Hour).
		WithClock(e.now)
	e.registry.Register(e.adapter)
	require.NoError(t, e.vaults.SetAdapter(context.Background(), uuid.New(), e.vault.ID, e.adapter.ID()))

	return e
}

// TestEngineLifecycle walks the whole system end to end: campaign setup,
// plain and designated deposits, yield harvest and distribution, per-donor
// claims with preference splits, checkpoint vote and finalization. Amounts
// are checked exactly at every step.
func TestEngineLifecycle(t *testing.T) {
	ctx := context.Background()

	eventsPath := filepath.Join(t.TempDir(), "events.db")
	rec, err := recorder.NewSQLiteRecorder(eventsPath)
	require.NoError(t, err)
	defer rec.Close()

	e := newEngine(t, rec)

	alice := uuid.New()
	aliceBeneficiary := uuid.New()
	bob := uuid.New()
	curator := uuid.New()

	// Campaign lifecycle: submit, approve, curator activates.
	c, err := e.campaigns.Submit(ctx, campaign.SubmitInput{
		Curator:       curator,
		Name:          "clean-water",
		FundingTarget: decimal.NewFromInt(100000),
		StakeAmount:   decimal.Zero,
	})
	require.NoError(t, err)
	require.NoError(t, e.campaigns.Approve(ctx, curator, c.ID))
	require.NoError(t, e.campaigns.Activate(ctx, curator, c.ID))

	// Alice deposits 1000 unrestricted: 1% stays as cash, the rest is
	// invested through the active strategy.
	shares, err := e.vaults.Deposit(ctx, vault.DepositInput{
		Caller: alice, VaultID: e.vault.ID,
		Assets: decimal.NewFromInt(1000), Receiver: alice,
	})
	require.NoError(t, err)
	assert.True(t, shares.Equal(decimal.NewFromInt(1000)), "shares = %s", shares)

	// Bob deposits 500 designated to the campaign: shares are minted 1:1
	// (no profit yet), locked for the holding period and staked.
	shares, err = e.vaults.Deposit(ctx, vault.DepositInput{
		Caller: bob, VaultID: e.vault.ID,
		Assets: decimal.NewFromInt(500), Receiver: bob,
		CampaignID: &c.ID,
	})
	require.NoError(t, err)
	assert.True(t, shares.Equal(decimal.NewFromInt(500)), "shares = %s", shares)

	v, err := e.store.Vaults.GetByID(ctx, e.vault.ID)
	require.NoError(t, err)
	assert.True(t, v.CashBalance.Equal(decimal.NewFromInt(15)), "cash = %s", v.CashBalance)
	assert.True(t, v.SharesOutstanding.Equal(decimal.NewFromInt(1500)))

	staked, err := e.store.Stakes.Staked(ctx, bob, c.ID)
	require.NoError(t, err)
	assert.True(t, staked.Equal(decimal.NewFromInt(500)))

	// Payout preferences: alice routes 80% to the campaign and 20% to her
	// beneficiary; bob routes everything to the campaign.
	require.NoError(t, e.payouts.SetPreference(ctx, payout.SetPreferenceInput{
		Caller: alice, VaultID: e.vault.ID, CampaignID: c.ID,
		Beneficiary: aliceBeneficiary, CampaignBps: 8000,
	}))
	require.NoError(t, e.payouts.SetPreference(ctx, payout.SetPreferenceInput{
		Caller: bob, VaultID: e.vault.ID, CampaignID: c.ID,
		CampaignBps: 10000,
	}))

	// One accrual interval passes: the strategy earned 1% on the invested
	// 1485, floored to 14. The 2% protocol fee floors to zero here.
	e.advance(time.Hour)
	profit, loss, err := e.vaults.Harvest(ctx, uuid.New(), e.vault.ID)
	require.NoError(t, err)
	assert.True(t, profit.Equal(decimal.NewFromInt(14)), "profit = %s", profit)
	assert.True(t, loss.IsZero())

	dists, err := e.store.Distributions.ListByVault(ctx, e.vault.ID)
	require.NoError(t, err)
	require.Len(t, dists, 1)
	dist := dists[0]
	assert.True(t, dist.Amount.Equal(decimal.NewFromInt(14)))
	assert.True(t, dist.TotalShares.Equal(decimal.NewFromInt(1500)))

	// Alice claims 1000/1500 of 14 = 9, split 7 campaign / 2 beneficiary.
	aliceClaim, err := e.payouts.Claim(ctx, alice, dist.ID)
	require.NoError(t, err)
	assert.True(t, aliceClaim.Entitlement.Equal(decimal.NewFromInt(9)))
	assert.True(t, aliceClaim.CampaignAmount.Equal(decimal.NewFromInt(7)))
	assert.True(t, aliceClaim.BeneficiaryAmount.Equal(decimal.NewFromInt(2)))

	// Bob claims 500/1500 of 14 = 4, all to the campaign; his claim is the
	// final one, so the rounding remainder of 1 is swept to the fee bucket.
	bobClaim, err := e.payouts.Claim(ctx, bob, dist.ID)
	require.NoError(t, err)
	assert.True(t, bobClaim.Entitlement.Equal(decimal.NewFromInt(4)), "entitlement = %s", bobClaim.Entitlement)
	assert.True(t, bobClaim.CampaignAmount.Equal(decimal.NewFromInt(4)))

	c, err = e.campaigns.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, c.TotalReceived.Equal(decimal.NewFromInt(11)), "received = %s", c.TotalReceived)

	// Every unit of the distribution is accounted for across payout entries.
	entries, err := e.store.Payouts.ListByDistribution(ctx, dist.ID)
	require.NoError(t, err)
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(14)), "entries total = %s", total)

	// Checkpoint: the curator schedules a milestone vote; bob's 500 staked
	// shares are the whole eligible power.
	cp, err := e.governance.ScheduleCheckpoint(ctx, governance.ScheduleInput{
		Caller:       curator,
		CampaignID:   c.ID,
		Title:        "well drilled",
		VoteDeadline: e.clock.Add(72 * time.Hour),
		QuorumBps:    5000,
	})
	require.NoError(t, err)
	assert.True(t, cp.TotalEligiblePower.Equal(decimal.NewFromInt(500)))

	require.NoError(t, e.governance.Vote(ctx, bob, cp.ID, true))

	e.advance(73 * time.Hour)
	cp, err = e.governance.Finalize(ctx, curator, cp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckpointStatusPassed, cp.Status)

	// A passed checkpoint leaves the campaign running and payouts open.
	c, err = e.campaigns.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusActive, c.Status)
	assert.False(t, c.PayoutsHalted)

	// The whole scenario left an audit trail in the sqlite event log.
	events, err := sql.Open("sqlite", eventsPath)
	require.NoError(t, err)
	defer events.Close()
	var count int
	require.NoError(t, events.QueryRow("SELECT COUNT(*) FROM events").Scan(&count))
	assert.Greater(t, count, 5, "expected deposits, harvest, claims and votes in the event log")
}
