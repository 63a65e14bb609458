package payout

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
	vault    *domain.Vault
	campaign *domain.Campaign
	clock    time.Time
}

// newFixture sets up a vault with 10 shares outstanding, an active campaign,
// and two depositors holding 7 and 3 shares as of the current sequence.
func newFixture(t *testing.T) (*fixture, uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		store: memory.NewStore(),
		clock: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(
		f.store.Vaults, f.store.Positions, f.store.Preferences, f.store.Campaigns,
		f.store.Distributions, f.store.Payouts, f.store, f.store, nil,
	).WithClock(func() time.Time { return f.clock })

	f.vault = &domain.Vault{
		ID:                uuid.New(),
		Name:              "core-usd",
		Asset:             "USD",
		SharesOutstanding: decimal.NewFromInt(10),
		ProtocolFeeBps:    200,
		Mode:              domain.VaultModeNormal,
		CreatedAt:         f.clock,
	}
	require.NoError(t, f.store.Vaults.Create(ctx, f.vault))

	f.campaign = &domain.Campaign{
		ID: uuid.New(), Name: "clean-water", Curator: uuid.New(),
		Status: domain.CampaignStatusActive, CreatedAt: f.clock,
	}
	require.NoError(t, f.store.Campaigns.Create(ctx, f.campaign))

	alice := uuid.New()
	bob := uuid.New()
	for _, holder := range []struct {
		id     uuid.UUID
		shares int64
	}{{alice, 7}, {bob, 3}} {
		seq, err := f.store.Next(ctx)
		require.NoError(t, err)
		require.NoError(t, f.store.Positions.AppendSnapshot(ctx, &domain.ShareSnapshot{
			Depositor: holder.id,
			VaultID:   f.vault.ID,
			Seq:       seq,
			Shares:    decimal.NewFromInt(holder.shares),
		}))
	}
	return f, alice, bob
}

func (f *fixture) setPreference(t *testing.T, depositor uuid.UUID, beneficiary uuid.UUID, campaignBps int64) {
	t.Helper()
	require.NoError(t, f.svc.SetPreference(context.Background(), SetPreferenceInput{
		Caller:      depositor,
		VaultID:     f.vault.ID,
		CampaignID:  f.campaign.ID,
		Beneficiary: beneficiary,
		CampaignBps: campaignBps,
	}))
}

func (f *fixture) distribute(t *testing.T, gross int64) *domain.Distribution {
	t.Helper()
	dist, err := f.svc.Distribute(context.Background(), f.vault, decimal.NewFromInt(gross))
	require.NoError(t, err)
	return dist
}

func payoutTotal(t *testing.T, f *fixture, distributionID uuid.UUID, kind domain.PayoutKind) decimal.Decimal {
	t.Helper()
	entries, err := f.store.Payouts.ListByDistribution(context.Background(), distributionID)
	require.NoError(t, err)
	total := decimal.Zero
	for _, e := range entries {
		if e.Kind == kind {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func TestDistribute_TakesFeeOffTheTop(t *testing.T) {
	f, _, _ := newFixture(t)

	dist := f.distribute(t, 50)

	// 200 bps of 50 floors to 1; the claimable net absorbs the rounding.
	assert.True(t, dist.Fee.Equal(decimal.NewFromInt(1)), "fee %s", dist.Fee)
	assert.True(t, dist.Amount.Equal(decimal.NewFromInt(49)))
	assert.True(t, dist.TotalShares.Equal(decimal.NewFromInt(10)))
	assert.EqualValues(t, 2, dist.SnapshotSeq)

	fee := payoutTotal(t, f, dist.ID, domain.PayoutKindFee)
	assert.True(t, fee.Equal(decimal.NewFromInt(1)))
}

func TestClaim_SplitsAndConservesGrossExactly(t *testing.T) {
	f, alice, bob := newFixture(t)
	aliceBeneficiary := uuid.New()
	f.setPreference(t, alice, aliceBeneficiary, 8000)
	f.setPreference(t, bob, uuid.Nil, 10000)

	dist := f.distribute(t, 50)

	// Alice holds 7 of 10 shares: floor(49 * 7/10) = 34, split 8000 bps into
	// 27 campaign / 7 beneficiary.
	res, err := f.svc.Claim(context.Background(), alice, dist.ID)
	require.NoError(t, err)
	assert.True(t, res.Entitlement.Equal(decimal.NewFromInt(34)))
	assert.True(t, res.CampaignAmount.Equal(decimal.NewFromInt(27)))
	assert.True(t, res.BeneficiaryAmount.Equal(decimal.NewFromInt(7)))
	assert.False(t, res.Escrowed)

	// Bob settles last: floor(49 * 3/10) = 14, and his claim sweeps the
	// remaining rounding unit into the fee bucket.
	res, err = f.svc.Claim(context.Background(), bob, dist.ID)
	require.NoError(t, err)
	assert.True(t, res.Entitlement.Equal(decimal.NewFromInt(14)))
	assert.True(t, res.CampaignAmount.Equal(decimal.NewFromInt(14)))

	campaign, err := f.store.Campaigns.GetByID(context.Background(), f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, campaign.TotalReceived.Equal(decimal.NewFromInt(41)))

	// campaign 41 + beneficiary 7 + fee 1 + dust 1 == gross 50
	campaignPaid := payoutTotal(t, f, dist.ID, domain.PayoutKindCampaign)
	beneficiaryPaid := payoutTotal(t, f, dist.ID, domain.PayoutKindBeneficiary)
	feePaid := payoutTotal(t, f, dist.ID, domain.PayoutKindFee)
	total := campaignPaid.Add(beneficiaryPaid).Add(feePaid)
	assert.True(t, total.Equal(decimal.NewFromInt(50)), "conserved %s of 50", total)

	updated, err := f.store.Distributions.GetByID(context.Background(), dist.ID)
	require.NoError(t, err)
	assert.True(t, updated.FullyClaimed())
	assert.True(t, updated.Dust().IsZero())
}

func TestClaim_DoubleClaimRejected(t *testing.T) {
	f, alice, _ := newFixture(t)
	f.setPreference(t, alice, uuid.Nil, 10000)
	dist := f.distribute(t, 50)

	_, err := f.svc.Claim(context.Background(), alice, dist.ID)
	require.NoError(t, err)

	_, err = f.svc.Claim(context.Background(), alice, dist.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestClaim_SharesAreSnapshotScoped(t *testing.T) {
	f, alice, _ := newFixture(t)
	f.setPreference(t, alice, uuid.Nil, 10000)
	dist := f.distribute(t, 50)

	// A depositor who buys in after the snapshot has no entitlement.
	latecomer := uuid.New()
	seq, err := f.store.Next(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.store.Positions.AppendSnapshot(context.Background(), &domain.ShareSnapshot{
		Depositor: latecomer, VaultID: f.vault.ID, Seq: seq, Shares: decimal.NewFromInt(100),
	}))

	_, err = f.svc.Claim(context.Background(), latecomer, dist.ID)
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	// Alice claims against the snapshot even though she exited afterwards.
	seq, err = f.store.Next(context.Background())
	require.NoError(t, err)
	require.NoError(t, f.store.Positions.AppendSnapshot(context.Background(), &domain.ShareSnapshot{
		Depositor: alice, VaultID: f.vault.ID, Seq: seq, Shares: decimal.Zero,
	}))
	res, err := f.svc.Claim(context.Background(), alice, dist.ID)
	require.NoError(t, err)
	assert.True(t, res.Entitlement.Equal(decimal.NewFromInt(34)))
}

func TestClaim_WithoutPreferenceRejected(t *testing.T) {
	f, alice, _ := newFixture(t)
	dist := f.distribute(t, 50)

	_, err := f.svc.Claim(context.Background(), alice, dist.ID)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestClaim_HaltedCampaignEscrows(t *testing.T) {
	f, alice, _ := newFixture(t)
	ctx := context.Background()
	f.setPreference(t, alice, uuid.Nil, 10000)

	f.campaign.PayoutsHalted = true
	require.NoError(t, f.store.Campaigns.Update(ctx, f.campaign))

	dist := f.distribute(t, 50)
	res, err := f.svc.Claim(ctx, alice, dist.ID)
	require.NoError(t, err)
	assert.True(t, res.Escrowed)
	assert.True(t, res.CampaignAmount.Equal(decimal.NewFromInt(34)))

	bucket, err := f.store.Payouts.GetEscrow(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, bucket.Amount.Equal(decimal.NewFromInt(34)))

	// The campaign received nothing while halted.
	campaign, err := f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, campaign.TotalReceived.IsZero())

	// Release is blocked until the halt clears.
	_, err = f.svc.ReleaseEscrow(ctx, uuid.New(), f.campaign.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))

	campaign.PayoutsHalted = false
	require.NoError(t, f.store.Campaigns.Update(ctx, campaign))

	released, err := f.svc.ReleaseEscrow(ctx, uuid.New(), f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, released.Equal(decimal.NewFromInt(34)))

	campaign, err = f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, campaign.TotalReceived.Equal(decimal.NewFromInt(34)))

	bucket, err = f.store.Payouts.GetEscrow(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, bucket.Amount.IsZero())
}

func TestRefundEscrow_ReturnsContributionsExactly(t *testing.T) {
	f, alice, bob := newFixture(t)
	ctx := context.Background()
	f.setPreference(t, alice, uuid.Nil, 10000)
	f.setPreference(t, bob, uuid.Nil, 10000)

	f.campaign.PayoutsHalted = true
	require.NoError(t, f.store.Campaigns.Update(ctx, f.campaign))

	dist := f.distribute(t, 50)
	_, err := f.svc.Claim(ctx, alice, dist.ID)
	require.NoError(t, err)
	_, err = f.svc.Claim(ctx, bob, dist.ID)
	require.NoError(t, err)

	// Refunds require a cancelled campaign.
	_, err = f.svc.RefundEscrow(ctx, uuid.New(), f.campaign.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))

	campaign, err := f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	require.NoError(t, campaign.Transition(domain.CampaignStatusCancelled))
	require.NoError(t, f.store.Campaigns.Update(ctx, campaign))

	refunded, err := f.svc.RefundEscrow(ctx, uuid.New(), f.campaign.ID)
	require.NoError(t, err)
	// Alice escrowed 34, Bob 14.
	assert.True(t, refunded.Equal(decimal.NewFromInt(48)))

	bucket, err := f.store.Payouts.GetEscrow(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.True(t, bucket.Amount.IsZero())
}

func TestClaim_TerminalCampaignFallsBackToBeneficiary(t *testing.T) {
	f, alice, bob := newFixture(t)
	ctx := context.Background()
	aliceBeneficiary := uuid.New()
	f.setPreference(t, alice, aliceBeneficiary, 8000)
	f.setPreference(t, bob, uuid.Nil, 10000)

	dist := f.distribute(t, 50)

	campaign, err := f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	require.NoError(t, campaign.Transition(domain.CampaignStatusCompleted))
	require.NoError(t, f.store.Campaigns.Update(ctx, campaign))

	// Alice's campaign portion redirects to her beneficiary: all 34.
	res, err := f.svc.Claim(ctx, alice, dist.ID)
	require.NoError(t, err)
	assert.True(t, res.CampaignAmount.IsZero())
	assert.True(t, res.BeneficiaryAmount.Equal(decimal.NewFromInt(34)))

	// Bob named no beneficiary, so his 14 falls to the fee bucket.
	res, err = f.svc.Claim(ctx, bob, dist.ID)
	require.NoError(t, err)
	assert.True(t, res.CampaignAmount.IsZero())
	assert.True(t, res.BeneficiaryAmount.IsZero())

	feePaid := payoutTotal(t, f, dist.ID, domain.PayoutKindFee)
	// distribution fee 1 + bob's 14 + dust 1
	assert.True(t, feePaid.Equal(decimal.NewFromInt(16)), "fee %s", feePaid)
}

func TestClaim_AutoCompletesCampaignAtFundingTarget(t *testing.T) {
	f, alice, _ := newFixture(t)
	ctx := context.Background()
	f.setPreference(t, alice, uuid.Nil, 10000)

	f.campaign.FundingTarget = decimal.NewFromInt(30)
	require.NoError(t, f.store.Campaigns.Update(ctx, f.campaign))

	dist := f.distribute(t, 50)
	res, err := f.svc.Claim(ctx, alice, dist.ID)
	require.NoError(t, err)
	assert.True(t, res.CampaignAmount.Equal(decimal.NewFromInt(34)))

	campaign, err := f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusCompleted, campaign.Status)
}

func TestClaimAll_SettlesEveryOpenDistribution(t *testing.T) {
	f, alice, _ := newFixture(t)
	ctx := context.Background()
	f.setPreference(t, alice, uuid.Nil, 10000)

	first := f.distribute(t, 50)
	f.distribute(t, 100)

	_, err := f.svc.Claim(ctx, alice, first.ID)
	require.NoError(t, err)

	results, err := f.svc.ClaimAll(ctx, alice, f.vault.ID)
	require.NoError(t, err)
	require.Len(t, results, 1) // only the second is still open
	// floor(98 * 7/10) = 68
	assert.True(t, results[0].Entitlement.Equal(decimal.NewFromInt(68)))
}

func TestPendingEntitlement(t *testing.T) {
	f, alice, _ := newFixture(t)
	ctx := context.Background()
	f.setPreference(t, alice, uuid.Nil, 10000)

	f.distribute(t, 50)
	f.distribute(t, 100)

	pending, err := f.svc.PendingEntitlement(ctx, alice, f.vault.ID)
	require.NoError(t, err)
	// floor(49 * 7/10) + floor(98 * 7/10) = 34 + 68
	assert.True(t, pending.Equal(decimal.NewFromInt(102)), "pending %s", pending)

	results, err := f.svc.ClaimAll(ctx, alice, f.vault.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)

	pending, err = f.svc.PendingEntitlement(ctx, alice, f.vault.ID)
	require.NoError(t, err)
	assert.True(t, pending.IsZero())
}

func TestSetPreference_Validation(t *testing.T) {
	f, alice, _ := newFixture(t)
	ctx := context.Background()

	// A partial split with no beneficiary has nowhere to send the rest.
	err := f.svc.SetPreference(ctx, SetPreferenceInput{
		Caller: alice, VaultID: f.vault.ID, CampaignID: f.campaign.ID, CampaignBps: 5000,
	})
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	err = f.svc.SetPreference(ctx, SetPreferenceInput{
		Caller: alice, VaultID: f.vault.ID, CampaignID: f.campaign.ID, CampaignBps: 10001,
	})
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	// Terminal campaigns no longer accept payout preferences.
	campaign, err := f.store.Campaigns.GetByID(ctx, f.campaign.ID)
	require.NoError(t, err)
	require.NoError(t, campaign.Transition(domain.CampaignStatusCancelled))
	require.NoError(t, f.store.Campaigns.Update(ctx, campaign))

	err = f.svc.SetPreference(ctx, SetPreferenceInput{
		Caller: alice, VaultID: f.vault.ID, CampaignID: f.campaign.ID, CampaignBps: 10000,
	})
	assert.True(t, domain.IsKind(err, domain.KindState))

	_, err = f.svc.GetPreference(ctx, alice, f.vault.ID)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
