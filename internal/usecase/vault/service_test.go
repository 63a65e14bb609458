package vault

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donorvault/donorvault-backend/internal/adapter/repository/memory"
	"github.com/donorvault/donorvault-backend/internal/adapter/strategy"
	"github.com/donorvault/donorvault-backend/internal/domain"
)

type mockDistributor struct {
	mock.Mock
}

func (m *mockDistributor) Distribute(ctx context.Context, v *domain.Vault, gross decimal.Decimal) (*domain.Distribution, error) {
	args := m.Called(ctx, v, gross)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Distribution), args.Error(1)
}

// mockAdapter is a scriptable strategy for failure-path tests. The happy
// paths use the real fixed-rate adapter instead.
type mockAdapter struct {
	mock.Mock
	id      uuid.UUID
	vaultID uuid.UUID
	asset   string
}

func newMockAdapter(vaultID uuid.UUID, asset string) *mockAdapter {
	return &mockAdapter{id: uuid.New(), vaultID: vaultID, asset: asset}
}

func (m *mockAdapter) ID() uuid.UUID      { return m.id }
func (m *mockAdapter) Asset() string      { return m.asset }
func (m *mockAdapter) VaultID() uuid.UUID { return m.vaultID }

func (m *mockAdapter) TotalAssets(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAdapter) Invest(ctx context.Context, callerVault uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, callerVault, amount)
	return args.Error(0)
}

func (m *mockAdapter) Divest(ctx context.Context, callerVault uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, callerVault, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockAdapter) Harvest(ctx context.Context, callerVault uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, callerVault)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *mockAdapter) EmergencyWithdraw(ctx context.Context, callerVault uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, callerVault)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type fixture struct {
	store    *memory.Store
	registry *strategy.Registry
	dist     *mockDistributor
	svc      *Service
	vault    *domain.Vault
	clock    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    memory.NewStore(),
		registry: strategy.NewRegistry(),
		dist:     &mockDistributor{},
		clock:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(
		f.store.Vaults, f.store.Positions, f.store.Campaigns, f.store.Stakes,
		f.registry, f.store, f.store, f.dist, nil,
	).WithClock(func() time.Time { return f.clock })

	f.vault = &domain.Vault{
		ID:                uuid.New(),
		Name:              "core-usd",
		Asset:             "USD",
		CashBalance:       decimal.Zero,
		SharesOutstanding: decimal.Zero,
		CashBufferBps:     100,
		SlippageBps:       50,
		MaxLossBps:        50,
		ProtocolFeeBps:    200,
		Mode:              domain.VaultModeNormal,
		GracePeriod:       24 * time.Hour,
		MinHoldPeriod:     7 * 24 * time.Hour,
		CreatedAt:         f.clock,
	}
	require.NoError(t, f.store.Vaults.Create(context.Background(), f.vault))
	return f
}

// bindFixedRate registers a zero-rate strategy and activates it on the vault.
func (f *fixture) bindFixedRate(t *testing.T, rateBps int64) *strategy.FixedRateAdapter {
	t.Helper()
	adapter := strategy.NewFixedRateAdapter(f.vault.ID, f.vault.Asset, rateBps, time.Hour).
		WithClock(func() time.Time { return f.clock })
	f.registry.Register(adapter)
	id := adapter.ID()
	f.vault.ActiveAdapterID = &id
	require.NoError(t, f.store.Vaults.Update(context.Background(), f.vault))
	return adapter
}

func (f *fixture) bindMock(t *testing.T, adapter *mockAdapter) {
	t.Helper()
	f.registry.Register(adapter)
	id := adapter.ID()
	f.vault.ActiveAdapterID = &id
	require.NoError(t, f.store.Vaults.Update(context.Background(), f.vault))
}

func (f *fixture) getVault(t *testing.T) *domain.Vault {
	t.Helper()
	v, err := f.store.Vaults.GetByID(context.Background(), f.vault.ID)
	require.NoError(t, err)
	return v
}

func TestDeposit_MintsSharesAndKeepsCashBuffer(t *testing.T) {
	f := newFixture(t)
	adapter := f.bindFixedRate(t, 0)
	depositor := uuid.New()

	shares, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller:   depositor,
		VaultID:  f.vault.ID,
		Assets:   decimal.NewFromInt(1000),
		Receiver: depositor,
	})

	require.NoError(t, err)
	assert.True(t, shares.Equal(decimal.NewFromInt(1000)), "got %s shares", shares)

	v := f.getVault(t)
	// 1% buffer on 1000 total assets: 10 stays as cash, 990 invested.
	assert.True(t, v.CashBalance.Equal(decimal.NewFromInt(10)), "cash %s", v.CashBalance)
	invested, err := adapter.TotalAssets(context.Background())
	require.NoError(t, err)
	assert.True(t, invested.Equal(decimal.NewFromInt(990)), "invested %s", invested)

	pos, err := f.store.Positions.Get(context.Background(), depositor, f.vault.ID)
	require.NoError(t, err)
	assert.True(t, pos.Shares.Equal(decimal.NewFromInt(1000)))
}

func TestMint_ExactShareCountAtDepressedPrice(t *testing.T) {
	f := newFixture(t)
	// A realized loss leaves the share price well below one asset per share.
	f.vault.CashBalance = decimal.NewFromInt(10)
	f.vault.SharesOutstanding = decimal.NewFromInt(1000)
	require.NoError(t, f.store.Vaults.Update(context.Background(), f.vault))

	minter := uuid.New()
	assets, err := f.svc.Mint(context.Background(), DepositInput{
		Caller: minter, VaultID: f.vault.ID, Receiver: minter,
	}, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, assets.Equal(decimal.NewFromInt(1)), "charged %s", assets)

	// Exactly the requested count is minted, not a count re-derived from
	// the ceil-rounded assets charged for it.
	pos, err := f.store.Positions.Get(context.Background(), minter, f.vault.ID)
	require.NoError(t, err)
	assert.True(t, pos.Shares.Equal(decimal.NewFromInt(1)), "minted %s", pos.Shares)
	v := f.getVault(t)
	assert.True(t, v.SharesOutstanding.Equal(decimal.NewFromInt(1001)))
	assert.True(t, v.CashBalance.Equal(decimal.NewFromInt(11)))
}

func TestDeposit_Validation(t *testing.T) {
	f := newFixture(t)
	depositor := uuid.New()

	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.Zero, Receiver: depositor,
	})
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = f.svc.Deposit(context.Background(), DepositInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(100), Receiver: uuid.Nil,
	})
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestDeposit_RejectedDuringShutdown(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.EmergencyShutdown(context.Background(), uuid.New(), f.vault.ID))

	depositor := uuid.New()
	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(100), Receiver: depositor,
	})
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestDeposit_DonationCannotZeroOutShares(t *testing.T) {
	f := newFixture(t)
	attacker := uuid.New()
	victim := uuid.New()

	// Attacker seeds a dust deposit, then donates a large amount of cash
	// directly to inflate the share price.
	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: attacker, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1), Receiver: attacker,
	})
	require.NoError(t, err)
	v := f.getVault(t)
	v.CashBalance = v.CashBalance.Add(decimal.NewFromInt(10000))
	require.NoError(t, f.store.Vaults.Update(context.Background(), v))

	shares, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: victim, VaultID: f.vault.ID, Assets: decimal.NewFromInt(20000), Receiver: victim,
	})
	require.NoError(t, err)
	assert.True(t, shares.GreaterThan(decimal.Zero), "victim must mint shares, got %s", shares)
}

func TestDeposit_CampaignDesignationLocksSharesAndStakes(t *testing.T) {
	f := newFixture(t)
	supporter := uuid.New()
	campaign := &domain.Campaign{
		ID: uuid.New(), Name: "clean-water", Curator: uuid.New(),
		Status: domain.CampaignStatusActive, CreatedAt: f.clock,
	}
	require.NoError(t, f.store.Campaigns.Create(context.Background(), campaign))

	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: supporter, VaultID: f.vault.ID, Assets: decimal.NewFromInt(500),
		Receiver: supporter, CampaignID: &campaign.ID,
	})
	require.NoError(t, err)

	pos, err := f.store.Positions.Get(context.Background(), supporter, f.vault.ID)
	require.NoError(t, err)
	require.Len(t, pos.LockTranches, 1)
	assert.Equal(t, campaign.ID, pos.LockTranches[0].CampaignID)
	assert.Equal(t, f.clock.Add(f.vault.MinHoldPeriod), pos.LockTranches[0].UnlockTime)

	staked, err := f.store.Stakes.Staked(context.Background(), supporter, campaign.ID)
	require.NoError(t, err)
	assert.True(t, staked.Equal(decimal.NewFromInt(500)))

	// Locked shares cannot be withdrawn before the hold period elapses.
	_, err = f.svc.Withdraw(context.Background(), WithdrawInput{
		Caller: supporter, VaultID: f.vault.ID, Assets: decimal.NewFromInt(500),
		Receiver: supporter, Owner: supporter,
	})
	assert.True(t, domain.IsKind(err, domain.KindIntegrity))

	// After the hold period the same withdrawal clears.
	f.clock = f.clock.Add(f.vault.MinHoldPeriod + time.Second)
	_, err = f.svc.Withdraw(context.Background(), WithdrawInput{
		Caller: supporter, VaultID: f.vault.ID, Assets: decimal.NewFromInt(500),
		Receiver: supporter, Owner: supporter,
	})
	assert.NoError(t, err)
}

func TestDeposit_InactiveCampaignRejected(t *testing.T) {
	f := newFixture(t)
	supporter := uuid.New()
	campaign := &domain.Campaign{
		ID: uuid.New(), Name: "pending", Curator: uuid.New(),
		Status: domain.CampaignStatusSubmitted, CreatedAt: f.clock,
	}
	require.NoError(t, f.store.Campaigns.Create(context.Background(), campaign))

	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: supporter, VaultID: f.vault.ID, Assets: decimal.NewFromInt(500),
		Receiver: supporter, CampaignID: &campaign.ID,
	})
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestWithdraw_FromCash(t *testing.T) {
	f := newFixture(t)
	depositor := uuid.New()
	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000), Receiver: depositor,
	})
	require.NoError(t, err)

	shares, err := f.svc.Withdraw(context.Background(), WithdrawInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(400),
		Receiver: depositor, Owner: depositor,
	})
	require.NoError(t, err)
	assert.True(t, shares.Equal(decimal.NewFromInt(400)), "burned %s", shares)

	v := f.getVault(t)
	assert.True(t, v.CashBalance.Equal(decimal.NewFromInt(600)))
	assert.True(t, v.SharesOutstanding.Equal(decimal.NewFromInt(600)))
}

func TestWithdraw_DivestLossBorneByWithdrawer(t *testing.T) {
	f := newFixture(t)
	adapter := newMockAdapter(f.vault.ID, "USD")
	f.bindMock(t, adapter)

	f.vault.CashBalance = decimal.NewFromInt(10)
	f.vault.SharesOutstanding = decimal.NewFromInt(1000)
	require.NoError(t, f.store.Vaults.Update(context.Background(), f.vault))
	depositor := uuid.New()
	pos := domain.NewPosition(depositor, f.vault.ID)
	pos.Shares = decimal.NewFromInt(1000)
	require.NoError(t, f.store.Positions.Save(context.Background(), pos))

	adapter.On("TotalAssets", mock.Anything).Return(decimal.NewFromInt(990), nil)
	// Shortfall 990, strategy returns 986: loss 4 is exactly the 50 bps bound.
	adapter.On("Divest", mock.Anything, f.vault.ID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(990))
	})).Return(decimal.NewFromInt(986), nil)

	_, err := f.svc.Withdraw(context.Background(), WithdrawInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000),
		Receiver: depositor, Owner: depositor,
	})
	require.NoError(t, err)

	v := f.getVault(t)
	// Paid out 996 of the requested 1000: the 4 lost to divestment comes out
	// of the withdrawer, never the remaining pool.
	assert.True(t, v.CashBalance.Equal(decimal.Zero), "cash %s", v.CashBalance)
	assert.True(t, v.TotalLoss.Equal(decimal.NewFromInt(4)))
	adapter.AssertExpectations(t)
}

func TestWithdraw_DivestLossAboveToleranceAborts(t *testing.T) {
	f := newFixture(t)
	adapter := newMockAdapter(f.vault.ID, "USD")
	f.bindMock(t, adapter)

	f.vault.CashBalance = decimal.NewFromInt(10)
	f.vault.SharesOutstanding = decimal.NewFromInt(1000)
	require.NoError(t, f.store.Vaults.Update(context.Background(), f.vault))
	depositor := uuid.New()
	pos := domain.NewPosition(depositor, f.vault.ID)
	pos.Shares = decimal.NewFromInt(1000)
	require.NoError(t, f.store.Positions.Save(context.Background(), pos))

	adapter.On("TotalAssets", mock.Anything).Return(decimal.NewFromInt(990), nil)
	adapter.On("Divest", mock.Anything, f.vault.ID, mock.Anything).
		Return(decimal.NewFromInt(985), nil) // loss 5 > 4 tolerated
	// The aborting vault must hand the 985 back to the strategy.
	adapter.On("Invest", mock.Anything, f.vault.ID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(985))
	})).Return(nil)

	_, err := f.svc.Withdraw(context.Background(), WithdrawInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000),
		Receiver: depositor, Owner: depositor,
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindIntegrity))

	// Nothing persisted: shares and cash are untouched.
	v := f.getVault(t)
	assert.True(t, v.CashBalance.Equal(decimal.NewFromInt(10)))
	assert.True(t, v.SharesOutstanding.Equal(decimal.NewFromInt(1000)))
	adapter.AssertExpectations(t)
}

// illiquidAdapter is a stateful strategy of which only a fixed liquid
// portion can be divested. Divest shortfalls surface as realized losses
// at the vault.
type illiquidAdapter struct {
	id      uuid.UUID
	vaultID uuid.UUID
	balance decimal.Decimal
	liquid  decimal.Decimal
}

func (a *illiquidAdapter) ID() uuid.UUID      { return a.id }
func (a *illiquidAdapter) Asset() string      { return "USD" }
func (a *illiquidAdapter) VaultID() uuid.UUID { return a.vaultID }

func (a *illiquidAdapter) TotalAssets(context.Context) (decimal.Decimal, error) {
	return a.balance, nil
}

func (a *illiquidAdapter) Invest(_ context.Context, _ uuid.UUID, amount decimal.Decimal) error {
	a.balance = a.balance.Add(amount)
	a.liquid = a.liquid.Add(amount)
	return nil
}

func (a *illiquidAdapter) Divest(_ context.Context, _ uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	returned := decimal.Min(amount, a.liquid)
	a.balance = a.balance.Sub(returned)
	a.liquid = a.liquid.Sub(returned)
	return returned, nil
}

func (a *illiquidAdapter) Harvest(context.Context, uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	return decimal.Zero, decimal.Zero, nil
}

func (a *illiquidAdapter) EmergencyWithdraw(_ context.Context, _ uuid.UUID) (decimal.Decimal, error) {
	returned := a.liquid
	a.balance = a.balance.Sub(returned)
	a.liquid = decimal.Zero
	return returned, nil
}

func TestWithdraw_AbortedDivestLeavesTotalAssetsIntact(t *testing.T) {
	f := newFixture(t)
	adapter := &illiquidAdapter{
		id: uuid.New(), vaultID: f.vault.ID,
		balance: decimal.NewFromInt(990), liquid: decimal.NewFromInt(500),
	}
	f.registry.Register(adapter)
	id := adapter.ID()
	f.vault.ActiveAdapterID = &id
	f.vault.CashBalance = decimal.NewFromInt(10)
	f.vault.SharesOutstanding = decimal.NewFromInt(1000)
	require.NoError(t, f.store.Vaults.Update(context.Background(), f.vault))
	depositor := uuid.New()
	pos := domain.NewPosition(depositor, f.vault.ID)
	pos.Shares = decimal.NewFromInt(1000)
	require.NoError(t, f.store.Positions.Save(context.Background(), pos))

	before, err := f.svc.TotalAssets(context.Background(), f.vault.ID)
	require.NoError(t, err)
	require.True(t, before.Equal(decimal.NewFromInt(1000)))

	// Shortfall 990, only 500 retrievable: loss 490 blows the 50 bps bound.
	_, err = f.svc.Withdraw(context.Background(), WithdrawInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000),
		Receiver: depositor, Owner: depositor,
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindIntegrity))

	// The divested 500 went back to the strategy: nothing is stranded
	// between the two custodies.
	after, err := f.svc.TotalAssets(context.Background(), f.vault.ID)
	require.NoError(t, err)
	assert.True(t, after.Equal(before), "total assets before=%s after=%s", before, after)
	assert.True(t, adapter.balance.Equal(decimal.NewFromInt(990)))
	v := f.getVault(t)
	assert.True(t, v.CashBalance.Equal(decimal.NewFromInt(10)))
	assert.True(t, v.SharesOutstanding.Equal(decimal.NewFromInt(1000)))
}

func TestWithdraw_ReentrantAdapterBlocked(t *testing.T) {
	f := newFixture(t)
	adapter := newMockAdapter(f.vault.ID, "USD")
	f.bindMock(t, adapter)
	depositor := uuid.New()

	adapter.On("TotalAssets", mock.Anything).Return(decimal.Zero, nil)
	var reentrantErr error
	adapter.On("Invest", mock.Anything, f.vault.ID, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, reentrantErr = f.svc.Deposit(ctx, DepositInput{
				Caller: depositor, VaultID: f.vault.ID,
				Assets: decimal.NewFromInt(1), Receiver: depositor,
			})
		}).
		Return(nil)

	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000), Receiver: depositor,
	})
	require.NoError(t, err)
	require.Error(t, reentrantErr)
	assert.True(t, domain.IsKind(reentrantErr, domain.KindConcurrency))
}

func TestRedeem_RoundTripNeverProfits(t *testing.T) {
	f := newFixture(t)
	depositor := uuid.New()
	shares, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(777), Receiver: depositor,
	})
	require.NoError(t, err)

	paid, err := f.svc.Redeem(context.Background(), WithdrawInput{
		Caller: depositor, VaultID: f.vault.ID, Shares: shares,
		Receiver: depositor, Owner: depositor,
	})
	require.NoError(t, err)
	assert.True(t, paid.LessThanOrEqual(decimal.NewFromInt(777)), "round trip paid %s", paid)
}

func TestApprove_AllowanceGatesThirdPartyWithdrawals(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	operator := uuid.New()
	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: owner, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000), Receiver: owner,
	})
	require.NoError(t, err)

	// No allowance yet.
	_, err = f.svc.Withdraw(context.Background(), WithdrawInput{
		Caller: operator, VaultID: f.vault.ID, Assets: decimal.NewFromInt(100),
		Receiver: operator, Owner: owner,
	})
	assert.True(t, domain.IsKind(err, domain.KindIntegrity))

	require.NoError(t, f.svc.Approve(context.Background(), owner, f.vault.ID, operator, decimal.NewFromInt(100)))

	_, err = f.svc.Withdraw(context.Background(), WithdrawInput{
		Caller: operator, VaultID: f.vault.ID, Assets: decimal.NewFromInt(100),
		Receiver: operator, Owner: owner,
	})
	require.NoError(t, err)

	// The allowance is consumed.
	pos, err := f.store.Positions.Get(context.Background(), owner, f.vault.ID)
	require.NoError(t, err)
	assert.True(t, pos.Allowance(operator).IsZero())
}

func TestHarvest_DistributesProfitOnce(t *testing.T) {
	f := newFixture(t)
	adapter := f.bindFixedRate(t, 100) // 1% per hour
	depositor := uuid.New()
	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000), Receiver: depositor,
	})
	require.NoError(t, err)

	f.clock = f.clock.Add(time.Hour)
	expected := decimal.NewFromInt(9) // floor(990 * 1%)
	f.dist.On("Distribute", mock.Anything, mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(expected)
	})).Return(&domain.Distribution{ID: uuid.New()}, nil).Once()

	profit, loss, err := f.svc.Harvest(context.Background(), depositor, f.vault.ID)
	require.NoError(t, err)
	assert.True(t, profit.Equal(expected), "profit %s", profit)
	assert.True(t, loss.IsZero())

	v := f.getVault(t)
	assert.True(t, v.TotalProfit.Equal(expected))
	assert.Equal(t, f.clock, v.LastHarvestTime)

	// An immediate second harvest realizes nothing and triggers no payout.
	profit, loss, err = f.svc.Harvest(context.Background(), depositor, f.vault.ID)
	require.NoError(t, err)
	assert.True(t, profit.IsZero())
	assert.True(t, loss.IsZero())
	f.dist.AssertExpectations(t)

	invested, err := adapter.TotalAssets(context.Background())
	require.NoError(t, err)
	assert.True(t, invested.Equal(decimal.NewFromInt(990)), "principal after harvest %s", invested)
}

func TestHarvest_BlockedOutsideNormalMode(t *testing.T) {
	f := newFixture(t)
	f.bindFixedRate(t, 100)
	require.NoError(t, f.svc.Pause(context.Background(), uuid.New(), f.vault.ID))

	_, _, err := f.svc.Harvest(context.Background(), uuid.New(), f.vault.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))
}

func TestSetAdapter_RejectsForeignBinding(t *testing.T) {
	f := newFixture(t)
	foreign := strategy.NewFixedRateAdapter(uuid.New(), "USD", 0, time.Hour)
	f.registry.Register(foreign)

	err := f.svc.SetAdapter(context.Background(), uuid.New(), f.vault.ID, foreign.ID())
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))

	wrongAsset := strategy.NewFixedRateAdapter(f.vault.ID, "EUR", 0, time.Hour)
	f.registry.Register(wrongAsset)
	err = f.svc.SetAdapter(context.Background(), uuid.New(), f.vault.ID, wrongAsset.ID())
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))
}

func TestSetAdapter_DivestsOutgoingStrategy(t *testing.T) {
	f := newFixture(t)
	f.bindFixedRate(t, 0)
	depositor := uuid.New()
	_, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: depositor, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000), Receiver: depositor,
	})
	require.NoError(t, err)

	next := strategy.NewFixedRateAdapter(f.vault.ID, "USD", 0, time.Hour)
	f.registry.Register(next)
	require.NoError(t, f.svc.SetAdapter(context.Background(), uuid.New(), f.vault.ID, next.ID()))

	v := f.getVault(t)
	require.NotNil(t, v.ActiveAdapterID)
	assert.Equal(t, next.ID(), *v.ActiveAdapterID)
	// The outgoing strategy's 990 came back to cash.
	assert.True(t, v.CashBalance.Equal(decimal.NewFromInt(1000)), "cash %s", v.CashBalance)
}

func TestEmergencyShutdown_DivestFailureDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	adapter := newMockAdapter(f.vault.ID, "USD")
	f.bindMock(t, adapter)
	adapter.On("EmergencyWithdraw", mock.Anything, f.vault.ID).
		Return(decimal.Zero, domain.E(domain.KindIntegrity, "strategy venue unreachable"))

	require.NoError(t, f.svc.EmergencyShutdown(context.Background(), uuid.New(), f.vault.ID))

	v := f.getVault(t)
	assert.Equal(t, domain.VaultModeEmergencyShutdown, v.Mode)
	assert.NotEmpty(t, v.LastDivestError)
	require.NotNil(t, v.EmergencyActivatedAt)
	assert.Equal(t, f.clock, *v.EmergencyActivatedAt)
}

func TestEmergencyWithdraw_GracePeriodGates(t *testing.T) {
	f := newFixture(t)
	supporter := uuid.New()
	campaign := &domain.Campaign{
		ID: uuid.New(), Name: "locked-cause", Curator: uuid.New(),
		Status: domain.CampaignStatusActive, CreatedAt: f.clock,
	}
	require.NoError(t, f.store.Campaigns.Create(context.Background(), campaign))
	shares, err := f.svc.Deposit(context.Background(), DepositInput{
		Caller: supporter, VaultID: f.vault.ID, Assets: decimal.NewFromInt(1000),
		Receiver: supporter, CampaignID: &campaign.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.EmergencyShutdown(context.Background(), uuid.New(), f.vault.ID))

	// Inside the grace period the withdrawal is temporally blocked.
	_, err = f.svc.EmergencyWithdraw(context.Background(), WithdrawInput{
		Caller: supporter, VaultID: f.vault.ID, Shares: shares,
		Receiver: supporter, Owner: supporter,
	})
	assert.True(t, domain.IsKind(err, domain.KindTemporal))

	// After the grace period even campaign-locked shares are recoverable.
	f.clock = f.clock.Add(f.vault.GracePeriod + time.Second)
	paid, err := f.svc.EmergencyWithdraw(context.Background(), WithdrawInput{
		Caller: supporter, VaultID: f.vault.ID, Shares: shares,
		Receiver: supporter, Owner: supporter,
	})
	require.NoError(t, err)
	assert.True(t, paid.GreaterThan(decimal.Zero))
}

func TestEmergencyShutdown_ResumeClearsFlags(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.EmergencyShutdown(context.Background(), uuid.New(), f.vault.ID))
	require.NoError(t, f.svc.ResumeFromEmergency(context.Background(), uuid.New(), f.vault.ID))

	v := f.getVault(t)
	assert.Equal(t, domain.VaultModeNormal, v.Mode)
	assert.Nil(t, v.EmergencyActivatedAt)
	assert.Empty(t, v.LastDivestError)
}

func TestPauseResume(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.svc.Pause(context.Background(), uuid.New(), f.vault.ID))
	assert.Equal(t, domain.VaultModePaused, f.getVault(t).Mode)

	// Pausing twice is not a valid transition.
	err := f.svc.Pause(context.Background(), uuid.New(), f.vault.ID)
	assert.True(t, domain.IsKind(err, domain.KindState))

	require.NoError(t, f.svc.Resume(context.Background(), uuid.New(), f.vault.ID))
	assert.Equal(t, domain.VaultModeNormal, f.getVault(t).Mode)
}
