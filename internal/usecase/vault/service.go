package vault

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// Distributor is the Payout Router seen from the ledger: harvest profit is
// handed over synchronously within the harvesting operation.
type Distributor interface {
	Distribute(ctx context.Context, v *domain.Vault, grossProfit decimal.Decimal) (*domain.Distribution, error)
}

// DepositInput represents the input for a deposit.
type DepositInput struct {
	Caller   uuid.UUID
	VaultID  uuid.UUID
	Assets   decimal.Decimal
	Receiver uuid.UUID

	// CampaignID, when set, designates the deposit to a campaign: the minted
	// shares are locked for the vault's minimum holding period and counted as
	// supporter stake for governance.
	CampaignID *uuid.UUID
}

// WithdrawInput represents the input for a withdrawal or redemption.
type WithdrawInput struct {
	Caller   uuid.UUID
	VaultID  uuid.UUID
	Assets   decimal.Decimal // Withdraw: exact assets out
	Shares   decimal.Decimal // Redeem: exact shares in
	Receiver uuid.UUID
	Owner    uuid.UUID
}

// HarvestStats is the read-only harvest summary.
type HarvestStats struct {
	TotalProfit     decimal.Decimal
	TotalLoss       decimal.Decimal
	LastHarvestTime time.Time
}

// Service is the Vault Ledger: custody, share accounting, cash-buffer
// investment policy, harvest orchestration and the emergency state machine.
type Service struct {
	VaultRepo    domain.VaultRepository
	PositionRepo domain.PositionRepository
	CampaignRepo domain.CampaignRepository
	StakeRepo    domain.StakeRepository
	Adapters     domain.AdapterRegistry
	Seq          domain.Sequence
	Atomic       domain.Atomic
	Distributor  Distributor
	Recorder     domain.EventRecorder

	guard *entryGuard
	now   func() time.Time
}

// NewService creates a new vault ledger service.
func NewService(
	vaultRepo domain.VaultRepository,
	positionRepo domain.PositionRepository,
	campaignRepo domain.CampaignRepository,
	stakeRepo domain.StakeRepository,
	adapters domain.AdapterRegistry,
	seq domain.Sequence,
	atomic domain.Atomic,
	distributor Distributor,
	recorder domain.EventRecorder,
) *Service {
	return &Service{
		VaultRepo:    vaultRepo,
		PositionRepo: positionRepo,
		CampaignRepo: campaignRepo,
		StakeRepo:    stakeRepo,
		Adapters:     adapters,
		Seq:          seq,
		Atomic:       atomic,
		Distributor:  distributor,
		Recorder:     recorder,
		guard:        newEntryGuard(),
		now:          time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// activeAdapter resolves the vault's adapter and verifies the mutual binding.
func (s *Service) activeAdapter(v *domain.Vault) (domain.StrategyAdapter, error) {
	if v.ActiveAdapterID == nil {
		return nil, domain.E(domain.KindState, "vault has no active adapter")
	}
	adapter, err := s.Adapters.Resolve(*v.ActiveAdapterID)
	if err != nil {
		return nil, err
	}
	if adapter.VaultID() != v.ID || adapter.Asset() != v.Asset {
		return nil, domain.E(domain.KindAuthorization, "adapter binding does not match vault")
	}
	return adapter, nil
}

// TotalAssets returns cash plus assets under the active adapter.
func (s *Service) TotalAssets(ctx context.Context, vaultID uuid.UUID) (decimal.Decimal, error) {
	v, err := s.VaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.totalAssets(ctx, v)
}

func (s *Service) totalAssets(ctx context.Context, v *domain.Vault) (decimal.Decimal, error) {
	if v.ActiveAdapterID == nil {
		return v.CashBalance, nil
	}
	adapter, err := s.activeAdapter(v)
	if err != nil {
		return decimal.Zero, err
	}
	invested, err := adapter.TotalAssets(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return v.CashBalance.Add(invested), nil
}

// GetConfiguration returns the vault's configuration.
func (s *Service) GetConfiguration(ctx context.Context, vaultID uuid.UUID) (*domain.Vault, error) {
	return s.VaultRepo.GetByID(ctx, vaultID)
}

// GetHarvestStats returns the vault's accumulated harvest totals.
func (s *Service) GetHarvestStats(ctx context.Context, vaultID uuid.UUID) (*HarvestStats, error) {
	v, err := s.VaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	return &HarvestStats{
		TotalProfit:     v.TotalProfit,
		TotalLoss:       v.TotalLoss,
		LastHarvestTime: v.LastHarvestTime,
	}, nil
}

// Deposit contributes assets and mints floor-rounded shares to the receiver,
// then invests any cash above the buffer target into the active adapter.
func (s *Service) Deposit(ctx context.Context, input DepositInput) (decimal.Decimal, error) {
	if input.Assets.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.E(domain.KindValidation, "deposit amount must be positive")
	}
	if input.Receiver == uuid.Nil {
		return decimal.Zero, domain.E(domain.KindValidation, "deposit receiver cannot be empty")
	}

	var shares decimal.Decimal
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		shares, err = s.deposit(ctx, input)
		return err
	})
	return shares, err
}

func (s *Service) deposit(ctx context.Context, input DepositInput) (decimal.Decimal, error) {
	if err := s.guard.Enter(input.VaultID); err != nil {
		return decimal.Zero, err
	}
	defer s.guard.Exit(input.VaultID)

	v, totalAssets, err := s.depositState(ctx, input.VaultID)
	if err != nil {
		return decimal.Zero, err
	}

	shares := v.ConvertToShares(input.Assets, totalAssets)
	if shares.IsZero() {
		return decimal.Zero, domain.E(domain.KindValidation, "deposit too small to mint shares")
	}
	if err := s.credit(ctx, v, input, shares, totalAssets); err != nil {
		return decimal.Zero, err
	}
	return shares, nil
}

// depositState loads the vault and its current total assets, rejecting
// vaults in emergency shutdown.
func (s *Service) depositState(ctx context.Context, vaultID uuid.UUID) (*domain.Vault, decimal.Decimal, error) {
	v, err := s.VaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if v.Mode == domain.VaultModeEmergencyShutdown {
		return nil, decimal.Zero, domain.E(domain.KindState, "vault is in emergency shutdown")
	}
	totalAssets, err := s.totalAssets(ctx, v)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return v, totalAssets, nil
}

// credit applies an already-converted deposit: assets into cash, shares onto
// the receiver's position, with campaign designation and surplus investment.
func (s *Service) credit(ctx context.Context, v *domain.Vault, input DepositInput, shares, totalAssets decimal.Decimal) error {
	v.CashBalance = v.CashBalance.Add(input.Assets)
	v.SharesOutstanding = v.SharesOutstanding.Add(shares)

	pos, err := s.PositionRepo.Get(ctx, input.Receiver, v.ID)
	if err != nil {
		return err
	}
	pos.Shares = pos.Shares.Add(shares)

	now := s.now()
	seq, err := s.Seq.Next(ctx)
	if err != nil {
		return err
	}

	if input.CampaignID != nil {
		if err := s.designateToCampaign(ctx, v, pos, *input.CampaignID, shares, seq, now); err != nil {
			return err
		}
	}

	// Investment policy: move surplus above the cash buffer into the
	// strategy. Paused vaults hold everything as cash.
	if v.Mode == domain.VaultModeNormal && v.ActiveAdapterID != nil {
		if err := s.investSurplus(ctx, v, totalAssets.Add(input.Assets)); err != nil {
			return err
		}
	}

	if err := s.PositionRepo.Save(ctx, pos); err != nil {
		return err
	}
	if err := s.PositionRepo.AppendSnapshot(ctx, &domain.ShareSnapshot{
		Depositor: input.Receiver,
		VaultID:   v.ID,
		Seq:       seq,
		Shares:    pos.Shares,
	}); err != nil {
		return err
	}
	if err := s.VaultRepo.Update(ctx, v); err != nil {
		return err
	}

	s.record(ctx, domain.NewEvent(domain.EventDeposit, now, input.Caller).
		WithVault(v.ID).
		With("receiver", input.Receiver.String()).
		With("assets", input.Assets.String()).
		With("shares", shares.String()))

	return nil
}

func (s *Service) designateToCampaign(
	ctx context.Context,
	v *domain.Vault,
	pos *domain.Position,
	campaignID uuid.UUID,
	shares decimal.Decimal,
	seq int64,
	now time.Time,
) error {
	campaign, err := s.CampaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.Status != domain.CampaignStatusActive {
		return domain.Ef(domain.KindState, "campaign %s is not active", campaignID)
	}

	pos.LockTranches = append(pos.LockTranches, domain.LockTranche{
		Shares:     shares,
		CampaignID: campaignID,
		UnlockTime: now.Add(v.MinHoldPeriod),
		CreatedAt:  now,
	})
	return s.StakeRepo.Append(ctx, &domain.SupporterStake{
		ID:         uuid.New(),
		Supporter:  pos.Depositor,
		CampaignID: campaignID,
		VaultID:    v.ID,
		Amount:     shares,
		Seq:        seq,
		CreatedAt:  now,
	})
}

func (s *Service) investSurplus(ctx context.Context, v *domain.Vault, totalAssets decimal.Decimal) error {
	target := v.CashBufferTarget(totalAssets)
	if v.CashBalance.LessThanOrEqual(target) {
		return nil
	}
	surplus := v.CashBalance.Sub(target)

	adapter, err := s.activeAdapter(v)
	if err != nil {
		return err
	}
	if err := adapter.Invest(ctx, v.ID, surplus); err != nil {
		return err
	}
	v.CashBalance = v.CashBalance.Sub(surplus)
	return nil
}

// Mint mints an exact share count, charging ceil-rounded assets. The price
// is read and the shares credited inside one atomic unit, so the count
// minted is exactly the count requested.
func (s *Service) Mint(ctx context.Context, input DepositInput, shares decimal.Decimal) (decimal.Decimal, error) {
	if shares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.E(domain.KindValidation, "mint shares must be positive")
	}
	if input.Receiver == uuid.Nil {
		return decimal.Zero, domain.E(domain.KindValidation, "mint receiver cannot be empty")
	}

	var assets decimal.Decimal
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.guard.Enter(input.VaultID); err != nil {
			return err
		}
		defer s.guard.Exit(input.VaultID)

		v, totalAssets, err := s.depositState(ctx, input.VaultID)
		if err != nil {
			return err
		}
		assets = v.ConvertToAssetsUp(shares, totalAssets)
		input.Assets = assets
		return s.credit(ctx, v, input, shares, totalAssets)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return assets, nil
}

// Withdraw burns ceil-rounded shares from owner and pays out the requested
// assets (less any tolerated divestment loss) to the receiver.
func (s *Service) Withdraw(ctx context.Context, input WithdrawInput) (decimal.Decimal, error) {
	if input.Assets.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.E(domain.KindValidation, "withdraw amount must be positive")
	}

	var shares decimal.Decimal
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		shares, _, err = s.withdraw(ctx, input, false)
		return err
	})
	return shares, err
}

// Redeem burns an exact share count and pays out floor-rounded assets.
func (s *Service) Redeem(ctx context.Context, input WithdrawInput) (decimal.Decimal, error) {
	if input.Shares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.E(domain.KindValidation, "redeem shares must be positive")
	}

	v, err := s.VaultRepo.GetByID(ctx, input.VaultID)
	if err != nil {
		return decimal.Zero, err
	}
	totalAssets, err := s.totalAssets(ctx, v)
	if err != nil {
		return decimal.Zero, err
	}
	input.Assets = v.ConvertToAssets(input.Shares, totalAssets)
	if input.Assets.IsZero() {
		return decimal.Zero, domain.E(domain.KindValidation, "redeem amount too small to pay out assets")
	}

	var paid decimal.Decimal
	err = s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		_, paid, err = s.withdraw(ctx, input, false)
		return err
	})
	return paid, err
}

// withdraw is the shared burn path. emergency bypasses the allowance and
// unlocked-shares checks; it is reachable only after the grace period.
func (s *Service) withdraw(ctx context.Context, input WithdrawInput, emergency bool) (shares, paid decimal.Decimal, err error) {
	if err := s.guard.Enter(input.VaultID); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	defer s.guard.Exit(input.VaultID)

	v, err := s.VaultRepo.GetByID(ctx, input.VaultID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	totalAssets, err := s.totalAssets(ctx, v)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	shares = v.ConvertToSharesUp(input.Assets, totalAssets)
	if shares.IsZero() {
		return decimal.Zero, decimal.Zero, domain.E(domain.KindValidation, "withdraw amount too small")
	}

	pos, err := s.PositionRepo.Get(ctx, input.Owner, v.ID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if pos.Shares.LessThan(shares) {
		return decimal.Zero, decimal.Zero, domain.Ef(domain.KindIntegrity,
			"insufficient shares: have %s, need %s", pos.Shares, shares)
	}

	now := s.now()
	if !emergency {
		if input.Caller != input.Owner {
			if err := pos.SpendAllowance(input.Caller, shares); err != nil {
				return decimal.Zero, decimal.Zero, err
			}
		}
		if pos.UnlockedShares(now).LessThan(shares) {
			return decimal.Zero, decimal.Zero, domain.E(domain.KindIntegrity,
				"withdrawal exceeds unlocked shares")
		}
	}

	paid = input.Assets
	if v.CashBalance.LessThan(input.Assets) {
		shortfall := input.Assets.Sub(v.CashBalance)
		loss, err := s.divestShortfall(ctx, v, shortfall)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		// The divestment deficit is borne by the withdrawing position, not
		// socialized across the pool.
		paid = paid.Sub(loss)
		v.TotalLoss = v.TotalLoss.Add(loss)
	}

	pos.Shares = pos.Shares.Sub(shares)
	v.SharesOutstanding = v.SharesOutstanding.Sub(shares)
	v.CashBalance = v.CashBalance.Sub(paid)

	seq, err := s.Seq.Next(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	if err := s.PositionRepo.Save(ctx, pos); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if err := s.PositionRepo.AppendSnapshot(ctx, &domain.ShareSnapshot{
		Depositor: input.Owner,
		VaultID:   v.ID,
		Seq:       seq,
		Shares:    pos.Shares,
	}); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if err := s.VaultRepo.Update(ctx, v); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	eventType := domain.EventWithdraw
	if emergency {
		eventType = domain.EventEmergencyWithdraw
	}
	s.record(ctx, domain.NewEvent(eventType, now, input.Caller).
		WithVault(v.ID).
		With("owner", input.Owner.String()).
		With("receiver", input.Receiver.String()).
		With("assets", paid.String()).
		With("shares", shares.String()))

	return shares, paid, nil
}

// divestShortfall pulls the shortfall from the adapter and returns the
// realized loss. Aborts with an Integrity error when the loss exceeds the
// vault's tolerance.
func (s *Service) divestShortfall(ctx context.Context, v *domain.Vault, shortfall decimal.Decimal) (decimal.Decimal, error) {
	adapter, err := s.activeAdapter(v)
	if err != nil {
		return decimal.Zero, err
	}

	returned, err := adapter.Divest(ctx, v.ID, shortfall)
	if err != nil {
		return decimal.Zero, err
	}
	loss := shortfall.Sub(returned)
	if loss.IsNegative() {
		loss = decimal.Zero
		returned = shortfall
	}
	if loss.GreaterThan(v.MaxDivestLoss(shortfall)) {
		// The strategy already released the funds and the repository
		// rollback cannot reach it. Return them before aborting so the
		// failed withdrawal does not strand assets outside both custodies.
		if returned.IsPositive() {
			if invErr := adapter.Invest(ctx, v.ID, returned); invErr != nil {
				return decimal.Zero, domain.Ef(domain.KindIntegrity,
					"divestment loss %s exceeds tolerance for shortfall %s, and returning %s to the strategy failed: %v",
					loss, shortfall, returned, invErr)
			}
		}
		return decimal.Zero, domain.Ef(domain.KindIntegrity,
			"divestment loss %s exceeds tolerance for shortfall %s", loss, shortfall)
	}
	v.CashBalance = v.CashBalance.Add(returned)
	return loss, nil
}

// Approve grants spender a share allowance over the caller's position.
func (s *Service) Approve(ctx context.Context, caller, vaultID, spender uuid.UUID, shares decimal.Decimal) error {
	if shares.IsNegative() {
		return domain.E(domain.KindValidation, "allowance cannot be negative")
	}
	if spender == uuid.Nil {
		return domain.E(domain.KindValidation, "spender cannot be empty")
	}
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		pos, err := s.PositionRepo.Get(ctx, caller, vaultID)
		if err != nil {
			return err
		}
		if pos.Allowances == nil {
			pos.Allowances = make(map[uuid.UUID]decimal.Decimal)
		}
		pos.Allowances[spender] = shares
		return s.PositionRepo.Save(ctx, pos)
	})
}

// Harvest realizes profit or loss from the adapter. Profit is handed to the
// Payout Router synchronously within the same atomic unit. Any caller may
// trigger a harvest.
func (s *Service) Harvest(ctx context.Context, caller, vaultID uuid.UUID) (profit, loss decimal.Decimal, err error) {
	err = s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		profit, loss, err = s.harvest(ctx, caller, vaultID)
		return err
	})
	return profit, loss, err
}

func (s *Service) harvest(ctx context.Context, caller, vaultID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	if err := s.guard.Enter(vaultID); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	defer s.guard.Exit(vaultID)

	v, err := s.VaultRepo.GetByID(ctx, vaultID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if v.Mode != domain.VaultModeNormal {
		return decimal.Zero, decimal.Zero, domain.Ef(domain.KindState, "vault mode %s blocks harvesting", v.Mode)
	}

	adapter, err := s.activeAdapter(v)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	profit, loss, err := adapter.Harvest(ctx, v.ID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	now := s.now()
	v.TotalProfit = v.TotalProfit.Add(profit)
	v.TotalLoss = v.TotalLoss.Add(loss)
	v.LastHarvestTime = now

	var distributionID string
	if profit.GreaterThan(decimal.Zero) {
		// Profit bypasses vault cash: the adapter released it and the router
		// takes custody within this same atomic unit.
		dist, err := s.Distributor.Distribute(ctx, v, profit)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		distributionID = dist.ID.String()
	}

	if err := s.VaultRepo.Update(ctx, v); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	s.record(ctx, domain.NewEvent(domain.EventHarvest, now, caller).
		WithVault(v.ID).
		With("profit", profit.String()).
		With("loss", loss.String()).
		With("distribution_id", distributionID))

	return profit, loss, nil
}

// SetAdapter switches the vault's active strategy. The outgoing adapter is
// fully divested first; the incoming adapter must be bound to this vault and
// its asset.
func (s *Service) SetAdapter(ctx context.Context, caller, vaultID, adapterID uuid.UUID) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.guard.Enter(vaultID); err != nil {
			return err
		}
		defer s.guard.Exit(vaultID)

		v, err := s.VaultRepo.GetByID(ctx, vaultID)
		if err != nil {
			return err
		}

		next, err := s.Adapters.Resolve(adapterID)
		if err != nil {
			return err
		}
		if next.VaultID() != v.ID {
			return domain.E(domain.KindAuthorization, "adapter is bound to a different vault")
		}
		if next.Asset() != v.Asset {
			return domain.Ef(domain.KindAuthorization,
				"adapter asset %s does not match vault asset %s", next.Asset(), v.Asset)
		}

		var previous string
		if v.ActiveAdapterID != nil {
			previous = v.ActiveAdapterID.String()
			current, err := s.activeAdapter(v)
			if err != nil {
				return err
			}
			withdrawn, err := current.EmergencyWithdraw(ctx, v.ID)
			if err != nil {
				return err
			}
			v.CashBalance = v.CashBalance.Add(withdrawn)
		}

		v.ActiveAdapterID = &adapterID
		if err := s.VaultRepo.Update(ctx, v); err != nil {
			return err
		}

		s.record(ctx, domain.NewEvent(domain.EventAdapterSwitch, s.now(), caller).
			WithVault(v.ID).
			With("previous", previous).
			With("next", adapterID.String()))
		return nil
	})
}

// Pause blocks investment and harvesting. Reversible.
func (s *Service) Pause(ctx context.Context, caller, vaultID uuid.UUID) error {
	return s.transition(ctx, caller, vaultID, domain.VaultModePaused, domain.EventEmergencyPause)
}

// Resume returns a paused vault to normal operation.
func (s *Service) Resume(ctx context.Context, caller, vaultID uuid.UUID) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		v, err := s.VaultRepo.GetByID(ctx, vaultID)
		if err != nil {
			return err
		}
		if v.Mode != domain.VaultModePaused {
			return domain.Ef(domain.KindState, "resume requires a paused vault, mode is %s", v.Mode)
		}
		if err := v.TransitionMode(domain.VaultModeNormal); err != nil {
			return err
		}
		return s.VaultRepo.Update(ctx, v)
	})
}

func (s *Service) transition(ctx context.Context, caller, vaultID uuid.UUID, to domain.VaultMode, event domain.EventType) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		v, err := s.VaultRepo.GetByID(ctx, vaultID)
		if err != nil {
			return err
		}
		if err := v.TransitionMode(to); err != nil {
			return err
		}
		if err := s.VaultRepo.Update(ctx, v); err != nil {
			return err
		}
		s.record(ctx, domain.NewEvent(event, s.now(), caller).WithVault(v.ID))
		return nil
	})
}

// EmergencyShutdown enters the irreversible safety state, attempting a
// best-effort full divestment from the adapter. A divestment failure is
// recorded on the vault and does not block the shutdown itself; this is the
// sole non-fatal external call in the engine.
func (s *Service) EmergencyShutdown(ctx context.Context, caller, vaultID uuid.UUID) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.guard.Enter(vaultID); err != nil {
			return err
		}
		defer s.guard.Exit(vaultID)

		v, err := s.VaultRepo.GetByID(ctx, vaultID)
		if err != nil {
			return err
		}
		if err := v.TransitionMode(domain.VaultModeEmergencyShutdown); err != nil {
			return err
		}

		now := s.now()
		v.EmergencyActivatedAt = &now
		v.LastDivestError = ""

		if v.ActiveAdapterID != nil {
			adapter, err := s.activeAdapter(v)
			if err != nil {
				v.LastDivestError = err.Error()
			} else if res := domain.TryEmergencyDivest(ctx, adapter, v.ID); res.Err != nil {
				v.LastDivestError = res.Err.Error()
				log.Printf("[ERROR] emergency divest for vault %s: %v", v.ID, res.Err)
			} else {
				v.CashBalance = v.CashBalance.Add(res.Withdrawn)
			}
		}

		if err := s.VaultRepo.Update(ctx, v); err != nil {
			return err
		}

		s.record(ctx, domain.NewEvent(domain.EventEmergencyShutdown, now, caller).
			WithVault(v.ID).
			With("divest_error", v.LastDivestError))
		return nil
	})
}

// ResumeFromEmergency is the only path out of emergency shutdown. It clears
// all emergency flags and returns the vault to normal operation.
func (s *Service) ResumeFromEmergency(ctx context.Context, caller, vaultID uuid.UUID) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		v, err := s.VaultRepo.GetByID(ctx, vaultID)
		if err != nil {
			return err
		}
		if v.Mode != domain.VaultModeEmergencyShutdown {
			return domain.Ef(domain.KindState, "vault mode %s is not emergency shutdown", v.Mode)
		}
		if err := v.TransitionMode(domain.VaultModeNormal); err != nil {
			return err
		}
		v.EmergencyActivatedAt = nil
		v.LastDivestError = ""
		if err := s.VaultRepo.Update(ctx, v); err != nil {
			return err
		}
		s.record(ctx, domain.NewEvent(domain.EventEmergencyResume, s.now(), caller).WithVault(v.ID))
		return nil
	})
}

// EmergencyWithdraw redeems shares after the post-shutdown grace period.
// Callable by anyone on behalf of any position holder: fund recovery
// outranks access control during a crisis, so allowance and lock checks are
// deliberately bypassed.
func (s *Service) EmergencyWithdraw(ctx context.Context, input WithdrawInput) (decimal.Decimal, error) {
	if input.Shares.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.E(domain.KindValidation, "emergency withdraw shares must be positive")
	}

	var paid decimal.Decimal
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		v, err := s.VaultRepo.GetByID(ctx, input.VaultID)
		if err != nil {
			return err
		}
		if v.Mode != domain.VaultModeEmergencyShutdown {
			return domain.E(domain.KindState, "vault is not in emergency shutdown")
		}
		if !v.GracePeriodElapsed(s.now()) {
			return domain.E(domain.KindTemporal, "grace period is still active")
		}

		totalAssets, err := s.totalAssets(ctx, v)
		if err != nil {
			return err
		}
		input.Assets = v.ConvertToAssets(input.Shares, totalAssets)
		if v.CashBalance.LessThan(input.Assets) {
			return domain.Ef(domain.KindIntegrity,
				"insufficient cash %s for emergency withdrawal of %s", v.CashBalance, input.Assets)
		}

		_, paid, err = s.withdraw(ctx, input, true)
		return err
	})
	return paid, err
}

func (s *Service) record(ctx context.Context, e *domain.Event) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.Record(ctx, e); err != nil {
		log.Printf("[ERROR] record %s event: %v", e.Type, err)
	}
}
