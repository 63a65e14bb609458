package payout

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
	"github.com/donorvault/donorvault-backend/internal/usecase/splitter"
)

// SetPreferenceInput represents the input for updating a payout preference.
type SetPreferenceInput struct {
	Caller      uuid.UUID
	VaultID     uuid.UUID
	CampaignID  uuid.UUID
	Beneficiary uuid.UUID
	CampaignBps int64
}

// ClaimResult is the settled outcome of one claim.
type ClaimResult struct {
	Entitlement       decimal.Decimal
	CampaignAmount    decimal.Decimal
	BeneficiaryAmount decimal.Decimal
	Escrowed          bool
}

// Service is the Payout Router. Distribution is pull-based: recording a
// harvest is O(1) in the depositor count, and each depositor settles their
// own entitlement with a claim priced by their share balance at the
// distribution's snapshot sequence.
type Service struct {
	VaultRepo        domain.VaultRepository
	PositionRepo     domain.PositionRepository
	PreferenceRepo   domain.PreferenceRepository
	CampaignRepo     domain.CampaignRepository
	DistributionRepo domain.DistributionRepository
	PayoutRepo       domain.PayoutRepository
	Seq              domain.Sequence
	Atomic           domain.Atomic
	Recorder         domain.EventRecorder

	now func() time.Time
}

// NewService creates a new payout router service.
func NewService(
	vaultRepo domain.VaultRepository,
	positionRepo domain.PositionRepository,
	preferenceRepo domain.PreferenceRepository,
	campaignRepo domain.CampaignRepository,
	distributionRepo domain.DistributionRepository,
	payoutRepo domain.PayoutRepository,
	seq domain.Sequence,
	atomic domain.Atomic,
	recorder domain.EventRecorder,
) *Service {
	return &Service{
		VaultRepo:        vaultRepo,
		PositionRepo:     positionRepo,
		PreferenceRepo:   preferenceRepo,
		CampaignRepo:     campaignRepo,
		DistributionRepo: distributionRepo,
		PayoutRepo:       payoutRepo,
		Seq:              seq,
		Atomic:           atomic,
		Recorder:         recorder,
		now:              time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Distribute takes custody of harvested profit: the protocol fee comes off
// the top immediately, the remainder becomes a claimable distribution
// snapshot. Called by the Vault Ledger only, inside the harvest's atomic
// unit; it must not open its own.
func (s *Service) Distribute(ctx context.Context, v *domain.Vault, grossProfit decimal.Decimal) (*domain.Distribution, error) {
	feeRes, err := splitter.TakeFee(grossProfit, v.ProtocolFeeBps)
	if err != nil {
		return nil, err
	}

	seq, err := s.Seq.Current(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dist := &domain.Distribution{
		ID:            uuid.New(),
		VaultID:       v.ID,
		GrossProfit:   grossProfit,
		Fee:           feeRes.Fee,
		Amount:        feeRes.Net,
		TotalShares:   v.SharesOutstanding,
		SnapshotSeq:   seq,
		ClaimedShares: decimal.Zero,
		ClaimedAmount: decimal.Zero,
		CreatedAt:     now,
	}
	if err := s.DistributionRepo.Create(ctx, dist); err != nil {
		return nil, err
	}

	if feeRes.Fee.GreaterThan(decimal.Zero) {
		if err := s.PayoutRepo.Append(ctx, &domain.PayoutEntry{
			ID:             uuid.New(),
			VaultID:        v.ID,
			DistributionID: dist.ID,
			Kind:           domain.PayoutKindFee,
			Amount:         feeRes.Fee,
			CreatedAt:      now,
		}); err != nil {
			return nil, err
		}
	}

	s.record(ctx, domain.NewEvent(domain.EventDistribution, now, uuid.Nil).
		WithVault(v.ID).
		With("distribution_id", dist.ID.String()).
		With("gross", grossProfit.String()).
		With("fee", feeRes.Fee.String()).
		With("net", feeRes.Net.String()))

	return dist, nil
}

// Claim settles the caller's entitlement from one distribution: their
// floor-rounded pro-rata slice of the net amount, split by their payout
// preference. A halted campaign's portion is escrowed instead of paid. The
// last claimant sweeps the distribution's rounding dust into the fee bucket,
// which keeps campaign + beneficiary + fee exactly equal to the gross profit
// once every share has claimed.
func (s *Service) Claim(ctx context.Context, depositor, distributionID uuid.UUID) (*ClaimResult, error) {
	var result *ClaimResult
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.claim(ctx, depositor, distributionID)
		return err
	})
	return result, err
}

func (s *Service) claim(ctx context.Context, depositor, distributionID uuid.UUID) (*ClaimResult, error) {
	dist, err := s.DistributionRepo.GetByID(ctx, distributionID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.DistributionRepo.GetClaim(ctx, distributionID, depositor); err == nil && existing != nil {
		return nil, domain.E(domain.KindState, "distribution already claimed by depositor")
	} else if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	shares, err := s.PositionRepo.SharesAt(ctx, depositor, dist.VaultID, dist.SnapshotSeq)
	if err != nil {
		return nil, err
	}
	if shares.LessThanOrEqual(decimal.Zero) {
		return nil, domain.E(domain.KindValidation, "depositor held no shares at the distribution snapshot")
	}

	entitlement := dist.Entitlement(shares)

	pref, err := s.preferenceOrDefault(ctx, depositor, dist.VaultID)
	if err != nil {
		return nil, err
	}

	split, err := splitter.Compute(entitlement, pref.CampaignBps)
	if err != nil {
		return nil, err
	}

	campaign, err := s.CampaignRepo.GetByID(ctx, pref.CampaignID)
	if err != nil {
		return nil, err
	}

	// A terminal campaign can no longer receive: its portion falls back to
	// the beneficiary, or to the fee bucket when none is named.
	if campaign.IsTerminal() && split.CampaignAmount.GreaterThan(decimal.Zero) {
		if pref.Beneficiary != uuid.Nil {
			split.BeneficiaryAmount = split.BeneficiaryAmount.Add(split.CampaignAmount)
		} else {
			if err := s.PayoutRepo.Append(ctx, &domain.PayoutEntry{
				ID:             uuid.New(),
				VaultID:        dist.VaultID,
				DistributionID: dist.ID,
				Kind:           domain.PayoutKindFee,
				Amount:         split.CampaignAmount,
				CreatedAt:      s.now(),
			}); err != nil {
				return nil, err
			}
		}
		split.CampaignAmount = decimal.Zero
	}

	now := s.now()
	escrowed := false
	if split.CampaignAmount.GreaterThan(decimal.Zero) {
		if campaign.PayoutsHalted {
			escrowed = true
			if err := s.escrowCampaignAmount(ctx, dist, depositor, campaign.ID, split.CampaignAmount, now); err != nil {
				return nil, err
			}
		} else {
			if err := s.creditCampaign(ctx, dist, campaign, split.CampaignAmount, now); err != nil {
				return nil, err
			}
		}
	}

	if split.BeneficiaryAmount.GreaterThan(decimal.Zero) {
		beneficiary := pref.Beneficiary
		if err := s.PayoutRepo.Append(ctx, &domain.PayoutEntry{
			ID:             uuid.New(),
			VaultID:        dist.VaultID,
			DistributionID: dist.ID,
			Kind:           domain.PayoutKindBeneficiary,
			Beneficiary:    &beneficiary,
			Amount:         split.BeneficiaryAmount,
			CreatedAt:      now,
		}); err != nil {
			return nil, err
		}
	}

	dist.ClaimedShares = dist.ClaimedShares.Add(shares)
	dist.ClaimedAmount = dist.ClaimedAmount.Add(entitlement)

	// Final claim: whatever floor rounding left behind goes to the fee
	// bucket so the distribution conserves exactly.
	if dist.FullyClaimed() && dist.Dust().GreaterThan(decimal.Zero) {
		dust := dist.Dust()
		if err := s.PayoutRepo.Append(ctx, &domain.PayoutEntry{
			ID:             uuid.New(),
			VaultID:        dist.VaultID,
			DistributionID: dist.ID,
			Kind:           domain.PayoutKindFee,
			Amount:         dust,
			CreatedAt:      now,
		}); err != nil {
			return nil, err
		}
		dist.ClaimedAmount = dist.ClaimedAmount.Add(dust)
	}

	if err := s.DistributionRepo.Update(ctx, dist); err != nil {
		return nil, err
	}
	if err := s.DistributionRepo.SaveClaim(ctx, &domain.ClaimRecord{
		DistributionID:    dist.ID,
		Depositor:         depositor,
		Shares:            shares,
		Entitlement:       entitlement,
		CampaignAmount:    split.CampaignAmount,
		BeneficiaryAmount: split.BeneficiaryAmount,
		Escrowed:          escrowed,
		ClaimedAt:         now,
	}); err != nil {
		return nil, err
	}

	s.record(ctx, domain.NewEvent(domain.EventClaim, now, depositor).
		WithVault(dist.VaultID).
		WithCampaign(campaign.ID).
		With("distribution_id", dist.ID.String()).
		With("entitlement", entitlement.String()).
		With("campaign_amount", split.CampaignAmount.String()).
		With("beneficiary_amount", split.BeneficiaryAmount.String()))

	return &ClaimResult{
		Entitlement:       entitlement,
		CampaignAmount:    split.CampaignAmount,
		BeneficiaryAmount: split.BeneficiaryAmount,
		Escrowed:          escrowed,
	}, nil
}

func (s *Service) creditCampaign(ctx context.Context, dist *domain.Distribution, campaign *domain.Campaign, amount decimal.Decimal, now time.Time) error {
	campaignID := campaign.ID
	if err := s.PayoutRepo.Append(ctx, &domain.PayoutEntry{
		ID:             uuid.New(),
		VaultID:        dist.VaultID,
		DistributionID: dist.ID,
		Kind:           domain.PayoutKindCampaign,
		CampaignID:     &campaignID,
		Amount:         amount,
		CreatedAt:      now,
	}); err != nil {
		return err
	}

	if err := campaign.RecordReceived(amount); err != nil {
		return err
	}
	return s.CampaignRepo.Update(ctx, campaign)
}

func (s *Service) escrowCampaignAmount(ctx context.Context, dist *domain.Distribution, depositor, campaignID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	bucket, err := s.PayoutRepo.GetEscrow(ctx, campaignID)
	if err != nil {
		return err
	}
	bucket.Amount = bucket.Amount.Add(amount)
	if err := s.PayoutRepo.SaveEscrow(ctx, bucket); err != nil {
		return err
	}
	if err := s.PayoutRepo.AddEscrowContribution(ctx, &domain.EscrowContribution{
		CampaignID: campaignID,
		Depositor:  depositor,
		Amount:     amount,
	}); err != nil {
		return err
	}
	return s.PayoutRepo.Append(ctx, &domain.PayoutEntry{
		ID:             uuid.New(),
		VaultID:        dist.VaultID,
		DistributionID: dist.ID,
		Kind:           domain.PayoutKindEscrow,
		CampaignID:     &campaignID,
		Amount:         amount,
		CreatedAt:      now,
	})
}

// ClaimAll settles every unclaimed distribution of the vault for the
// depositor. Distributions where the depositor held no shares are skipped.
func (s *Service) ClaimAll(ctx context.Context, depositor, vaultID uuid.UUID) ([]*ClaimResult, error) {
	dists, err := s.DistributionRepo.ListByVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	var results []*ClaimResult
	for _, dist := range dists {
		if _, err := s.DistributionRepo.GetClaim(ctx, dist.ID, depositor); err == nil {
			continue
		} else if !domain.IsKind(err, domain.KindNotFound) {
			return nil, err
		}
		shares, err := s.PositionRepo.SharesAt(ctx, depositor, vaultID, dist.SnapshotSeq)
		if err != nil {
			return nil, err
		}
		if shares.LessThanOrEqual(decimal.Zero) {
			continue
		}
		res, err := s.Claim(ctx, depositor, dist.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// SetPreference updates the caller's payout split for a vault. Only the
// owning depositor may change it; the campaign must accept payouts.
func (s *Service) SetPreference(ctx context.Context, input SetPreferenceInput) error {
	pref := &domain.PayoutPreference{
		Depositor:   input.Caller,
		VaultID:     input.VaultID,
		CampaignID:  input.CampaignID,
		Beneficiary: input.Beneficiary,
		CampaignBps: input.CampaignBps,
	}
	if err := pref.Validate(); err != nil {
		return err
	}

	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		campaign, err := s.CampaignRepo.GetByID(ctx, input.CampaignID)
		if err != nil {
			return err
		}
		if !campaign.Payable() {
			return domain.Ef(domain.KindState, "campaign status %s does not accept payouts", campaign.Status)
		}
		if err := s.PreferenceRepo.Save(ctx, pref); err != nil {
			return err
		}
		s.record(ctx, domain.NewEvent(domain.EventPreferenceUpdate, s.now(), input.Caller).
			WithVault(input.VaultID).
			WithCampaign(input.CampaignID).
			With("campaign_bps", decimal.NewFromInt(input.CampaignBps).String()))
		return nil
	})
}

// GetPreference returns the depositor's preference, or the default
// (everything to the vault's designated campaign) when unset.
func (s *Service) GetPreference(ctx context.Context, depositor, vaultID uuid.UUID) (*domain.PayoutPreference, error) {
	pref, err := s.PreferenceRepo.Get(ctx, depositor, vaultID)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.E(domain.KindNotFound, "no preference set for depositor")
		}
		return nil, err
	}
	return pref, nil
}

func (s *Service) preferenceOrDefault(ctx context.Context, depositor, vaultID uuid.UUID) (*domain.PayoutPreference, error) {
	pref, err := s.PreferenceRepo.Get(ctx, depositor, vaultID)
	if err == nil {
		return pref, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}
	// Unset preference defaults to 100% campaign, but a claim with no
	// campaign to route to cannot settle.
	return nil, domain.E(domain.KindState, "depositor has no payout preference; set one before claiming")
}

// PendingEntitlement reports what the depositor could claim right now across
// all unclaimed distributions of the vault.
func (s *Service) PendingEntitlement(ctx context.Context, depositor, vaultID uuid.UUID) (decimal.Decimal, error) {
	dists, err := s.DistributionRepo.ListByVault(ctx, vaultID)
	if err != nil {
		return decimal.Zero, err
	}

	pending := decimal.Zero
	for _, dist := range dists {
		if _, err := s.DistributionRepo.GetClaim(ctx, dist.ID, depositor); err == nil {
			continue
		} else if !domain.IsKind(err, domain.KindNotFound) {
			return decimal.Zero, err
		}
		shares, err := s.PositionRepo.SharesAt(ctx, depositor, vaultID, dist.SnapshotSeq)
		if err != nil {
			return decimal.Zero, err
		}
		pending = pending.Add(dist.Entitlement(shares))
	}
	return pending, nil
}

// ReleaseEscrow pays a campaign's escrow bucket out to the campaign after
// its payout halt has been cleared.
func (s *Service) ReleaseEscrow(ctx context.Context, caller, campaignID uuid.UUID) (decimal.Decimal, error) {
	var released decimal.Decimal
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		campaign, err := s.CampaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return err
		}
		if campaign.PayoutsHalted {
			return domain.E(domain.KindState, "campaign payouts are still halted")
		}

		bucket, err := s.PayoutRepo.GetEscrow(ctx, campaignID)
		if err != nil {
			return err
		}
		if bucket.Amount.IsZero() {
			return nil
		}
		released = bucket.Amount

		campaign.TotalReceived = campaign.TotalReceived.Add(released)
		if err := s.CampaignRepo.Update(ctx, campaign); err != nil {
			return err
		}

		bucket.Amount = decimal.Zero
		if err := s.PayoutRepo.SaveEscrow(ctx, bucket); err != nil {
			return err
		}
		if err := s.PayoutRepo.ClearEscrowContributions(ctx, campaignID); err != nil {
			return err
		}
		if err := s.PayoutRepo.Append(ctx, &domain.PayoutEntry{
			ID:         uuid.New(),
			Kind:       domain.PayoutKindRelease,
			CampaignID: &campaignID,
			Amount:     released,
			CreatedAt:  s.now(),
		}); err != nil {
			return err
		}

		s.record(ctx, domain.NewEvent(domain.EventEscrowRelease, s.now(), caller).
			WithCampaign(campaignID).
			With("amount", released.String()))
		return nil
	})
	return released, err
}

// RefundEscrow returns a cancelled campaign's escrow to the depositors whose
// claims funded it, exactly as contributed.
func (s *Service) RefundEscrow(ctx context.Context, caller, campaignID uuid.UUID) (decimal.Decimal, error) {
	var refunded decimal.Decimal
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		campaign, err := s.CampaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return err
		}
		if campaign.Status != domain.CampaignStatusCancelled {
			return domain.E(domain.KindState, "escrow refunds require a cancelled campaign")
		}

		bucket, err := s.PayoutRepo.GetEscrow(ctx, campaignID)
		if err != nil {
			return err
		}
		if bucket.Amount.IsZero() {
			return nil
		}

		contributions, err := s.PayoutRepo.ListEscrowContributions(ctx, campaignID)
		if err != nil {
			return err
		}
		now := s.now()
		for _, contrib := range contributions {
			depositor := contrib.Depositor
			if err := s.PayoutRepo.Append(ctx, &domain.PayoutEntry{
				ID:          uuid.New(),
				Kind:        domain.PayoutKindRefund,
				CampaignID:  &campaignID,
				Beneficiary: &depositor,
				Amount:      contrib.Amount,
				CreatedAt:   now,
			}); err != nil {
				return err
			}
			refunded = refunded.Add(contrib.Amount)
		}

		bucket.Amount = bucket.Amount.Sub(refunded)
		if err := s.PayoutRepo.SaveEscrow(ctx, bucket); err != nil {
			return err
		}
		if err := s.PayoutRepo.ClearEscrowContributions(ctx, campaignID); err != nil {
			return err
		}

		s.record(ctx, domain.NewEvent(domain.EventEscrowRefund, now, caller).
			WithCampaign(campaignID).
			With("amount", refunded.String()))
		return nil
	})
	return refunded, err
}

func (s *Service) record(ctx context.Context, e *domain.Event) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.Record(ctx, e); err != nil {
		log.Printf("[ERROR] record %s event: %v", e.Type, err)
	}
}
