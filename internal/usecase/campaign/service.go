package campaign

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// SubmitInput represents the input for submitting a campaign.
type SubmitInput struct {
	Curator       uuid.UUID
	Name          string
	FundingTarget decimal.Decimal
	StakeAmount   decimal.Decimal
}

// Service owns the campaign lifecycle and supporter staking. All status
// changes go through the campaign's transition table; there are no ad hoc
// status writes anywhere else.
type Service struct {
	CampaignRepo   domain.CampaignRepository
	StakeRepo      domain.StakeRepository
	CheckpointRepo domain.CheckpointRepository
	PositionRepo   domain.PositionRepository
	Seq            domain.Sequence
	Atomic         domain.Atomic
	Recorder       domain.EventRecorder

	now func() time.Time
}

// NewService creates a new campaign service.
func NewService(
	campaignRepo domain.CampaignRepository,
	stakeRepo domain.StakeRepository,
	checkpointRepo domain.CheckpointRepository,
	positionRepo domain.PositionRepository,
	seq domain.Sequence,
	atomic domain.Atomic,
	recorder domain.EventRecorder,
) *Service {
	return &Service{
		CampaignRepo:   campaignRepo,
		StakeRepo:      stakeRepo,
		CheckpointRepo: checkpointRepo,
		PositionRepo:   positionRepo,
		Seq:            seq,
		Atomic:         atomic,
		Recorder:       recorder,
		now:            time.Now,
	}
}

// WithClock overrides the service clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit registers a new campaign in Submitted status.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Campaign, error) {
	c := &domain.Campaign{
		ID:            uuid.New(),
		Name:          input.Name,
		Curator:       input.Curator,
		Status:        domain.CampaignStatusSubmitted,
		TotalReceived: decimal.Zero,
		StakeAmount:   input.StakeAmount,
		FundingTarget: input.FundingTarget,
		CreatedAt:     s.now(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.CampaignRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Approve moves a submitted campaign to Approved. Privileged caller.
func (s *Service) Approve(ctx context.Context, caller, campaignID uuid.UUID) error {
	return s.transition(ctx, caller, campaignID, domain.CampaignStatusApproved, false)
}

// Activate opens an approved campaign for designated deposits and payouts.
// Curator only.
func (s *Service) Activate(ctx context.Context, caller, campaignID uuid.UUID) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		c, err := s.CampaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return err
		}
		if c.Curator != caller {
			return domain.E(domain.KindAuthorization, "only the curator may activate a campaign")
		}
		if err := c.Transition(domain.CampaignStatusActive); err != nil {
			return err
		}
		return s.CampaignRepo.Update(ctx, c)
	})
}

// Pause halts the campaign and its payouts.
func (s *Service) Pause(ctx context.Context, caller, campaignID uuid.UUID) error {
	return s.transition(ctx, caller, campaignID, domain.CampaignStatusPaused, true)
}

// Resume reactivates a paused campaign and clears the payout halt.
func (s *Service) Resume(ctx context.Context, caller, campaignID uuid.UUID) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		c, err := s.CampaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return err
		}
		if err := c.Transition(domain.CampaignStatusActive); err != nil {
			return err
		}
		c.PayoutsHalted = false
		if err := s.CampaignRepo.Update(ctx, c); err != nil {
			return err
		}
		s.record(ctx, domain.NewEvent(domain.EventCampaignResumed, s.now(), caller).WithCampaign(c.ID))
		return nil
	})
}

// Complete marks the campaign finished. Curator or privileged caller.
func (s *Service) Complete(ctx context.Context, caller, campaignID uuid.UUID) error {
	return s.transition(ctx, caller, campaignID, domain.CampaignStatusCompleted, false)
}

// Cancel terminates the campaign. Escrowed entitlements become refundable.
func (s *Service) Cancel(ctx context.Context, caller, campaignID uuid.UUID) error {
	return s.transition(ctx, caller, campaignID, domain.CampaignStatusCancelled, false)
}

func (s *Service) transition(ctx context.Context, caller, campaignID uuid.UUID, to domain.CampaignStatus, halt bool) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		c, err := s.CampaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return err
		}
		if err := c.Transition(to); err != nil {
			return err
		}
		if halt {
			c.PayoutsHalted = true
		}
		if err := s.CampaignRepo.Update(ctx, c); err != nil {
			return err
		}
		if halt {
			s.record(ctx, domain.NewEvent(domain.EventCampaignHalted, s.now(), caller).WithCampaign(c.ID))
		}
		return nil
	})
}

// Stake adds supporter stake to an active campaign, stamped with the global
// sequence so later checkpoints can snapshot it.
func (s *Service) Stake(ctx context.Context, supporter, campaignID, vaultID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.E(domain.KindValidation, "stake amount must be positive")
	}
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		c, err := s.CampaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return err
		}
		if c.Status != domain.CampaignStatusActive {
			return domain.Ef(domain.KindState, "campaign status %s does not accept stake", c.Status)
		}
		seq, err := s.Seq.Next(ctx)
		if err != nil {
			return err
		}
		return s.StakeRepo.Append(ctx, &domain.SupporterStake{
			ID:         uuid.New(),
			Supporter:  supporter,
			CampaignID: campaignID,
			VaultID:    vaultID,
			Amount:     amount,
			Seq:        seq,
			CreatedAt:  s.now(),
		})
	})
}

// Unstake withdraws supporter stake. Blocked while a checkpoint vote is
// pending, unless the campaign is terminal or its payouts were halted by a
// failed checkpoint (supporters may then exit freely).
func (s *Service) Unstake(ctx context.Context, supporter, campaignID, vaultID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.E(domain.KindValidation, "unstake amount must be positive")
	}
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		c, err := s.CampaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return err
		}

		staked, err := s.StakeRepo.Staked(ctx, supporter, campaignID)
		if err != nil {
			return err
		}
		if staked.LessThan(amount) {
			return domain.Ef(domain.KindIntegrity, "staked balance %s below unstake amount %s", staked, amount)
		}

		exitAllowed := c.IsTerminal() || c.PayoutsHalted
		if !exitAllowed {
			pending, err := s.CheckpointRepo.HasPending(ctx, campaignID)
			if err != nil {
				return err
			}
			if pending {
				return domain.E(domain.KindState, "cannot unstake while a checkpoint vote is pending")
			}
		}

		seq, err := s.Seq.Next(ctx)
		if err != nil {
			return err
		}
		return s.StakeRepo.Append(ctx, &domain.SupporterStake{
			ID:         uuid.New(),
			Supporter:  supporter,
			CampaignID: campaignID,
			VaultID:    vaultID,
			Amount:     amount.Neg(),
			Seq:        seq,
			CreatedAt:  s.now(),
		})
	})
}

// Get returns a campaign by ID.
func (s *Service) Get(ctx context.Context, campaignID uuid.UUID) (*domain.Campaign, error) {
	return s.CampaignRepo.GetByID(ctx, campaignID)
}

// List returns campaigns, optionally filtered by status.
func (s *Service) List(ctx context.Context, statusFilter domain.CampaignStatus) ([]*domain.Campaign, error) {
	return s.CampaignRepo.List(ctx, statusFilter)
}

func (s *Service) record(ctx context.Context, e *domain.Event) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.Record(ctx, e); err != nil {
		log.Printf("[ERROR] record %s event: %v", e.Type, err)
	}
}
