package governance

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// ScheduleInput represents the input for scheduling a checkpoint.
type ScheduleInput struct {
	Caller       uuid.UUID
	CampaignID   uuid.UUID
	Title        string
	VoteDeadline time.Time
	QuorumBps    int64
}

// Service is Checkpoint Governance: it schedules milestone votes, freezes
// snapshot-based voting power, finalizes outcomes, and toggles campaign
// payout halts. Stake recorded after a checkpoint's snapshot sequence
// carries zero power for it, so a transient balance increase cannot
// retroactively buy votes.
type Service struct {
	CampaignRepo   domain.CampaignRepository
	CheckpointRepo domain.CheckpointRepository
	StakeRepo      domain.StakeRepository
	PositionRepo   domain.PositionRepository
	Seq            domain.Sequence
	Atomic         domain.Atomic
	Recorder       domain.EventRecorder

	now func() time.Time
}

// NewService creates a new governance service.
func NewService(
	campaignRepo domain.CampaignRepository,
	checkpointRepo domain.CheckpointRepository,
	stakeRepo domain.StakeRepository,
	positionRepo domain.PositionRepository,
	seq domain.Sequence,
	atomic domain.Atomic,
	recorder domain.EventRecorder,
) *Service {
	return &Service{
		CampaignRepo:   campaignRepo,
		CheckpointRepo: checkpointRepo,
		StakeRepo:      stakeRepo,
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

// ScheduleCheckpoint creates a Pending checkpoint for an active campaign.
// Deadline, quorum and snapshot sequence are fixed at creation and never
// change. Curator only.
func (s *Service) ScheduleCheckpoint(ctx context.Context, input ScheduleInput) (*domain.Checkpoint, error) {
	var cp *domain.Checkpoint
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		campaign, err := s.CampaignRepo.GetByID(ctx, input.CampaignID)
		if err != nil {
			return err
		}
		if campaign.Curator != input.Caller {
			return domain.E(domain.KindAuthorization, "only the curator may schedule a checkpoint")
		}
		if campaign.Status != domain.CampaignStatusActive {
			return domain.Ef(domain.KindState, "campaign status %s cannot schedule checkpoints", campaign.Status)
		}

		now := s.now()
		if !input.VoteDeadline.After(now) {
			return domain.E(domain.KindValidation, "vote deadline must be in the future")
		}

		snapshotSeq, err := s.Seq.Current(ctx)
		if err != nil {
			return err
		}
		eligible, err := s.StakeRepo.TotalStakedAt(ctx, input.CampaignID, snapshotSeq)
		if err != nil {
			return err
		}

		cp = &domain.Checkpoint{
			ID:                 uuid.New(),
			CampaignID:         input.CampaignID,
			Title:              input.Title,
			VoteDeadline:       input.VoteDeadline,
			QuorumBps:          input.QuorumBps,
			SnapshotSeq:        snapshotSeq,
			VotesFor:           decimal.Zero,
			VotesAgainst:       decimal.Zero,
			TotalEligiblePower: eligible,
			Status:             domain.CheckpointStatusPending,
			CreatedAt:          now,
		}
		if err := cp.Validate(); err != nil {
			return err
		}
		if err := s.CheckpointRepo.Create(ctx, cp); err != nil {
			return err
		}

		s.record(ctx, domain.NewEvent(domain.EventCheckpointScheduled, now, input.Caller).
			WithCampaign(input.CampaignID).
			WithCheckpoint(cp.ID).
			With("deadline", input.VoteDeadline.Format(time.RFC3339)).
			With("eligible_power", eligible.String()))
		return nil
	})
	return cp, err
}

// Vote casts or changes a supporter's vote. On the first vote, power is
// frozen from the supporter's staked balance at the checkpoint's snapshot
// sequence; a revote flips support but reuses the frozen power.
func (s *Service) Vote(ctx context.Context, supporter, checkpointID uuid.UUID, support bool) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		cp, err := s.CheckpointRepo.GetByID(ctx, checkpointID)
		if err != nil {
			return err
		}
		if cp.Status != domain.CheckpointStatusPending {
			return domain.Ef(domain.KindState, "checkpoint is %s, voting closed", cp.Status)
		}

		now := s.now()
		if !now.Before(cp.VoteDeadline) {
			return domain.E(domain.KindTemporal, "vote cast after the deadline")
		}

		existing, err := s.CheckpointRepo.GetVote(ctx, checkpointID, supporter)
		switch {
		case err == nil:
			// Revote: flip support, frozen power unchanged.
			if existing.Support == support {
				return nil
			}
			if existing.Support {
				cp.VotesFor = cp.VotesFor.Sub(existing.Power)
				cp.VotesAgainst = cp.VotesAgainst.Add(existing.Power)
			} else {
				cp.VotesAgainst = cp.VotesAgainst.Sub(existing.Power)
				cp.VotesFor = cp.VotesFor.Add(existing.Power)
			}
			existing.Support = support
			existing.CastAt = now
			if err := s.CheckpointRepo.SaveVote(ctx, existing); err != nil {
				return err
			}
		case domain.IsKind(err, domain.KindNotFound):
			// First vote: snapshot power as of the checkpoint's reference.
			// Stake added after the snapshot counts for nothing here.
			power, err := s.StakeRepo.StakedAt(ctx, supporter, cp.CampaignID, cp.SnapshotSeq)
			if err != nil {
				return err
			}
			if power.LessThanOrEqual(decimal.Zero) {
				return domain.E(domain.KindAuthorization, "supporter has no voting power at the snapshot")
			}
			if support {
				cp.VotesFor = cp.VotesFor.Add(power)
			} else {
				cp.VotesAgainst = cp.VotesAgainst.Add(power)
			}
			if err := s.CheckpointRepo.SaveVote(ctx, &domain.VoteRecord{
				CheckpointID: checkpointID,
				Supporter:    supporter,
				Power:        power,
				Support:      support,
				CastAt:       now,
			}); err != nil {
				return err
			}
		default:
			return err
		}

		if err := s.CheckpointRepo.Update(ctx, cp); err != nil {
			return err
		}

		s.record(ctx, domain.NewEvent(domain.EventCheckpointVoted, now, supporter).
			WithCampaign(cp.CampaignID).
			WithCheckpoint(cp.ID).
			With("support", boolString(support)))
		return nil
	})
}

// Finalize resolves a checkpoint after its deadline. Quorum and a strict
// For majority pass it; anything else fails it, halting the campaign's
// payouts, pausing the campaign, and lifting the holding-period restriction
// on the campaign's vault so supporters may exit.
func (s *Service) Finalize(ctx context.Context, caller, checkpointID uuid.UUID) (*domain.Checkpoint, error) {
	var cp *domain.Checkpoint
	err := s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		var err error
		cp, err = s.CheckpointRepo.GetByID(ctx, checkpointID)
		if err != nil {
			return err
		}
		if cp.Status != domain.CheckpointStatusPending {
			return domain.Ef(domain.KindState, "checkpoint already finalized as %s", cp.Status)
		}

		now := s.now()
		if now.Before(cp.VoteDeadline) {
			return domain.E(domain.KindTemporal, "cannot finalize before the vote deadline")
		}

		outcome := cp.Outcome()
		if err := cp.Transition(outcome); err != nil {
			return err
		}
		if err := s.CheckpointRepo.Update(ctx, cp); err != nil {
			return err
		}

		if outcome == domain.CheckpointStatusFailed {
			campaign, err := s.CampaignRepo.GetByID(ctx, cp.CampaignID)
			if err != nil {
				return err
			}
			campaign.PayoutsHalted = true
			if campaign.CanTransition(domain.CampaignStatusPaused) {
				if err := campaign.Transition(domain.CampaignStatusPaused); err != nil {
					return err
				}
			}
			if err := s.CampaignRepo.Update(ctx, campaign); err != nil {
				return err
			}

			// Supporters locked in for this campaign may now exit.
			if err := s.liftVaultRestrictions(ctx, campaign.ID); err != nil {
				return err
			}

			s.record(ctx, domain.NewEvent(domain.EventCampaignHalted, now, caller).
				WithCampaign(campaign.ID).
				WithCheckpoint(cp.ID))
		}

		s.record(ctx, domain.NewEvent(domain.EventCheckpointFinalized, now, caller).
			WithCampaign(cp.CampaignID).
			WithCheckpoint(cp.ID).
			With("outcome", string(outcome)).
			With("votes_for", cp.VotesFor.String()).
			With("votes_against", cp.VotesAgainst.String()))
		return nil
	})
	return cp, err
}

// ClearHalt lifts a failed-checkpoint payout halt after remediation without
// touching the campaign's status. Curator only. Escrowed entitlements become
// releasable once the halt is cleared.
func (s *Service) ClearHalt(ctx context.Context, caller, campaignID uuid.UUID) error {
	return s.Atomic.RunAtomic(ctx, func(ctx context.Context) error {
		campaign, err := s.CampaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return err
		}
		if campaign.Curator != caller {
			return domain.E(domain.KindAuthorization, "only the curator may clear a payout halt")
		}
		if !campaign.PayoutsHalted {
			return domain.E(domain.KindState, "campaign payouts are not halted")
		}
		campaign.PayoutsHalted = false
		if err := s.CampaignRepo.Update(ctx, campaign); err != nil {
			return err
		}
		s.record(ctx, domain.NewEvent(domain.EventCampaignResumed, s.now(), caller).
			WithCampaign(campaign.ID))
		return nil
	})
}

// liftVaultRestrictions unlocks campaign-designated tranches across all
// positions. Lifting is idempotent.
func (s *Service) liftVaultRestrictions(ctx context.Context, campaignID uuid.UUID) error {
	return s.PositionRepo.LiftCampaignRestriction(ctx, campaignID)
}

// GetCheckpoint returns a checkpoint by ID.
func (s *Service) GetCheckpoint(ctx context.Context, checkpointID uuid.UUID) (*domain.Checkpoint, error) {
	return s.CheckpointRepo.GetByID(ctx, checkpointID)
}

// ListCheckpoints returns a campaign's checkpoints.
func (s *Service) ListCheckpoints(ctx context.Context, campaignID uuid.UUID) ([]*domain.Checkpoint, error) {
	return s.CheckpointRepo.ListByCampaign(ctx, campaignID)
}

// GetVote returns a supporter's recorded vote.
func (s *Service) GetVote(ctx context.Context, checkpointID, supporter uuid.UUID) (*domain.VoteRecord, error) {
	return s.CheckpointRepo.GetVote(ctx, checkpointID, supporter)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (s *Service) record(ctx context.Context, e *domain.Event) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.Record(ctx, e); err != nil {
		log.Printf("[ERROR] record %s event: %v", e.Type, err)
	}
}
