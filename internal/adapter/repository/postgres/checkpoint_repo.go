package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// checkpointRepository implements domain.CheckpointRepository.
type checkpointRepository struct {
	db *DB
}

// NewCheckpointRepository creates a new checkpoint repository.
func NewCheckpointRepository(db *DB) domain.CheckpointRepository {
	return &checkpointRepository{db: db}
}

const checkpointColumns = `id, campaign_id, title, vote_deadline, quorum_bps,
	snapshot_seq, votes_for, votes_against, total_eligible_power, status,
	created_at, schema_version`

func scanCheckpoint(row rowScanner) (*domain.Checkpoint, error) {
	var cp domain.Checkpoint
	var status string
	var forStr, againstStr, eligibleStr string

	err := row.Scan(
		&cp.ID, &cp.CampaignID, &cp.Title, &cp.VoteDeadline, &cp.QuorumBps,
		&cp.SnapshotSeq, &forStr, &againstStr, &eligibleStr, &status,
		&cp.CreatedAt, &cp.SchemaVersion,
	)
	if err != nil {
		return nil, err
	}
	cp.Status = domain.CheckpointStatus(status)

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&cp.VotesFor, forStr},
		{&cp.VotesAgainst, againstStr},
		{&cp.TotalEligiblePower, eligibleStr},
	} {
		d, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse checkpoint decimal column: %w", err)
		}
		*field.dst = d
	}
	return &cp, nil
}

// GetByID retrieves a checkpoint by its ID.
func (r *checkpointRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Checkpoint, error) {
	query := `SELECT ` + checkpointColumns + ` FROM checkpoints WHERE id = $1`

	cp, err := scanCheckpoint(r.db.q(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Ef(domain.KindNotFound, "checkpoint %s not found", id)
		}
		return nil, fmt.Errorf("failed to get checkpoint by ID: %w", err)
	}
	return cp, nil
}

// Create inserts a new checkpoint.
func (r *checkpointRepository) Create(ctx context.Context, cp *domain.Checkpoint) error {
	query := `
		INSERT INTO checkpoints (` + checkpointColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.q(ctx).ExecContext(ctx, query,
		cp.ID, cp.CampaignID, cp.Title, cp.VoteDeadline, cp.QuorumBps,
		cp.SnapshotSeq, cp.VotesFor.String(), cp.VotesAgainst.String(),
		cp.TotalEligiblePower.String(), string(cp.Status), cp.CreatedAt, cp.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint: %w", err)
	}
	return nil
}

// Update rewrites a checkpoint's tallies and status. Deadline, quorum and
// snapshot are fixed at creation and deliberately not updatable here.
func (r *checkpointRepository) Update(ctx context.Context, cp *domain.Checkpoint) error {
	query := `
		UPDATE checkpoints SET
			votes_for = $2, votes_against = $3, status = $4, schema_version = $5
		WHERE id = $1
	`
	res, err := r.db.q(ctx).ExecContext(ctx, query,
		cp.ID, cp.VotesFor.String(), cp.VotesAgainst.String(), string(cp.Status), cp.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update checkpoint: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check checkpoint update: %w", err)
	}
	if rows == 0 {
		return domain.Ef(domain.KindNotFound, "checkpoint %s not found", cp.ID)
	}
	return nil
}

// ListByCampaign returns a campaign's checkpoints.
func (r *checkpointRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*domain.Checkpoint, error) {
	query := `SELECT ` + checkpointColumns + ` FROM checkpoints WHERE campaign_id = $1 ORDER BY created_at`

	rows, err := r.db.q(ctx).QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	defer rows.Close()

	var checkpoints []*domain.Checkpoint
	for rows.Next() {
		cp, err := scanCheckpoint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint: %w", err)
		}
		checkpoints = append(checkpoints, cp)
	}
	return checkpoints, rows.Err()
}

// HasPending reports whether the campaign has an unfinalized checkpoint.
func (r *checkpointRepository) HasPending(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.q(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM checkpoints WHERE campaign_id = $1 AND status = $2)`,
		campaignID, string(domain.CheckpointStatusPending),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending checkpoints: %w", err)
	}
	return exists, nil
}

// GetVote retrieves a vote, or a NotFound error if never cast.
func (r *checkpointRepository) GetVote(ctx context.Context, checkpointID, supporter uuid.UUID) (*domain.VoteRecord, error) {
	v := &domain.VoteRecord{CheckpointID: checkpointID, Supporter: supporter}
	var powerStr string
	err := r.db.q(ctx).QueryRowContext(ctx, `
		SELECT power, support, cast_at, schema_version
		FROM vote_records WHERE checkpoint_id = $1 AND supporter = $2`,
		checkpointID, supporter,
	).Scan(&powerStr, &v.Support, &v.CastAt, &v.SchemaVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.E(domain.KindNotFound, "vote not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	if v.Power, err = decimal.NewFromString(powerStr); err != nil {
		return nil, fmt.Errorf("failed to parse vote power: %w", err)
	}
	return v, nil
}

// SaveVote upserts a vote. Power never changes on conflict: it was frozen at
// the first cast.
func (r *checkpointRepository) SaveVote(ctx context.Context, v *domain.VoteRecord) error {
	_, err := r.db.q(ctx).ExecContext(ctx, `
		INSERT INTO vote_records (checkpoint_id, supporter, power, support, cast_at, schema_version)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (checkpoint_id, supporter)
		DO UPDATE SET support = $4, cast_at = $5`,
		v.CheckpointID, v.Supporter, v.Power.String(), v.Support, v.CastAt, v.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}
