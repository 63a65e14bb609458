package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// stakeRepository implements domain.StakeRepository over the append-only
// supporter_stakes table. Balances are signed folds over the rows; no
// balance column exists to drift out of sync.
type stakeRepository struct {
	db *DB
}

// NewStakeRepository creates a new stake repository.
func NewStakeRepository(db *DB) domain.StakeRepository {
	return &stakeRepository{db: db}
}

// Append records one signed stake movement.
func (r *stakeRepository) Append(ctx context.Context, s *domain.SupporterStake) error {
	_, err := r.db.q(ctx).ExecContext(ctx, `
		INSERT INTO supporter_stakes (id, supporter, campaign_id, vault_id, amount, seq, created_at, schema_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.Supporter, s.CampaignID, s.VaultID, s.Amount.String(), s.Seq, s.CreatedAt, s.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to append stake movement: %w", err)
	}
	return nil
}

func (r *stakeRepository) sumStakes(ctx context.Context, query string, args ...interface{}) (decimal.Decimal, error) {
	var sumStr sql.NullString
	err := r.db.q(ctx).QueryRowContext(ctx, query, args...).Scan(&sumStr)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !sumStr.Valid) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fold stake movements: %w", err)
	}
	sum, err := decimal.NewFromString(sumStr.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse stake sum: %w", err)
	}
	return sum, nil
}

// StakedAt returns the supporter's staked balance for the campaign as of seq.
func (r *stakeRepository) StakedAt(ctx context.Context, supporter, campaignID uuid.UUID, seq int64) (decimal.Decimal, error) {
	return r.sumStakes(ctx, `
		SELECT SUM(amount) FROM supporter_stakes
		WHERE supporter = $1 AND campaign_id = $2 AND seq <= $3`,
		supporter, campaignID, seq,
	)
}

// TotalStakedAt returns the campaign's total staked balance as of seq.
func (r *stakeRepository) TotalStakedAt(ctx context.Context, campaignID uuid.UUID, seq int64) (decimal.Decimal, error) {
	return r.sumStakes(ctx, `
		SELECT SUM(amount) FROM supporter_stakes
		WHERE campaign_id = $1 AND seq <= $2`,
		campaignID, seq,
	)
}

// Staked returns the supporter's current staked balance for the campaign.
func (r *stakeRepository) Staked(ctx context.Context, supporter, campaignID uuid.UUID) (decimal.Decimal, error) {
	return r.StakedAt(ctx, supporter, campaignID, math.MaxInt64)
}
