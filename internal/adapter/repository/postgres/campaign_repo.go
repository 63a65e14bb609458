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

// campaignRepository implements domain.CampaignRepository.
type campaignRepository struct {
	db *DB
}

// NewCampaignRepository creates a new campaign repository.
func NewCampaignRepository(db *DB) domain.CampaignRepository {
	return &campaignRepository{db: db}
}

const campaignColumns = `id, name, curator, status, total_received,
	stake_amount, funding_target, payouts_halted, created_at, schema_version`

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var c domain.Campaign
	var status string
	var receivedStr, stakeStr, targetStr string

	err := row.Scan(
		&c.ID, &c.Name, &c.Curator, &status, &receivedStr,
		&stakeStr, &targetStr, &c.PayoutsHalted, &c.CreatedAt, &c.SchemaVersion,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CampaignStatus(status)

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&c.TotalReceived, receivedStr},
		{&c.StakeAmount, stakeStr},
		{&c.FundingTarget, targetStr},
	} {
		d, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse campaign decimal column: %w", err)
		}
		*field.dst = d
	}
	return &c, nil
}

// GetByID retrieves a campaign by its ID.
func (r *campaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	c, err := scanCampaign(r.db.q(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Ef(domain.KindNotFound, "campaign %s not found", id)
		}
		return nil, fmt.Errorf("failed to get campaign by ID: %w", err)
	}
	return c, nil
}

// Create inserts a new campaign.
func (r *campaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	query := `
		INSERT INTO campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.q(ctx).ExecContext(ctx, query,
		c.ID, c.Name, c.Curator, string(c.Status), c.TotalReceived.String(),
		c.StakeAmount.String(), c.FundingTarget.String(), c.PayoutsHalted, c.CreatedAt, c.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// Update rewrites a campaign's mutable state.
func (r *campaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	query := `
		UPDATE campaigns SET
			name = $2, curator = $3, status = $4, total_received = $5,
			stake_amount = $6, funding_target = $7, payouts_halted = $8,
			schema_version = $9
		WHERE id = $1
	`
	res, err := r.db.q(ctx).ExecContext(ctx, query,
		c.ID, c.Name, c.Curator, string(c.Status), c.TotalReceived.String(),
		c.StakeAmount.String(), c.FundingTarget.String(), c.PayoutsHalted, c.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check campaign update: %w", err)
	}
	if rows == 0 {
		return domain.Ef(domain.KindNotFound, "campaign %s not found", c.ID)
	}
	return nil
}

// List returns campaigns, optionally filtered by status.
func (r *campaignRepository) List(ctx context.Context, statusFilter domain.CampaignStatus) ([]*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	var args []interface{}
	if statusFilter != "" {
		query += ` WHERE status = $1`
		args = append(args, string(statusFilter))
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
