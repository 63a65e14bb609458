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

// payoutRepository implements domain.PayoutRepository. payout_entries is the
// append-only executed ledger; escrow buckets and their contribution index
// are the only mutable rows here.
type payoutRepository struct {
	db *DB
}

// NewPayoutRepository creates a new payout repository.
func NewPayoutRepository(db *DB) domain.PayoutRepository {
	return &payoutRepository{db: db}
}

// Append records one executed payout.
func (r *payoutRepository) Append(ctx context.Context, e *domain.PayoutEntry) error {
	var vaultID, distributionID, campaignID, beneficiary interface{}
	if e.VaultID != uuid.Nil {
		vaultID = e.VaultID
	}
	if e.DistributionID != uuid.Nil {
		distributionID = e.DistributionID
	}
	if e.CampaignID != nil {
		campaignID = *e.CampaignID
	}
	if e.Beneficiary != nil {
		beneficiary = *e.Beneficiary
	}

	_, err := r.db.q(ctx).ExecContext(ctx, `
		INSERT INTO payout_entries (id, vault_id, distribution_id, kind, campaign_id, beneficiary, amount, created_at, schema_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, vaultID, distributionID, string(e.Kind), campaignID, beneficiary,
		e.Amount.String(), e.CreatedAt, e.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to append payout entry: %w", err)
	}
	return nil
}

// ListByDistribution returns the executed payouts of one distribution.
func (r *payoutRepository) ListByDistribution(ctx context.Context, distributionID uuid.UUID) ([]*domain.PayoutEntry, error) {
	rows, err := r.db.q(ctx).QueryContext(ctx, `
		SELECT id, vault_id, distribution_id, kind, campaign_id, beneficiary, amount, created_at, schema_version
		FROM payout_entries WHERE distribution_id = $1 ORDER BY created_at`,
		distributionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payout entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.PayoutEntry
	for rows.Next() {
		var e domain.PayoutEntry
		var vaultID, distID, campaignID, beneficiary sql.NullString
		var kind, amountStr string
		if err := rows.Scan(&e.ID, &vaultID, &distID, &kind, &campaignID, &beneficiary, &amountStr, &e.CreatedAt, &e.SchemaVersion); err != nil {
			return nil, fmt.Errorf("failed to scan payout entry: %w", err)
		}
		e.Kind = domain.PayoutKind(kind)
		if e.Amount, err = decimal.NewFromString(amountStr); err != nil {
			return nil, fmt.Errorf("failed to parse payout amount: %w", err)
		}
		if vaultID.Valid {
			id, err := uuid.Parse(vaultID.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse payout vault_id: %w", err)
			}
			e.VaultID = id
		}
		if distID.Valid {
			id, err := uuid.Parse(distID.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse payout distribution_id: %w", err)
			}
			e.DistributionID = id
		}
		if campaignID.Valid {
			id, err := uuid.Parse(campaignID.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse payout campaign_id: %w", err)
			}
			e.CampaignID = &id
		}
		if beneficiary.Valid {
			id, err := uuid.Parse(beneficiary.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse payout beneficiary: %w", err)
			}
			e.Beneficiary = &id
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// GetEscrow retrieves a campaign's escrow bucket, zero-valued if absent.
func (r *payoutRepository) GetEscrow(ctx context.Context, campaignID uuid.UUID) (*domain.EscrowBucket, error) {
	b := &domain.EscrowBucket{CampaignID: campaignID, Amount: decimal.Zero}
	var amountStr string
	err := r.db.q(ctx).QueryRowContext(ctx,
		`SELECT amount, schema_version FROM escrow_buckets WHERE campaign_id = $1`,
		campaignID,
	).Scan(&amountStr, &b.SchemaVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get escrow bucket: %w", err)
	}
	if b.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return nil, fmt.Errorf("failed to parse escrow amount: %w", err)
	}
	return b, nil
}

// SaveEscrow upserts a campaign's escrow bucket.
func (r *payoutRepository) SaveEscrow(ctx context.Context, b *domain.EscrowBucket) error {
	_, err := r.db.q(ctx).ExecContext(ctx, `
		INSERT INTO escrow_buckets (campaign_id, amount, schema_version)
		VALUES ($1, $2, $3)
		ON CONFLICT (campaign_id) DO UPDATE SET amount = $2, schema_version = $3`,
		b.CampaignID, b.Amount.String(), b.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to save escrow bucket: %w", err)
	}
	return nil
}

// AddEscrowContribution accumulates a depositor's share of the escrow.
func (r *payoutRepository) AddEscrowContribution(ctx context.Context, c *domain.EscrowContribution) error {
	_, err := r.db.q(ctx).ExecContext(ctx, `
		INSERT INTO escrow_contributions (campaign_id, depositor, amount, schema_version)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (campaign_id, depositor)
		DO UPDATE SET amount = escrow_contributions.amount + EXCLUDED.amount`,
		c.CampaignID, c.Depositor, c.Amount.String(), c.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to add escrow contribution: %w", err)
	}
	return nil
}

// ListEscrowContributions returns who funded a campaign's escrow and by how
// much.
func (r *payoutRepository) ListEscrowContributions(ctx context.Context, campaignID uuid.UUID) ([]*domain.EscrowContribution, error) {
	rows, err := r.db.q(ctx).QueryContext(ctx, `
		SELECT depositor, amount, schema_version
		FROM escrow_contributions WHERE campaign_id = $1`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list escrow contributions: %w", err)
	}
	defer rows.Close()

	var contributions []*domain.EscrowContribution
	for rows.Next() {
		c := &domain.EscrowContribution{CampaignID: campaignID}
		var amountStr string
		if err := rows.Scan(&c.Depositor, &amountStr, &c.SchemaVersion); err != nil {
			return nil, fmt.Errorf("failed to scan escrow contribution: %w", err)
		}
		if c.Amount, err = decimal.NewFromString(amountStr); err != nil {
			return nil, fmt.Errorf("failed to parse escrow contribution: %w", err)
		}
		contributions = append(contributions, c)
	}
	return contributions, rows.Err()
}

// ClearEscrowContributions removes a campaign's contribution index after a
// release or refund settles it.
func (r *payoutRepository) ClearEscrowContributions(ctx context.Context, campaignID uuid.UUID) error {
	_, err := r.db.q(ctx).ExecContext(ctx,
		`DELETE FROM escrow_contributions WHERE campaign_id = $1`,
		campaignID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear escrow contributions: %w", err)
	}
	return nil
}
