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

// distributionRepository implements domain.DistributionRepository.
type distributionRepository struct {
	db *DB
}

// NewDistributionRepository creates a new distribution repository.
func NewDistributionRepository(db *DB) domain.DistributionRepository {
	return &distributionRepository{db: db}
}

const distributionColumns = `id, vault_id, gross_profit, fee, amount,
	total_shares, snapshot_seq, claimed_shares, claimed_amount, created_at,
	schema_version`

func scanDistribution(row rowScanner) (*domain.Distribution, error) {
	var d domain.Distribution
	var grossStr, feeStr, amountStr, totalStr, claimedSharesStr, claimedAmountStr string

	err := row.Scan(
		&d.ID, &d.VaultID, &grossStr, &feeStr, &amountStr,
		&totalStr, &d.SnapshotSeq, &claimedSharesStr, &claimedAmountStr, &d.CreatedAt,
		&d.SchemaVersion,
	)
	if err != nil {
		return nil, err
	}

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&d.GrossProfit, grossStr},
		{&d.Fee, feeStr},
		{&d.Amount, amountStr},
		{&d.TotalShares, totalStr},
		{&d.ClaimedShares, claimedSharesStr},
		{&d.ClaimedAmount, claimedAmountStr},
	} {
		dec, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse distribution decimal column: %w", err)
		}
		*field.dst = dec
	}
	return &d, nil
}

// GetByID retrieves a distribution by its ID.
func (r *distributionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM distributions WHERE id = $1`

	d, err := scanDistribution(r.db.q(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Ef(domain.KindNotFound, "distribution %s not found", id)
		}
		return nil, fmt.Errorf("failed to get distribution by ID: %w", err)
	}
	return d, nil
}

// Create inserts a new distribution.
func (r *distributionRepository) Create(ctx context.Context, d *domain.Distribution) error {
	query := `
		INSERT INTO distributions (` + distributionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.q(ctx).ExecContext(ctx, query,
		d.ID, d.VaultID, d.GrossProfit.String(), d.Fee.String(), d.Amount.String(),
		d.TotalShares.String(), d.SnapshotSeq, d.ClaimedShares.String(),
		d.ClaimedAmount.String(), d.CreatedAt, d.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to create distribution: %w", err)
	}
	return nil
}

// Update rewrites a distribution's claim progress. The snapshot fields are
// immutable after creation.
func (r *distributionRepository) Update(ctx context.Context, d *domain.Distribution) error {
	query := `
		UPDATE distributions SET
			claimed_shares = $2, claimed_amount = $3, schema_version = $4
		WHERE id = $1
	`
	res, err := r.db.q(ctx).ExecContext(ctx, query,
		d.ID, d.ClaimedShares.String(), d.ClaimedAmount.String(), d.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update distribution: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check distribution update: %w", err)
	}
	if rows == 0 {
		return domain.Ef(domain.KindNotFound, "distribution %s not found", d.ID)
	}
	return nil
}

// ListByVault returns a vault's distributions, oldest first.
func (r *distributionRepository) ListByVault(ctx context.Context, vaultID uuid.UUID) ([]*domain.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM distributions WHERE vault_id = $1 ORDER BY created_at`

	rows, err := r.db.q(ctx).QueryContext(ctx, query, vaultID)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributions: %w", err)
	}
	defer rows.Close()

	var dists []*domain.Distribution
	for rows.Next() {
		d, err := scanDistribution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distribution: %w", err)
		}
		dists = append(dists, d)
	}
	return dists, rows.Err()
}

// GetClaim retrieves a claim, or a NotFound error if unclaimed.
func (r *distributionRepository) GetClaim(ctx context.Context, distributionID, depositor uuid.UUID) (*domain.ClaimRecord, error) {
	c := &domain.ClaimRecord{DistributionID: distributionID, Depositor: depositor}
	var sharesStr, entitlementStr, campaignStr, beneficiaryStr string
	err := r.db.q(ctx).QueryRowContext(ctx, `
		SELECT shares, entitlement, campaign_amount, beneficiary_amount, escrowed, claimed_at, schema_version
		FROM claim_records WHERE distribution_id = $1 AND depositor = $2`,
		distributionID, depositor,
	).Scan(&sharesStr, &entitlementStr, &campaignStr, &beneficiaryStr, &c.Escrowed, &c.ClaimedAt, &c.SchemaVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.E(domain.KindNotFound, "claim not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&c.Shares, sharesStr},
		{&c.Entitlement, entitlementStr},
		{&c.CampaignAmount, campaignStr},
		{&c.BeneficiaryAmount, beneficiaryStr},
	} {
		dec, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse claim decimal column: %w", err)
		}
		*field.dst = dec
	}
	return c, nil
}

// SaveClaim inserts a claim record. The primary key makes double claims a
// database-level conflict on top of the service-level check.
func (r *distributionRepository) SaveClaim(ctx context.Context, c *domain.ClaimRecord) error {
	_, err := r.db.q(ctx).ExecContext(ctx, `
		INSERT INTO claim_records (distribution_id, depositor, shares, entitlement, campaign_amount, beneficiary_amount, escrowed, claimed_at, schema_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.DistributionID, c.Depositor, c.Shares.String(), c.Entitlement.String(),
		c.CampaignAmount.String(), c.BeneficiaryAmount.String(), c.Escrowed, c.ClaimedAt, c.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to save claim: %w", err)
	}
	return nil
}
