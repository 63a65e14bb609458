package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// preferenceRepository implements domain.PreferenceRepository.
type preferenceRepository struct {
	db *DB
}

// NewPreferenceRepository creates a new preference repository.
func NewPreferenceRepository(db *DB) domain.PreferenceRepository {
	return &preferenceRepository{db: db}
}

// Get retrieves a preference, or a NotFound error if unset.
func (r *preferenceRepository) Get(ctx context.Context, depositor, vaultID uuid.UUID) (*domain.PayoutPreference, error) {
	query := `
		SELECT campaign_id, beneficiary, campaign_bps, schema_version
		FROM payout_preferences
		WHERE depositor = $1 AND vault_id = $2
	`

	pref := &domain.PayoutPreference{Depositor: depositor, VaultID: vaultID}
	var beneficiary sql.NullString
	err := r.db.q(ctx).QueryRowContext(ctx, query, depositor, vaultID).Scan(
		&pref.CampaignID, &beneficiary, &pref.CampaignBps, &pref.SchemaVersion,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.E(domain.KindNotFound, "preference not set")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	if beneficiary.Valid {
		id, err := uuid.Parse(beneficiary.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse beneficiary: %w", err)
		}
		pref.Beneficiary = id
	}
	return pref, nil
}

// Save upserts the preference.
func (r *preferenceRepository) Save(ctx context.Context, p *domain.PayoutPreference) error {
	var beneficiary interface{}
	if p.Beneficiary != uuid.Nil {
		beneficiary = p.Beneficiary
	}
	_, err := r.db.q(ctx).ExecContext(ctx, `
		INSERT INTO payout_preferences (depositor, vault_id, campaign_id, beneficiary, campaign_bps, schema_version)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (depositor, vault_id)
		DO UPDATE SET campaign_id = $3, beneficiary = $4, campaign_bps = $5, schema_version = $6`,
		p.Depositor, p.VaultID, p.CampaignID, beneficiary, p.CampaignBps, p.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}
