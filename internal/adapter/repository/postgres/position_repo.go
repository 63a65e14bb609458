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

// positionRepository implements domain.PositionRepository. A position spans
// three tables: the share balance, its lock tranches, and its allowances.
// Save rewrites the tranche and allowance sets wholesale; the share history
// in share_snapshots is append-only and never rewritten.
type positionRepository struct {
	db *DB
}

// NewPositionRepository creates a new position repository.
func NewPositionRepository(db *DB) domain.PositionRepository {
	return &positionRepository{db: db}
}

// Get retrieves a position, or a zero position if none exists yet.
func (r *positionRepository) Get(ctx context.Context, depositor, vaultID uuid.UUID) (*domain.Position, error) {
	q := r.db.q(ctx)

	pos := domain.NewPosition(depositor, vaultID)
	var sharesStr string
	err := q.QueryRowContext(ctx,
		`SELECT shares, schema_version FROM positions WHERE depositor = $1 AND vault_id = $2`,
		depositor, vaultID,
	).Scan(&sharesStr, &pos.SchemaVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return pos, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	if pos.Shares, err = decimal.NewFromString(sharesStr); err != nil {
		return nil, fmt.Errorf("failed to parse position shares: %w", err)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT shares, campaign_id, unlock_time, created_at, restriction_lifted
		 FROM lock_tranches WHERE depositor = $1 AND vault_id = $2 ORDER BY created_at`,
		depositor, vaultID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lock tranches: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tr domain.LockTranche
		var trSharesStr string
		if err := rows.Scan(&trSharesStr, &tr.CampaignID, &tr.UnlockTime, &tr.CreatedAt, &tr.RestrictionLifted); err != nil {
			return nil, fmt.Errorf("failed to scan lock tranche: %w", err)
		}
		if tr.Shares, err = decimal.NewFromString(trSharesStr); err != nil {
			return nil, fmt.Errorf("failed to parse tranche shares: %w", err)
		}
		pos.LockTranches = append(pos.LockTranches, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	allowRows, err := q.QueryContext(ctx,
		`SELECT spender, shares FROM allowances WHERE depositor = $1 AND vault_id = $2`,
		depositor, vaultID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	defer allowRows.Close()
	for allowRows.Next() {
		var spender uuid.UUID
		var allowStr string
		if err := allowRows.Scan(&spender, &allowStr); err != nil {
			return nil, fmt.Errorf("failed to scan allowance: %w", err)
		}
		allow, err := decimal.NewFromString(allowStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse allowance: %w", err)
		}
		pos.Allowances[spender] = allow
	}
	return pos, allowRows.Err()
}

// Save upserts the position and rewrites its tranche and allowance sets.
func (r *positionRepository) Save(ctx context.Context, p *domain.Position) error {
	q := r.db.q(ctx)

	_, err := q.ExecContext(ctx, `
		INSERT INTO positions (depositor, vault_id, shares, schema_version)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (depositor, vault_id) DO UPDATE SET shares = $3, schema_version = $4`,
		p.Depositor, p.VaultID, p.Shares.String(), p.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to save position: %w", err)
	}

	if _, err := q.ExecContext(ctx,
		`DELETE FROM lock_tranches WHERE depositor = $1 AND vault_id = $2`,
		p.Depositor, p.VaultID,
	); err != nil {
		return fmt.Errorf("failed to clear lock tranches: %w", err)
	}
	for _, tr := range p.LockTranches {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO lock_tranches (depositor, vault_id, shares, campaign_id, unlock_time, created_at, restriction_lifted)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			p.Depositor, p.VaultID, tr.Shares.String(), tr.CampaignID, tr.UnlockTime, tr.CreatedAt, tr.RestrictionLifted,
		); err != nil {
			return fmt.Errorf("failed to save lock tranche: %w", err)
		}
	}

	if _, err := q.ExecContext(ctx,
		`DELETE FROM allowances WHERE depositor = $1 AND vault_id = $2`,
		p.Depositor, p.VaultID,
	); err != nil {
		return fmt.Errorf("failed to clear allowances: %w", err)
	}
	for spender, shares := range p.Allowances {
		if shares.IsZero() {
			continue
		}
		if _, err := q.ExecContext(ctx, `
			INSERT INTO allowances (depositor, vault_id, spender, shares)
			VALUES ($1, $2, $3, $4)`,
			p.Depositor, p.VaultID, spender, shares.String(),
		); err != nil {
			return fmt.Errorf("failed to save allowance: %w", err)
		}
	}
	return nil
}

// AppendSnapshot records the depositor's share balance after a mutation.
func (r *positionRepository) AppendSnapshot(ctx context.Context, snap *domain.ShareSnapshot) error {
	_, err := r.db.q(ctx).ExecContext(ctx, `
		INSERT INTO share_snapshots (depositor, vault_id, seq, shares, schema_version)
		VALUES ($1, $2, $3, $4, $5)`,
		snap.Depositor, snap.VaultID, snap.Seq, snap.Shares.String(), snap.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to append share snapshot: %w", err)
	}
	return nil
}

// SharesAt returns the depositor's share balance as of seq.
func (r *positionRepository) SharesAt(ctx context.Context, depositor, vaultID uuid.UUID, seq int64) (decimal.Decimal, error) {
	var sharesStr string
	err := r.db.q(ctx).QueryRowContext(ctx, `
		SELECT shares FROM share_snapshots
		WHERE depositor = $1 AND vault_id = $2 AND seq <= $3
		ORDER BY seq DESC LIMIT 1`,
		depositor, vaultID, seq,
	).Scan(&sharesStr)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get shares at sequence: %w", err)
	}
	shares, err := decimal.NewFromString(sharesStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse snapshot shares: %w", err)
	}
	return shares, nil
}

// LiftCampaignRestriction unlocks every tranche tied to the campaign.
func (r *positionRepository) LiftCampaignRestriction(ctx context.Context, campaignID uuid.UUID) error {
	_, err := r.db.q(ctx).ExecContext(ctx,
		`UPDATE lock_tranches SET restriction_lifted = TRUE WHERE campaign_id = $1`,
		campaignID,
	)
	if err != nil {
		return fmt.Errorf("failed to lift campaign restriction: %w", err)
	}
	return nil
}
