package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// vaultRepository implements domain.VaultRepository.
type vaultRepository struct {
	db *DB
}

// NewVaultRepository creates a new vault repository.
func NewVaultRepository(db *DB) domain.VaultRepository {
	return &vaultRepository{db: db}
}

const vaultColumns = `id, name, asset, cash_balance, shares_outstanding,
	cash_buffer_bps, slippage_bps, max_loss_bps, protocol_fee_bps,
	active_adapter_id, total_profit, total_loss, last_harvest_time, mode,
	emergency_activated_at, last_divest_error, grace_period_ns,
	min_hold_period_ns, created_at, schema_version`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVault(row rowScanner) (*domain.Vault, error) {
	var v domain.Vault
	var cashStr, sharesStr, profitStr, lossStr string
	var adapterID sql.NullString
	var lastHarvest, emergencyAt sql.NullTime
	var gracePeriodNs, minHoldNs int64
	var mode string

	err := row.Scan(
		&v.ID, &v.Name, &v.Asset, &cashStr, &sharesStr,
		&v.CashBufferBps, &v.SlippageBps, &v.MaxLossBps, &v.ProtocolFeeBps,
		&adapterID, &profitStr, &lossStr, &lastHarvest, &mode,
		&emergencyAt, &v.LastDivestError, &gracePeriodNs,
		&minHoldNs, &v.CreatedAt, &v.SchemaVersion,
	)
	if err != nil {
		return nil, err
	}

	for _, field := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&v.CashBalance, cashStr},
		{&v.SharesOutstanding, sharesStr},
		{&v.TotalProfit, profitStr},
		{&v.TotalLoss, lossStr},
	} {
		d, err := decimal.NewFromString(field.src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse vault decimal column: %w", err)
		}
		*field.dst = d
	}

	if adapterID.Valid {
		id, err := uuid.Parse(adapterID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse active_adapter_id: %w", err)
		}
		v.ActiveAdapterID = &id
	}
	if lastHarvest.Valid {
		v.LastHarvestTime = lastHarvest.Time
	}
	if emergencyAt.Valid {
		t := emergencyAt.Time
		v.EmergencyActivatedAt = &t
	}
	v.Mode = domain.VaultMode(mode)
	v.GracePeriod = time.Duration(gracePeriodNs)
	v.MinHoldPeriod = time.Duration(minHoldNs)
	return &v, nil
}

// GetByID retrieves a vault by its ID.
func (r *vaultRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vault, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults WHERE id = $1`

	v, err := scanVault(r.db.q(ctx).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.Ef(domain.KindNotFound, "vault %s not found", id)
		}
		return nil, fmt.Errorf("failed to get vault by ID: %w", err)
	}
	return v, nil
}

func vaultArgs(v *domain.Vault) []interface{} {
	var adapterID interface{}
	if v.ActiveAdapterID != nil {
		adapterID = *v.ActiveAdapterID
	}
	var lastHarvest interface{}
	if !v.LastHarvestTime.IsZero() {
		lastHarvest = v.LastHarvestTime
	}
	var emergencyAt interface{}
	if v.EmergencyActivatedAt != nil {
		emergencyAt = *v.EmergencyActivatedAt
	}
	return []interface{}{
		v.ID, v.Name, v.Asset, v.CashBalance.String(), v.SharesOutstanding.String(),
		v.CashBufferBps, v.SlippageBps, v.MaxLossBps, v.ProtocolFeeBps,
		adapterID, v.TotalProfit.String(), v.TotalLoss.String(), lastHarvest, string(v.Mode),
		emergencyAt, v.LastDivestError, int64(v.GracePeriod),
		int64(v.MinHoldPeriod), v.CreatedAt, v.SchemaVersion,
	}
}

// Create inserts a new vault.
func (r *vaultRepository) Create(ctx context.Context, v *domain.Vault) error {
	query := `
		INSERT INTO vaults (` + vaultColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	if _, err := r.db.q(ctx).ExecContext(ctx, query, vaultArgs(v)...); err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}
	return nil
}

// Update rewrites a vault's mutable state.
func (r *vaultRepository) Update(ctx context.Context, v *domain.Vault) error {
	query := `
		UPDATE vaults SET
			name = $2, asset = $3, cash_balance = $4, shares_outstanding = $5,
			cash_buffer_bps = $6, slippage_bps = $7, max_loss_bps = $8,
			protocol_fee_bps = $9, active_adapter_id = $10, total_profit = $11,
			total_loss = $12, last_harvest_time = $13, mode = $14,
			emergency_activated_at = $15, last_divest_error = $16,
			grace_period_ns = $17, min_hold_period_ns = $18, created_at = $19,
			schema_version = $20
		WHERE id = $1
	`
	res, err := r.db.q(ctx).ExecContext(ctx, query, vaultArgs(v)...)
	if err != nil {
		return fmt.Errorf("failed to update vault: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check vault update: %w", err)
	}
	if rows == 0 {
		return domain.Ef(domain.KindNotFound, "vault %s not found", v.ID)
	}
	return nil
}

// List returns all vaults.
func (r *vaultRepository) List(ctx context.Context) ([]*domain.Vault, error) {
	query := `SELECT ` + vaultColumns + ` FROM vaults ORDER BY created_at`

	rows, err := r.db.q(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaults: %w", err)
	}
	defer rows.Close()

	var vaults []*domain.Vault
	for rows.Next() {
		v, err := scanVault(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vault: %w", err)
		}
		vaults = append(vaults, v)
	}
	return vaults, rows.Err()
}
