package postgres

import (
	"context"
	"fmt"
)

// Schema changes are strictly additive: existing columns are never dropped,
// renamed, or retyped. New columns go at the end with a default so older
// rows stay readable.
var schemaStatements = []string{
	`CREATE SEQUENCE IF NOT EXISTS engine_seq`,
	`CREATE TABLE IF NOT EXISTS vaults (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		asset TEXT NOT NULL,
		cash_balance DECIMAL NOT NULL,
		shares_outstanding DECIMAL NOT NULL,
		cash_buffer_bps BIGINT NOT NULL,
		slippage_bps BIGINT NOT NULL,
		max_loss_bps BIGINT NOT NULL,
		protocol_fee_bps BIGINT NOT NULL,
		active_adapter_id UUID,
		total_profit DECIMAL NOT NULL,
		total_loss DECIMAL NOT NULL,
		last_harvest_time TIMESTAMPTZ,
		mode TEXT NOT NULL,
		emergency_activated_at TIMESTAMPTZ,
		last_divest_error TEXT NOT NULL DEFAULT '',
		grace_period_ns BIGINT NOT NULL,
		min_hold_period_ns BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		schema_version INT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS positions (
		depositor UUID NOT NULL,
		vault_id UUID NOT NULL,
		shares DECIMAL NOT NULL,
		schema_version INT NOT NULL DEFAULT 1,
		PRIMARY KEY (depositor, vault_id)
	)`,
	`CREATE TABLE IF NOT EXISTS lock_tranches (
		depositor UUID NOT NULL,
		vault_id UUID NOT NULL,
		shares DECIMAL NOT NULL,
		campaign_id UUID NOT NULL,
		unlock_time TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		restriction_lifted BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS lock_tranches_position_idx ON lock_tranches (depositor, vault_id)`,
	`CREATE INDEX IF NOT EXISTS lock_tranches_campaign_idx ON lock_tranches (campaign_id)`,
	`CREATE TABLE IF NOT EXISTS allowances (
		depositor UUID NOT NULL,
		vault_id UUID NOT NULL,
		spender UUID NOT NULL,
		shares DECIMAL NOT NULL,
		PRIMARY KEY (depositor, vault_id, spender)
	)`,
	`CREATE TABLE IF NOT EXISTS share_snapshots (
		depositor UUID NOT NULL,
		vault_id UUID NOT NULL,
		seq BIGINT NOT NULL,
		shares DECIMAL NOT NULL,
		schema_version INT NOT NULL DEFAULT 1,
		PRIMARY KEY (depositor, vault_id, seq)
	)`,
	`CREATE TABLE IF NOT EXISTS payout_preferences (
		depositor UUID NOT NULL,
		vault_id UUID NOT NULL,
		campaign_id UUID NOT NULL,
		beneficiary UUID,
		campaign_bps BIGINT NOT NULL,
		schema_version INT NOT NULL DEFAULT 1,
		PRIMARY KEY (depositor, vault_id)
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		curator UUID NOT NULL,
		status TEXT NOT NULL,
		total_received DECIMAL NOT NULL,
		stake_amount DECIMAL NOT NULL,
		funding_target DECIMAL NOT NULL,
		payouts_halted BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		schema_version INT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS supporter_stakes (
		id UUID PRIMARY KEY,
		supporter UUID NOT NULL,
		campaign_id UUID NOT NULL,
		vault_id UUID NOT NULL,
		amount DECIMAL NOT NULL,
		seq BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		schema_version INT NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS supporter_stakes_fold_idx ON supporter_stakes (campaign_id, supporter, seq)`,
	`CREATE TABLE IF NOT EXISTS checkpoints (
		id UUID PRIMARY KEY,
		campaign_id UUID NOT NULL,
		title TEXT NOT NULL,
		vote_deadline TIMESTAMPTZ NOT NULL,
		quorum_bps BIGINT NOT NULL,
		snapshot_seq BIGINT NOT NULL,
		votes_for DECIMAL NOT NULL,
		votes_against DECIMAL NOT NULL,
		total_eligible_power DECIMAL NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		schema_version INT NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS checkpoints_campaign_idx ON checkpoints (campaign_id)`,
	`CREATE TABLE IF NOT EXISTS vote_records (
		checkpoint_id UUID NOT NULL,
		supporter UUID NOT NULL,
		power DECIMAL NOT NULL,
		support BOOLEAN NOT NULL,
		cast_at TIMESTAMPTZ NOT NULL,
		schema_version INT NOT NULL DEFAULT 1,
		PRIMARY KEY (checkpoint_id, supporter)
	)`,
	`CREATE TABLE IF NOT EXISTS distributions (
		id UUID PRIMARY KEY,
		vault_id UUID NOT NULL,
		gross_profit DECIMAL NOT NULL,
		fee DECIMAL NOT NULL,
		amount DECIMAL NOT NULL,
		total_shares DECIMAL NOT NULL,
		snapshot_seq BIGINT NOT NULL,
		claimed_shares DECIMAL NOT NULL,
		claimed_amount DECIMAL NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		schema_version INT NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS distributions_vault_idx ON distributions (vault_id)`,
	`CREATE TABLE IF NOT EXISTS claim_records (
		distribution_id UUID NOT NULL,
		depositor UUID NOT NULL,
		shares DECIMAL NOT NULL,
		entitlement DECIMAL NOT NULL,
		campaign_amount DECIMAL NOT NULL,
		beneficiary_amount DECIMAL NOT NULL,
		escrowed BOOLEAN NOT NULL DEFAULT FALSE,
		claimed_at TIMESTAMPTZ NOT NULL,
		schema_version INT NOT NULL DEFAULT 1,
		PRIMARY KEY (distribution_id, depositor)
	)`,
	`CREATE TABLE IF NOT EXISTS payout_entries (
		id UUID PRIMARY KEY,
		vault_id UUID,
		distribution_id UUID,
		kind TEXT NOT NULL,
		campaign_id UUID,
		beneficiary UUID,
		amount DECIMAL NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		schema_version INT NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS payout_entries_distribution_idx ON payout_entries (distribution_id)`,
	`CREATE TABLE IF NOT EXISTS escrow_buckets (
		campaign_id UUID PRIMARY KEY,
		amount DECIMAL NOT NULL,
		schema_version INT NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS escrow_contributions (
		campaign_id UUID NOT NULL,
		depositor UUID NOT NULL,
		amount DECIMAL NOT NULL,
		schema_version INT NOT NULL DEFAULT 1,
		PRIMARY KEY (campaign_id, depositor)
	)`,
}

// Migrate creates the schema if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
