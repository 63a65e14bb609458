// Package recorder persists engine events for audit and dashboards. The
// event log is an observability channel only: losing a write never aborts
// the ledger operation that produced it.
package recorder

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/donorvault/donorvault-backend/internal/domain"
)

// SQLiteRecorder appends events to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode: dashboards read while the engine writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			event_type     TEXT NOT NULL,
			at             INTEGER NOT NULL,
			actor          TEXT NOT NULL,
			vault_id       TEXT,
			campaign_id    TEXT,
			checkpoint_id  TEXT,
			payload        TEXT,
			schema_version INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_at ON events(at)`,
		`CREATE INDEX IF NOT EXISTS idx_events_vault ON events(vault_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_campaign ON events(campaign_id)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record appends one event. Implements domain.EventRecorder.
func (r *SQLiteRecorder) Record(_ context.Context, e *domain.Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	var vaultID, campaignID, checkpointID interface{}
	if e.VaultID != nil {
		vaultID = e.VaultID.String()
	}
	if e.CampaignID != nil {
		campaignID = e.CampaignID.String()
	}
	if e.CheckpointID != nil {
		checkpointID = e.CheckpointID.String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, err = r.db.Exec(`
		INSERT INTO events (event_type, at, actor, vault_id, campaign_id, checkpoint_id, payload, schema_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(e.Type), e.At.Unix(), e.Actor.String(), vaultID, campaignID, checkpointID,
		string(payload), e.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Close closes the database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

// Noop discards every event. Used when no event database is configured.
type Noop struct{}

// Record implements domain.EventRecorder.
func (Noop) Record(context.Context, *domain.Event) error { return nil }
