package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// DB wraps the database connection. It implements domain.Atomic over
// database transactions and domain.Sequence over a Postgres sequence.
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection.
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=donorvault sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.DB.Close()
}

type txKey struct{}

// RunAtomic runs fn inside one transaction. Nested calls join the enclosing
// transaction instead of opening their own, so a harvest and the
// distribution it hands off commit or roll back together.
func (db *DB) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	return tx.Commit()
}

// querier is the query surface shared by *sql.DB and *sql.Tx. Repositories
// go through it so the same code runs inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (db *DB) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db.DB
}

// Next allocates the next global sequence value.
func (db *DB) Next(ctx context.Context) (int64, error) {
	var seq int64
	if err := db.q(ctx).QueryRowContext(ctx, `SELECT nextval('engine_seq')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance sequence: %w", err)
	}
	return seq, nil
}

// Current returns the most recently allocated sequence value.
func (db *DB) Current(ctx context.Context) (int64, error) {
	var seq int64
	if err := db.q(ctx).QueryRowContext(ctx, `SELECT last_value FROM engine_seq`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to read sequence: %w", err)
	}
	return seq, nil
}
