package snapshotRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Dialect selects placeholder syntax for the SQL backend.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

const snapshotTableSchema = `
	CREATE TABLE IF NOT EXISTS cart_snapshots (
		storage_key TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`

// SQLSnapshotRepo stores records in a cart_snapshots table. It works with
// both SQLite (local file) and Postgres connections.
type SQLSnapshotRepo struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLSnapshotRepo creates the table if it does not exist.
func NewSQLSnapshotRepo(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLSnapshotRepo, error) {
	switch dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}

	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, snapshotTableSchema); err != nil {
		return nil, fmt.Errorf("failed to create cart_snapshots table: %w", err)
	}
	return &SQLSnapshotRepo{db: db, dialect: dialect}, nil
}

func (r *SQLSnapshotRepo) bind(n int) string {
	if r.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (r *SQLSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	query := "SELECT data FROM cart_snapshots WHERE storage_key = " + r.bind(1)
	var data string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return []byte(data), nil
}

func (r *SQLSnapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO cart_snapshots (storage_key, data, updated_at) VALUES (%s, %s, %s)
		ON CONFLICT (storage_key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		r.bind(1), r.bind(2), r.bind(3))
	if _, err := r.db.ExecContext(ctx, query, key, string(data), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

func (r *SQLSnapshotRepo) Delete(ctx context.Context, key string) error {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	query := "DELETE FROM cart_snapshots WHERE storage_key = " + r.bind(1)
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}

func (r *SQLSnapshotRepo) Ping(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 2*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}

func (r *SQLSnapshotRepo) Close() error {
	return r.db.Close()
}
