// File: database/sql.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = time.Hour
	connMaxIdleTime = 15 * time.Minute
	pingTimeout     = 10 * time.Second
)

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA temp_store = MEMORY",
}

// OpenSQLite opens (creating if needed) the SQLite file at path, retrying a few
// times before giving up. Pragma failures are logged but not fatal.
func OpenSQLite(ctx context.Context, path string, maxRetries int, logger *zap.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory %s: %w", dir, err)
		}
	}
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		db, err := openAndPing(ctx, "sqlite", path)
		if err == nil {
			// SQLite serializes writers.
			db.SetMaxOpenConns(1)
			enablePragmas(ctx, db, logger)
			logger.Info("SQLite connection established", zap.String("path", path), zap.Int("attempt", attempt))
			return db, nil
		}

		lastErr = err
		logger.Warn("SQLite connection attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		if attempt < maxRetries {
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("failed to open sqlite database after %d attempts: %w", maxRetries, lastErr)
}

// OpenPostgres opens a pooled Postgres connection and pings it.
func OpenPostgres(ctx context.Context, url string, logger *zap.Logger) (*sql.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("POSTGRES_URL is required for the postgres backend")
	}
	db, err := openAndPing(ctx, "postgres", url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	logger.Info("Connected to PostgreSQL successfully")
	return db, nil
}

func openAndPing(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}
	return db, nil
}

func enablePragmas(ctx context.Context, db *sql.DB, logger *zap.Logger) {
	for _, pragma := range sqlitePragmas {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_, err := db.ExecContext(pctx, pragma)
		cancel()
		if err != nil {
			logger.Warn("Failed to apply pragma", zap.String("pragma", pragma), zap.Error(err))
		}
	}
}
