package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenSQLite_CreatesFileAndAppliesPragmas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tripcart.db")

	db, err := OpenSQLite(context.Background(), path, 2, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	assert.FileExists(t, path)
}

func TestOpenPostgres_RequiresURL(t *testing.T) {
	_, err := OpenPostgres(context.Background(), "", zap.NewNop())
	assert.Error(t, err)
}
