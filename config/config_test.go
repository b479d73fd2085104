package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, BackendFile, cfg.CartStorageBackend)
	assert.Equal(t, "trip-cart-storage", cfg.CartStorageKey)
	assert.Equal(t, 1500, cfg.PlacesRadiusMeters)
	assert.Equal(t, time.Duration(0), cfg.CartTTL)
	assert.Equal(t, cfg, AppConfig)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CART_STORAGE_BACKEND", " Redis ")
	t.Setenv("CART_TTL", "24h")
	t.Setenv("ENV", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://trips.example.com, http://localhost:3000,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.CartStorageBackend)
	assert.Equal(t, 24*time.Hour, cfg.CartTTL)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://trips.example.com", "http://localhost:3000"}, cfg.Origins())
}
