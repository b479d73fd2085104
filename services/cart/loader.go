package cart

import (
	"context"
	"errors"

	"go.uber.org/zap"

	snapshotRepo "tripcart/database/repository/snapshot"
	"tripcart/models"
)

// SnapshotReader is the slice of a snapshot repository the loader needs.
type SnapshotReader interface {
	Load(ctx context.Context, key string) ([]byte, error)
}

// LoadSnapshot reads the saved cart under key. A missing, unreadable or
// corrupt record yields an empty cart; the failure is only logged.
func LoadSnapshot(ctx context.Context, reader SnapshotReader, key string, logger *zap.Logger) models.CartSnapshot {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := reader.Load(ctx, key)
	if errors.Is(err, snapshotRepo.ErrNotFound) {
		logger.Info("no saved cart found; starting empty", zap.String("key", key))
		return models.EmptyCart()
	}
	if err != nil {
		logger.Warn("failed to read saved cart; starting empty", zap.String("key", key), zap.Error(err))
		return models.EmptyCart()
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		logger.Warn("discarding corrupt saved cart", zap.String("key", key), zap.Error(err))
		return models.EmptyCart()
	}

	logger.Info("restored saved cart",
		zap.String("key", key),
		zap.Int("accommodations", len(snap.Accommodations)),
		zap.Int("experiences", len(snap.Experiences)),
		zap.Int("nearbySuggestions", len(snap.NearbySuggestions)),
	)
	return snap
}

// SnapshotRepository is what Open needs from a storage backend.
type SnapshotRepository interface {
	SnapshotReader
	SnapshotWriter
}

// Open restores the cart saved under key and wires a Persister so every later
// mutation is written back. The caller owns both and must Close the persister.
func Open(ctx context.Context, repo SnapshotRepository, key string, logger *zap.Logger, opts ...PersisterOption) (*Store, *Persister) {
	snap := LoadSnapshot(ctx, repo, key, logger)
	persister := NewPersister(repo, key, logger, opts...)
	store := NewStore(logger, WithSnapshot(snap), WithObserver(persister))
	return store, persister
}
