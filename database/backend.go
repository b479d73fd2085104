package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripcart/config"
	snapshotRepo "tripcart/database/repository/snapshot"
	"tripcart/utils"
)

const snapshotCollection = "cart_snapshots"

// Backend is an opened snapshot repository plus whatever client must be closed with it.
type Backend struct {
	Name string
	Repo snapshotRepo.SnapshotRepository

	closers []func() error
}

// Close releases the repository and its underlying client.
func (b *Backend) Close() error {
	var firstErr error
	if err := b.Repo.Close(); err != nil {
		firstErr = err
	}
	for _, fn := range b.closers {
		if err := fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenBackend opens the snapshot repository selected by CART_STORAGE_BACKEND.
func OpenBackend(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Backend, error) {
	name := cfg.CartStorageBackend
	logger = logger.With(zap.String("backend", name))

	switch name {
	case config.BackendMemory:
		logger.Warn("Cart storage is in memory only; the cart will not survive a restart")
		return &Backend{Name: name, Repo: snapshotRepo.NewMemorySnapshotRepo()}, nil

	case config.BackendFile, "":
		repo, err := snapshotRepo.NewFileSnapshotRepo(cfg.CartDataDir)
		if err != nil {
			return nil, err
		}
		logger.Info("Cart storage ready", zap.String("dir", cfg.CartDataDir))
		return &Backend{Name: config.BackendFile, Repo: repo}, nil

	case config.BackendSQLite:
		db, err := OpenSQLite(ctx, cfg.SQLitePath, 3, logger)
		if err != nil {
			return nil, err
		}
		repo, err := snapshotRepo.NewSQLSnapshotRepo(ctx, db, snapshotRepo.DialectSQLite)
		if err != nil {
			db.Close()
			return nil, err
		}
		return &Backend{Name: name, Repo: repo}, nil

	case config.BackendPostgres:
		db, err := OpenPostgres(ctx, cfg.PostgresURL, logger)
		if err != nil {
			return nil, err
		}
		repo, err := snapshotRepo.NewSQLSnapshotRepo(ctx, db, snapshotRepo.DialectPostgres)
		if err != nil {
			db.Close()
			return nil, err
		}
		return &Backend{Name: name, Repo: repo}, nil

	case config.BackendRedis:
		client, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCartDB)
		if err != nil {
			return nil, err
		}
		logger.Info("Cart storage ready", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CartTTL))
		return &Backend{Name: name, Repo: snapshotRepo.NewRedisSnapshotRepo(client, cfg.CartTTL)}, nil

	case config.BackendMongo:
		client, err := ConnectMongo(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.MongoDatabase).Collection(snapshotCollection)
		repo, err := snapshotRepo.NewMongoSnapshotRepo(ctx, coll)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &Backend{
			Name:    name,
			Repo:    repo,
			closers: []func() error{func() error { return client.Disconnect(context.Background()) }},
		}, nil
	}

	return nil, fmt.Errorf("unknown CART_STORAGE_BACKEND %q", name)
}
