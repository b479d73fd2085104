package snapshotRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "tripcart:snapshot:"

// RedisSnapshotRepo stores records as plain string values.
// A zero ttl keeps records until they are overwritten or deleted.
type RedisSnapshotRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotRepo(client *redis.Client, ttl time.Duration) *RedisSnapshotRepo {
	return &RedisSnapshotRepo{client: client, ttl: ttl}
}

func (r *RedisSnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s from redis: %w", key, err)
	}
	return data, nil
}

func (r *RedisSnapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	if err := r.client.Set(ctx, redisKeyPrefix+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %s to redis: %w", key, err)
	}
	return nil
}

func (r *RedisSnapshotRepo) Delete(ctx context.Context, key string) error {
	ctx, cancel := newContext(ctx, defaultTimeout)
	defer cancel()

	return r.client.Del(ctx, redisKeyPrefix+key).Err()
}

func (r *RedisSnapshotRepo) Ping(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 2*time.Second)
	defer cancel()

	return r.client.Ping(ctx).Err()
}

func (r *RedisSnapshotRepo) Close() error {
	return r.client.Close()
}
