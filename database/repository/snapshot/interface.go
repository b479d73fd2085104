package snapshotRepo

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Load when no record exists under the key.
var ErrNotFound = errors.New("cart snapshot not found")

// SnapshotRepository stores one opaque, already serialized record per key.
type SnapshotRepository interface {
	// Load returns the record stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save creates or overwrites the record under key.
	Save(ctx context.Context, key string, data []byte) error
	// Delete removes the record. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Ping checks that the backing storage is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// newContext derives a bounded context for a single storage call.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

const defaultTimeout = 5 * time.Second
