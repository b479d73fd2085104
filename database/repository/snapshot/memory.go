package snapshotRepo

import (
	"context"
	"sync"
)

// MemorySnapshotRepo keeps records in process memory. Nothing survives a restart.
type MemorySnapshotRepo struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemorySnapshotRepo() *MemorySnapshotRepo {
	return &MemorySnapshotRepo{records: make(map[string][]byte)}
}

func (r *MemorySnapshotRepo) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (r *MemorySnapshotRepo) Save(_ context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[key] = append([]byte(nil), data...)
	return nil
}

func (r *MemorySnapshotRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, key)
	return nil
}

func (r *MemorySnapshotRepo) Ping(context.Context) error { return nil }

func (r *MemorySnapshotRepo) Close() error { return nil }
