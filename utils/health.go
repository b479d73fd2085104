package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be probed, such as a snapshot repository.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of the cart storage backend.
type HealthStatus struct {
	Backend   string    `json:"backend"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor pings a backend periodically and keeps the latest result.
type HealthMonitor struct {
	backend  string
	target   Pinger
	interval time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(backend string, target Pinger, interval time.Duration, logger *zap.Logger) *HealthMonitor {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthMonitor{backend: backend, target: target, interval: interval, logger: logger}
}

// GetHealthStatus returns latest stored health snapshot.
func (m *HealthMonitor) GetHealthStatus() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check runs one probe and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{Backend: m.backend, Healthy: true, CheckedAt: time.Now()}
	if err := m.target.Ping(ctx); err != nil {
		status.Healthy = false
		status.Error = err.Error()
		m.logger.Warn("cart storage health check failed", zap.String("backend", m.backend), zap.Error(err))
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start checks once immediately, then on every tick until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
