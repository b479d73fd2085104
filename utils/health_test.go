package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthMonitor_Check(t *testing.T) {
	healthy := true
	m := NewHealthMonitor("file", pingFunc(func(context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("disk gone")
	}), 0, nil)

	status := m.Check(context.Background())
	assert.True(t, status.Healthy)
	assert.Equal(t, "file", status.Backend)

	healthy = false
	status = m.Check(context.Background())
	assert.False(t, status.Healthy)
	assert.Equal(t, "disk gone", status.Error)
	assert.Equal(t, status, m.GetHealthStatus())
}
