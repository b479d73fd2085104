// File: services/cart/persister.go
package cart

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"tripcart/models"
)

// SnapshotWriter is the slice of a snapshot repository the persister needs.
type SnapshotWriter interface {
	Save(ctx context.Context, key string, data []byte) error
}

// Persister is an Observer that writes cart snapshots to durable storage on a
// background goroutine. Pending snapshots coalesce: only the newest is written.
// A failed write never touches the in-memory cart; it is logged, counted and
// published on Errors.
type Persister struct {
	writer  SnapshotWriter
	key     string
	logger  *zap.Logger
	timeout time.Duration
	onError func(error)

	mu      sync.Mutex
	pending *models.CartSnapshot
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
	errs chan error

	writes   atomic.Int64
	failures atomic.Int64
}

// PersisterStats reports write outcomes since start.
type PersisterStats struct {
	Writes   int64 `json:"writes"`
	Failures int64 `json:"failures"`
}

type PersisterOption func(*Persister)

// WithWriteTimeout bounds each storage write.
func WithWriteTimeout(d time.Duration) PersisterOption {
	return func(p *Persister) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithErrorHandler installs a callback for failed writes. It runs on the persister goroutine.
func WithErrorHandler(fn func(error)) PersisterOption {
	return func(p *Persister) { p.onError = fn }
}

// NewPersister starts the write loop. Call Close on shutdown.
func NewPersister(writer SnapshotWriter, key string, logger *zap.Logger, opts ...PersisterOption) *Persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Persister{
		writer:  writer,
		key:     key,
		logger:  logger,
		timeout: 5 * time.Second,
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		errs:    make(chan error, 16),
	}
	for _, opt := range opts {
		opt(p)
	}
	go p.run()
	return p
}

// CartChanged implements Observer.
func (p *Persister) CartChanged(snapshot models.CartSnapshot) {
	p.Schedule(snapshot)
}

// Schedule queues snap for writing and returns immediately.
func (p *Persister) Schedule(snap models.CartSnapshot) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("cart snapshot scheduled after persister closed; dropping", zap.String("key", p.key))
		return
	}
	p.pending = &snap
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Errors exposes write failures. The channel is buffered and drops when full.
func (p *Persister) Errors() <-chan error {
	return p.errs
}

func (p *Persister) Stats() PersisterStats {
	return PersisterStats{Writes: p.writes.Load(), Failures: p.failures.Load()}
}

// Close writes any pending snapshot and stops the loop. It is safe to call more than once.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	close(p.stop)
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Persister) run() {
	defer close(p.done)
	for {
		select {
		case <-p.wake:
			p.flush()
		case <-p.stop:
			p.flush()
			return
		}
	}
}

func (p *Persister) flush() {
	p.mu.Lock()
	snap := p.pending
	p.pending = nil
	p.mu.Unlock()

	if snap == nil {
		return
	}

	data, err := EncodeSnapshot(*snap)
	if err != nil {
		p.report(err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.writer.Save(ctx, p.key, data); err != nil {
		p.report(err)
		return
	}
	p.writes.Add(1)
	p.logger.Debug("cart snapshot saved", zap.String("key", p.key), zap.Int("bytes", len(data)))
}

func (p *Persister) report(err error) {
	p.failures.Add(1)
	p.logger.Error("failed to persist cart snapshot", zap.String("key", p.key), zap.Error(err))

	select {
	case p.errs <- err:
	default:
	}
	if p.onError != nil {
		p.onError(err)
	}
}
