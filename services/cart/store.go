// File: services/cart/store.go
package cart

import (
	"sync"

	"go.uber.org/zap"

	"tripcart/models"
)

// Observer is notified after every mutation that changed the cart.
// It runs under the store's write lock and must not block or call back into the store.
// The snapshot is shared between observers and must be treated as read-only.
type Observer interface {
	CartChanged(snapshot models.CartSnapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(snapshot models.CartSnapshot)

func (f ObserverFunc) CartChanged(snapshot models.CartSnapshot) { f(snapshot) }

// Store is the trip cart aggregate for one traveler session.
type Store struct {
	mu             sync.RWMutex
	accommodations []models.Accommodation
	experiences    []models.Experience
	suggestions    []models.NearbySuggestion

	observers []Observer
	logger    *zap.Logger
}

type Option func(*Store)

// WithObserver registers an observer at construction time.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithSnapshot seeds the store, typically with state loaded from storage.
func WithSnapshot(snap models.CartSnapshot) Option {
	return func(s *Store) {
		s.restoreLocked(snap)
	}
}

// NewStore creates an empty store. A nil logger is replaced by a no-op logger.
func NewStore(logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		accommodations: []models.Accommodation{},
		experiences:    []models.Experience{},
		suggestions:    []models.NearbySuggestion{},
		logger:         logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore replaces the cart contents without notifying observers.
// Invalid records are dropped and duplicate ids collapse with upsert semantics.
func (s *Store) Restore(snap models.CartSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked(snap)
}

// Reset empties the cart and notifies observers. Intended for tests and sign-out flows.
func (s *Store) Reset() {
	s.ClearCart()
}

// Subscribe registers an observer after construction.
func (s *Store) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// ClearCart empties all three collections in one mutation.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accommodations = []models.Accommodation{}
	s.experiences = []models.Experience{}
	s.suggestions = []models.NearbySuggestion{}
	s.logger.Debug("cart cleared")
	s.notifyLocked()
}

// Snapshot returns a deep copy of the current cart.
func (s *Store) Snapshot() models.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() models.CartSnapshot {
	return models.CartSnapshot{
		Accommodations:    s.accommodations,
		Experiences:       s.experiences,
		NearbySuggestions: s.suggestions,
	}.Clone()
}

func (s *Store) notifyLocked() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, o := range s.observers {
		o.CartChanged(snap)
	}
}

func (s *Store) restoreLocked(snap models.CartSnapshot) {
	s.accommodations = []models.Accommodation{}
	s.experiences = []models.Experience{}
	s.suggestions = []models.NearbySuggestion{}

	dropped := 0
	for _, a := range snap.Accommodations {
		if a.Validate() != nil {
			dropped++
			continue
		}
		s.accommodations = upsert(s.accommodations, a.Clone(), func(x models.Accommodation) bool { return x.ID == a.ID })
	}
	for _, e := range snap.Experiences {
		if e.Validate() != nil {
			dropped++
			continue
		}
		s.experiences = upsert(s.experiences, e.Clone(), func(x models.Experience) bool { return x.ID == e.ID })
	}
	for _, sg := range snap.NearbySuggestions {
		if sg.Validate() != nil {
			dropped++
			continue
		}
		s.suggestions = upsert(s.suggestions, sg.Clone(), func(x models.NearbySuggestion) bool { return x.ID == sg.ID })
	}
	if dropped > 0 {
		s.logger.Warn("dropped invalid records while restoring cart", zap.Int("dropped", dropped))
	}
}
