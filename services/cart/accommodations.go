package cart

import (
	"go.uber.org/zap"

	"tripcart/models"
)

// AddAccommodation inserts a stay or replaces the one with the same id.
// A replaced stay moves to the end of the collection.
func (s *Store) AddAccommodation(a models.Accommodation) error {
	if err := a.Validate(); err != nil {
		return newValidationError(ErrInvalidAccommodation, a.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accommodations = upsert(s.accommodations, a.Clone(), byAccommodationID(a.ID))
	s.logger.Debug("accommodation added", zap.String("id", a.ID), zap.Float64("totalAmount", a.TotalAmount))
	s.notifyLocked()
	return nil
}

// RemoveAccommodation deletes the stay with id. Absent ids are a no-op.
func (s *Store) RemoveAccommodation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.accommodations, removed = remove(s.accommodations, byAccommodationID(id))
	if !removed {
		return false
	}
	s.notifyLocked()
	return true
}

// UpdateAccommodation merges patch over the stay with id.
// It returns false with a nil error when no such stay exists.
func (s *Store) UpdateAccommodation(id string, patch models.AccommodationPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accommodations {
		if s.accommodations[i].ID != id {
			continue
		}
		merged := s.accommodations[i].Apply(patch)
		if err := merged.Validate(); err != nil {
			return false, newValidationError(ErrInvalidAccommodation, id, err)
		}
		s.accommodations[i] = merged
		s.notifyLocked()
		return true, nil
	}
	return false, nil
}

// Accommodation looks up a stay by id.
func (s *Store) Accommodation(id string) (models.Accommodation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accommodations {
		if a.ID == id {
			return a.Clone(), true
		}
	}
	return models.Accommodation{}, false
}

func (s *Store) Accommodations() []models.Accommodation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Accommodation, 0, len(s.accommodations))
	for _, a := range s.accommodations {
		out = append(out, a.Clone())
	}
	return out
}

func byAccommodationID(id string) func(models.Accommodation) bool {
	return func(a models.Accommodation) bool { return a.ID == id }
}
