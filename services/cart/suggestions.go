package cart

import (
	"go.uber.org/zap"

	"tripcart/models"
)

// AddNearbySuggestion inserts a suggestion or replaces the one with the same id.
// Selected is stored exactly as supplied.
func (s *Store) AddNearbySuggestion(sg models.NearbySuggestion) error {
	if err := sg.Validate(); err != nil {
		return newValidationError(ErrInvalidSuggestion, sg.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.suggestions = upsert(s.suggestions, sg.Clone(), bySuggestionID(sg.ID))
	s.logger.Debug("nearby suggestion added", zap.String("id", sg.ID), zap.Bool("selected", sg.Selected))
	s.notifyLocked()
	return nil
}

func (s *Store) RemoveNearbySuggestion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.suggestions, removed = remove(s.suggestions, bySuggestionID(id))
	if !removed {
		return false
	}
	s.notifyLocked()
	return true
}

func (s *Store) UpdateNearbySuggestion(id string, patch models.NearbySuggestionPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suggestions {
		if s.suggestions[i].ID != id {
			continue
		}
		merged := s.suggestions[i].Apply(patch)
		if err := merged.Validate(); err != nil {
			return false, newValidationError(ErrInvalidSuggestion, id, err)
		}
		s.suggestions[i] = merged
		s.notifyLocked()
		return true, nil
	}
	return false, nil
}

// ToggleNearbySuggestion flips the selected flag. Absent ids are a no-op.
func (s *Store) ToggleNearbySuggestion(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.suggestions {
		if s.suggestions[i].ID == id {
			s.suggestions[i].Selected = !s.suggestions[i].Selected
			s.logger.Debug("nearby suggestion toggled", zap.String("id", id), zap.Bool("selected", s.suggestions[i].Selected))
			s.notifyLocked()
			return true
		}
	}
	return false
}

func (s *Store) NearbySuggestion(id string) (models.NearbySuggestion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sg := range s.suggestions {
		if sg.ID == id {
			return sg.Clone(), true
		}
	}
	return models.NearbySuggestion{}, false
}

func (s *Store) NearbySuggestions() []models.NearbySuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.NearbySuggestion, 0, len(s.suggestions))
	for _, sg := range s.suggestions {
		out = append(out, sg.Clone())
	}
	return out
}

// SelectedSuggestions returns only the suggestions the traveler opted into.
func (s *Store) SelectedSuggestions() []models.NearbySuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.NearbySuggestion{}
	for _, sg := range s.suggestions {
		if sg.Selected {
			out = append(out, sg.Clone())
		}
	}
	return out
}

func bySuggestionID(id string) func(models.NearbySuggestion) bool {
	return func(sg models.NearbySuggestion) bool { return sg.ID == id }
}
