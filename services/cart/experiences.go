package cart

import (
	"strconv"

	"go.uber.org/zap"

	"tripcart/models"
)

// AddExperience inserts an activity or replaces the one with the same id.
func (s *Store) AddExperience(e models.Experience) error {
	if err := e.Validate(); err != nil {
		return newValidationError(ErrInvalidExperience, strconv.Itoa(e.ID), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.experiences = upsert(s.experiences, e.Clone(), byExperienceID(e.ID))
	s.logger.Debug("experience added", zap.Int("id", e.ID), zap.Float64("price", e.Price))
	s.notifyLocked()
	return nil
}

func (s *Store) RemoveExperience(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed bool
	s.experiences, removed = remove(s.experiences, byExperienceID(id))
	if !removed {
		return false
	}
	s.notifyLocked()
	return true
}

func (s *Store) UpdateExperience(id int, patch models.ExperiencePatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.experiences {
		if s.experiences[i].ID != id {
			continue
		}
		merged := s.experiences[i].Apply(patch)
		if err := merged.Validate(); err != nil {
			return false, newValidationError(ErrInvalidExperience, strconv.Itoa(id), err)
		}
		s.experiences[i] = merged
		s.notifyLocked()
		return true, nil
	}
	return false, nil
}

func (s *Store) Experience(id int) (models.Experience, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.experiences {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return models.Experience{}, false
}

func (s *Store) Experiences() []models.Experience {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Experience, 0, len(s.experiences))
	for _, e := range s.experiences {
		out = append(out, e.Clone())
	}
	return out
}

func byExperienceID(id int) func(models.Experience) bool {
	return func(e models.Experience) bool { return e.ID == id }
}
