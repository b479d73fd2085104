package models

import "errors"

// NearbySuggestion is an optional point-of-interest add-on. Only selected
// suggestions count toward the cart's item count; they never carry a price.
type NearbySuggestion struct {
	ID       string   `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Type     string   `json:"type" bson:"type"`
	Category string   `json:"category" bson:"category"`
	Rating   *float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	Distance *float64 `json:"distance,omitempty" bson:"distance,omitempty"`
	ImageURL *string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Selected bool     `json:"selected" bson:"selected"`
}

type NearbySuggestionPatch struct {
	Name     *string  `json:"name,omitempty"`
	Type     *string  `json:"type,omitempty"`
	Category *string  `json:"category,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
	ImageURL *string  `json:"imageUrl,omitempty"`
	Selected *bool    `json:"selected,omitempty"`
}

func (s NearbySuggestion) Validate() error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if s.Rating != nil && !finite(*s.Rating) {
		return errors.New("rating must be a finite number")
	}
	if s.Distance != nil && (!finite(*s.Distance) || *s.Distance < 0) {
		return errors.New("distance must be a non-negative number")
	}
	return nil
}

func (s NearbySuggestion) Apply(p NearbySuggestionPatch) NearbySuggestion {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Rating != nil {
		s.Rating = cloneFloat(p.Rating)
	}
	if p.Distance != nil {
		s.Distance = cloneFloat(p.Distance)
	}
	if p.ImageURL != nil {
		v := *p.ImageURL
		s.ImageURL = &v
	}
	if p.Selected != nil {
		s.Selected = *p.Selected
	}
	return s
}

func (s NearbySuggestion) Clone() NearbySuggestion {
	s.Rating = cloneFloat(s.Rating)
	s.Distance = cloneFloat(s.Distance)
	if s.ImageURL != nil {
		v := *s.ImageURL
		s.ImageURL = &v
	}
	return s
}
