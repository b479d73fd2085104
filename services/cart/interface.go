package cart

import "tripcart/models"

// CartService is the read/mutate surface consumed by the rendering layer.
type CartService interface {
	AddAccommodation(a models.Accommodation) error
	RemoveAccommodation(id string) bool
	UpdateAccommodation(id string, patch models.AccommodationPatch) (bool, error)
	Accommodations() []models.Accommodation

	AddExperience(e models.Experience) error
	RemoveExperience(id int) bool
	UpdateExperience(id int, patch models.ExperiencePatch) (bool, error)
	Experiences() []models.Experience

	AddNearbySuggestion(s models.NearbySuggestion) error
	RemoveNearbySuggestion(id string) bool
	UpdateNearbySuggestion(id string, patch models.NearbySuggestionPatch) (bool, error)
	ToggleNearbySuggestion(id string) bool
	NearbySuggestion(id string) (models.NearbySuggestion, bool)
	NearbySuggestions() []models.NearbySuggestion

	ClearCart()
	Snapshot() models.CartSnapshot
	TotalAmount() float64
	TotalItems() int
	Totals() models.CartTotals
}

var _ CartService = (*Store)(nil)
