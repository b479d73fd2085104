// File: tripcart/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Cart endpoints
	GetCart   gin.HandlerFunc
	GetTotals gin.HandlerFunc
	ClearCart gin.HandlerFunc

	AddAccommodation    gin.HandlerFunc
	UpdateAccommodation gin.HandlerFunc
	RemoveAccommodation gin.HandlerFunc

	AddExperience    gin.HandlerFunc
	UpdateExperience gin.HandlerFunc
	RemoveExperience gin.HandlerFunc

	AddSuggestion    gin.HandlerFunc
	UpdateSuggestion gin.HandlerFunc
	RemoveSuggestion gin.HandlerFunc
	ToggleSuggestion gin.HandlerFunc

	// Places endpoints
	GetNearbyPlaces gin.HandlerFunc
	AddNearbyPlaces gin.HandlerFunc

	Health gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods. A nil places handler leaves those routes unregistered.
func NewHandlerBundle(cartHandler *CartHandler, placesHandler *PlacesHandler, healthHandler *HealthHandler) *HandlerBundle {
	hb := &HandlerBundle{
		GetCart:   cartHandler.GetCart,
		GetTotals: cartHandler.GetTotals,
		ClearCart: cartHandler.ClearCart,

		AddAccommodation:    cartHandler.AddAccommodation,
		UpdateAccommodation: cartHandler.UpdateAccommodation,
		RemoveAccommodation: cartHandler.RemoveAccommodation,

		AddExperience:    cartHandler.AddExperience,
		UpdateExperience: cartHandler.UpdateExperience,
		RemoveExperience: cartHandler.RemoveExperience,

		AddSuggestion:    cartHandler.AddSuggestion,
		UpdateSuggestion: cartHandler.UpdateSuggestion,
		RemoveSuggestion: cartHandler.RemoveSuggestion,
		ToggleSuggestion: cartHandler.ToggleSuggestion,

		Health: healthHandler.GetHealth,
	}
	if placesHandler != nil {
		hb.GetNearbyPlaces = placesHandler.GetNearby
		hb.AddNearbyPlaces = placesHandler.AddNearby
	}
	return hb
}
