package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcart/models"
	"tripcart/services/cart"
	"tripcart/services/places"
	"tripcart/utils"
)

// PlacesHandler turns nearby places into cart suggestions.
type PlacesHandler struct {
	Places places.PlacesService
	Cart   cart.CartService
}

func NewPlacesHandler(svc places.PlacesService, cartSvc cart.CartService) *PlacesHandler {
	return &PlacesHandler{Places: svc, Cart: cartSvc}
}

type nearbyRequest struct {
	Lat      *float64 `json:"lat" binding:"required"`
	Lng      *float64 `json:"lng" binding:"required"`
	Type     string   `json:"type"`
	Category string   `json:"category"`
	Radius   int      `json:"radius"`
}

func (r nearbyRequest) query() models.NearbyQuery {
	return models.NearbyQuery{
		Origin:       models.Coordinates{Latitude: *r.Lat, Longitude: *r.Lng},
		Type:         r.Type,
		Category:     r.Category,
		RadiusMeters: r.Radius,
	}
}

// GetNearby looks up suggestions around lat/lng without touching the cart.
func (h *PlacesHandler) GetNearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid query parameters", "lat and lng must be numbers")
		return
	}
	radius, _ := strconv.Atoi(c.Query("radius"))

	req := nearbyRequest{Lat: &lat, Lng: &lng, Type: c.Query("type"), Category: c.Query("category"), Radius: radius}
	suggestions, ok := h.lookup(c, req.query())
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// AddNearby looks up suggestions and adds them to the cart. New places arrive
// unselected; places already in the cart keep the traveler's selection.
func (h *PlacesHandler) AddNearby(c *gin.Context) {
	var req nearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	suggestions, ok := h.lookup(c, req.query())
	if !ok {
		return
	}

	added := make([]models.NearbySuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if existing, ok := h.Cart.NearbySuggestion(s.ID); ok {
			s.Selected = existing.Selected
		}
		if err := h.Cart.AddNearbySuggestion(s); err != nil {
			getLogger(c).Warn("Skipping invalid nearby suggestion", zap.String("id", s.ID), zap.Error(err))
			continue
		}
		added = append(added, s)
	}
	c.JSON(http.StatusCreated, gin.H{"added": added, "totals": h.Cart.Totals()})
}

func (h *PlacesHandler) lookup(c *gin.Context, q models.NearbyQuery) ([]models.NearbySuggestion, bool) {
	found, err := h.Places.Nearby(c.Request.Context(), q)
	switch {
	case errors.Is(err, places.ErrMissingAPIKey):
		utils.JSONError(c, http.StatusServiceUnavailable, "Places lookup is not configured", "")
		return nil, false
	case err != nil:
		getLogger(c).Error("Places lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Places lookup failed", "Please try again later")
		return nil, false
	}
	return places.Suggestions(h.Places, found, q), true
}
