package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripcart/models"
	"tripcart/services/cart"
	"tripcart/utils"
)

// CartHandler exposes the trip cart over HTTP.
type CartHandler struct {
	Cart cart.CartService
}

func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Cart: svc}
}

// GetCart returns every collection together with the derived totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	snap := h.Cart.Snapshot()
	totals := h.Cart.Totals()
	c.JSON(http.StatusOK, models.CartResponse{
		CartSnapshot: snap,
		TotalAmount:  totals.TotalAmount,
		TotalItems:   totals.TotalItems,
	})
}

func (h *CartHandler) GetTotals(c *gin.Context) {
	c.JSON(http.StatusOK, h.Cart.Totals())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.Cart.ClearCart()
	getLogger(c).Info("Cart cleared")
	c.Status(http.StatusNoContent)
}

// AddAccommodation upserts a stay.
func (h *CartHandler) AddAccommodation(c *gin.Context) {
	var a models.Accommodation
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.Cart.AddAccommodation(a); err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.Cart.Totals())
}

func (h *CartHandler) UpdateAccommodation(c *gin.Context) {
	id := c.Param("id")
	var patch models.AccommodationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	found, err := h.Cart.UpdateAccommodation(id, patch)
	if err != nil {
		writeCartError(c, err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, "Accommodation not found", id)
		return
	}
	c.JSON(http.StatusOK, h.Cart.Totals())
}

// RemoveAccommodation answers 204 even when the id was not in the cart.
func (h *CartHandler) RemoveAccommodation(c *gin.Context) {
	id := c.Param("id")
	if !h.Cart.RemoveAccommodation(id) {
		getLogger(c).Debug("Remove of absent accommodation ignored", zap.String("id", id))
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) AddExperience(c *gin.Context) {
	var e models.Experience
	if err := c.ShouldBindJSON(&e); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.Cart.AddExperience(e); err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.Cart.Totals())
}

func (h *CartHandler) UpdateExperience(c *gin.Context) {
	id, ok := experienceID(c)
	if !ok {
		return
	}
	var patch models.ExperiencePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	found, err := h.Cart.UpdateExperience(id, patch)
	if err != nil {
		writeCartError(c, err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, "Experience not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, h.Cart.Totals())
}

func (h *CartHandler) RemoveExperience(c *gin.Context) {
	id, ok := experienceID(c)
	if !ok {
		return
	}
	h.Cart.RemoveExperience(id)
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) AddSuggestion(c *gin.Context) {
	var s models.NearbySuggestion
	if err := c.ShouldBindJSON(&s); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.Cart.AddNearbySuggestion(s); err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.Cart.Totals())
}

func (h *CartHandler) UpdateSuggestion(c *gin.Context) {
	id := c.Param("id")
	var patch models.NearbySuggestionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	found, err := h.Cart.UpdateNearbySuggestion(id, patch)
	if err != nil {
		writeCartError(c, err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, "Suggestion not found", id)
		return
	}
	c.JSON(http.StatusOK, h.Cart.Totals())
}

func (h *CartHandler) RemoveSuggestion(c *gin.Context) {
	h.Cart.RemoveNearbySuggestion(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ToggleSuggestion flips the selected flag and returns the new totals.
func (h *CartHandler) ToggleSuggestion(c *gin.Context) {
	id := c.Param("id")
	if !h.Cart.ToggleNearbySuggestion(id) {
		utils.JSONError(c, http.StatusNotFound, "Suggestion not found", id)
		return
	}
	c.JSON(http.StatusOK, h.Cart.Totals())
}

func experienceID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Experience id must be an integer", c.Param("id"))
		return 0, false
	}
	return id, true
}

func writeCartError(c *gin.Context, err error) {
	var verr *cart.ValidationError
	if errors.As(err, &verr) {
		utils.JSONError(c, http.StatusBadRequest, verr.Kind.Error(), verr.Reason.Error())
		return
	}
	getLogger(c).Error("Cart operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}
