package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcart/services/cart"
	"tripcart/utils"
)

// HealthHandler reports liveness, the last storage probe and persistence counters.
type HealthHandler struct {
	Monitor   *utils.HealthMonitor
	Persister *cart.Persister
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	body := gin.H{"status": "ok", "message": "Hi, I'm tripcart"}
	if h.Monitor != nil {
		storage := h.Monitor.GetHealthStatus()
		body["storage"] = storage
		if !storage.CheckedAt.IsZero() && !storage.Healthy {
			body["status"] = "degraded"
		}
	}
	if h.Persister != nil {
		body["persistence"] = h.Persister.Stats()
	}
	c.JSON(http.StatusOK, body)
}
