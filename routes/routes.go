package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripcart/handlers"
)

// RegisterCartRoutes registers the trip cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.GetCart)
		api.DELETE("", hb.ClearCart)
		api.GET("/totals", hb.GetTotals)

		api.POST("/accommodations", hb.AddAccommodation)
		api.PATCH("/accommodations/:id", hb.UpdateAccommodation)
		api.DELETE("/accommodations/:id", hb.RemoveAccommodation)

		api.POST("/experiences", hb.AddExperience)
		api.PATCH("/experiences/:id", hb.UpdateExperience)
		api.DELETE("/experiences/:id", hb.RemoveExperience)

		api.POST("/suggestions", hb.AddSuggestion)
		api.PATCH("/suggestions/:id", hb.UpdateSuggestion)
		api.DELETE("/suggestions/:id", hb.RemoveSuggestion)
		api.POST("/suggestions/:id/toggle", hb.ToggleSuggestion)
	}
}

// RegisterPlacesRoutes registers the nearby lookup endpoints when a places client is configured.
func RegisterPlacesRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.GetNearbyPlaces == nil {
		return
	}
	api := r.Group("/api/places")
	{
		api.GET("/nearby", hb.GetNearbyPlaces)
		api.POST("/nearby/add", hb.AddNearbyPlaces)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	RegisterCartRoutes(r, hb)
	RegisterPlacesRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
