package routes

import (
	"net/http"
	"time"

	"skillbridge/handlers"
	"skillbridge/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers slot management and schedule query
// endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		// Slot CRUD (owner-facing).
		api.POST("", h.CreateSlotHandler)
		api.PUT("/:id", h.UpdateSlotHandler)
		api.DELETE("/:id", h.DeleteSlotHandler)

		// Schedule queries.
		api.GET("/user/:userId", h.GetUserSlotsHandler)
		api.GET("/user/:userId/slots", h.GetBookableSlotsHandler)
		api.GET("/user/:userId/check", h.CheckAvailabilityHandler)
		api.GET("/overlap/:userId/:otherUserId", h.GetOverlapHandler)
		api.GET("/matches/:userId", h.FindMatchesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes applies CORS and mounts every route group.
func RegisterRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, h)
}
