package routes

import (
	"net/http"
	"time"

	"tutorhive/config"
	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the weekly availability editor
// endpoints. Everything is tutor-gated: the editor is a tutor-only surface.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthTutorMiddleware())
		api.GET("/week/:weekStart", h.LoadWeekHandler)

		api.GET("/draft/:draftID", h.GetDraftHandler)
		api.DELETE("/draft/:draftID", h.DiscardDraftHandler)
		api.PUT("/draft/:draftID/day/:date/toggle", h.ToggleDayHandler)
		api.POST("/draft/:draftID/day/:date/ranges", h.AddRangeHandler)
		api.PATCH("/draft/:draftID/day/:date/ranges/:rangeID", h.UpdateRangeHandler)
		api.DELETE("/draft/:draftID/day/:date/ranges/:rangeID", h.RemoveRangeHandler)
		api.POST("/draft/:draftID/copy-day", h.CopyDayHandler)
		api.POST("/draft/:draftID/preset", h.ApplyPresetHandler)
		api.POST("/draft/:draftID/save", h.SaveWeekHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// CORSMiddleware builds the CORS policy for browser clients of the editor.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterRoutes wires all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, h *handlers.AvailabilityHandler) {
	r.Use(CORSMiddleware())
	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, h)
}
