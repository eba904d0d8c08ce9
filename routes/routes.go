package routes

import (
	"net/http"
	"time"

	"homely/handlers"
	"homely/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes registers price-quoting endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.POST("", hb.CreateQuote)
	}
}

// RegisterCatalogRoutes registers service-catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServices)
		api.GET("/:id", hb.GetService)
		api.POST("", hb.CreateService)
		api.PUT("/:id", hb.UpdateService)
		api.DELETE("/:id", hb.DeleteService)
	}
}

// RegisterAvailabilityRoutes registers booking-calendar endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:serviceId/calendar", hb.GetCalendar)
		api.GET("/:serviceId/slots", hb.GetSlots)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and every endpoint group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterQuoteRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
}
