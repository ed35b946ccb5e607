package api

import (
	"github.com/gin-gonic/gin"

	"github.com/HydJing/status-service/internal/handler"
	"github.com/HydJing/status-service/internal/monitoring"
	"github.com/HydJing/status-service/internal/telemetry"
)

// SetupRoutes configures all routes. Unknown paths fall through to the
// router's default 404 and unsupported methods to its default 405.
func SetupRoutes(
	router *gin.Engine,
	greeting *handler.GreetingHandler,
	healthHandler *handler.HealthHandler,
	tel *telemetry.Provider,
) {
	router.Use(tel.Middleware())
	router.HandleMethodNotAllowed = true

	router.GET("/", greeting.Greet)
	router.GET("/status", healthHandler.Status)

	router.GET("/health", healthHandler.HealthCheck)
	router.HEAD("/health", healthHandler.HealthHead)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/memory", func(c *gin.Context) {
		monitoring.MemoryHealthHandler(c.Writer, c.Request)
	})

	router.GET("/metrics", gin.WrapH(tel.Handler()))
}
