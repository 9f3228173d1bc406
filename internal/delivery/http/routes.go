package http

import (
	"github.com/gin-gonic/gin"

	"github.com/fitform/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		sizing := v1.Group("/sizing")
		{
			sizing.POST("/recommend", handler.RecommendSize)
			sizing.POST("/schema", handler.DetectSchema)
			sizing.POST("/parse", handler.ParseText)
			sizing.POST("/validate", handler.ValidateMeasurements)
		}
	}

	return router
}
