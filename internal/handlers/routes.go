package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"image-relay-api/internal/middleware"
	"image-relay-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	RelayService services.RelayService
	Environment  string
	Model        string
	MaxBodyBytes int64
}

// NewRouter builds the gin engine with middleware and routes installed
func NewRouter(config *RouterConfig) *gin.Engine {
	router := gin.New()
	// Every POST path is relayed, so trailing slashes must not redirect
	router.RedirectTrailingSlash = false

	SetupMiddleware(router, config.MaxBodyBytes)
	SetupRoutes(router, config)
	return router
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	relayHandler := NewRelayHandler(config.RelayService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"service":     "image-relay-api",
			"version":     "1.0.0",
			"environment": config.Environment,
			"model":       config.Model,
		})
	})

	api := router.Group("/api")
	{
		api.POST("/generate", relayHandler.Generate)
	}

	router.NoRoute(relayHandler.Fallback)
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, maxBodyBytes int64) {
	// Request ID and correlation ID
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())

	// Structured logging
	router.Use(middleware.StructuredLogger())

	router.Use(middleware.Recovery())

	// CORS
	router.Use(middleware.CORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	router.Use(middleware.RequestSizeLimit(maxBodyBytes))
}
