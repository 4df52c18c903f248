package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealscope/backend/config"
	"github.com/mealscope/backend/internal/database"
	"github.com/mealscope/backend/internal/middleware"
	"github.com/mealscope/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "MealScope API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, cfg *config.Config, nutritionService service.INutritionService, uploadService service.IUploadService) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	// Initialize Redis for rate limiting
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
		// Continue without rate limiting if Redis is not available
		redisClient = nil
	}

	var analysisLimiter *middleware.RateLimiter
	if redisClient != nil {
		analysisLimiter = middleware.NewAnalysisRateLimiter(redisClient)
	}

	nutritionHandler := NewNutritionHandler(nutritionService, analysisLimiter)
	uploadHandler := NewUploadHandler(uploadService)

	v1 := router.Group("/api/v1")
	if cfg.JWTSecret != "" {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	nutritionHandler.RegisterRoutes(v1)
	uploadHandler.RegisterRoutes(v1)
}
