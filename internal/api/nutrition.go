package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealscope/backend/internal/middleware"
	"github.com/mealscope/backend/internal/service"
	"github.com/mealscope/backend/internal/types"
)

// NutritionHandler handles nutrition analysis requests
type NutritionHandler struct {
	nutritionService service.INutritionService
	rateLimiter      *middleware.RateLimiter
}

// NewNutritionHandler creates a new NutritionHandler instance
func NewNutritionHandler(nutritionService service.INutritionService, rateLimiter *middleware.RateLimiter) *NutritionHandler {
	return &NutritionHandler{
		nutritionService: nutritionService,
		rateLimiter:      rateLimiter,
	}
}

// RegisterRoutes registers the nutrition routes
func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition")
	if h.rateLimiter != nil {
		nutrition.Use(h.rateLimiter.RateLimitMiddleware())
	}
	{
		nutrition.POST("/analyze", h.Analyze)
	}
}

// Analyze handles nutrition analysis requests
func (h *NutritionHandler) Analyze(c *gin.Context) {
	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, sickness := range req.Sicknesses {
		if !isValidSickness(sickness) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sickness: " + string(sickness)})
			return
		}
	}

	result, err := h.nutritionService.ExtractNutrition(c.Request.Context(), req.Sicknesses, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func isValidSickness(sickness types.Sickness) bool {
	for _, valid := range types.Sicknesses() {
		if sickness == valid {
			return true
		}
	}
	return false
}
