package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealscope/backend/config"
	"github.com/mealscope/backend/internal/api"
	"github.com/mealscope/backend/internal/middleware"
	"github.com/mealscope/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, nutritionService service.INutritionService, uploadService service.IUploadService) *Server {
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Register routes
	api.RegisterRoutes(router, cfg, nutritionService, uploadService)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
