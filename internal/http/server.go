package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playforge/starquest/internal/http/handlers"
	"github.com/playforge/starquest/internal/http/middleware"
	"github.com/playforge/starquest/internal/infrastructure/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router             *gin.Engine
	authHandler        *handlers.AuthHandler
	leaderboardHandler *handlers.LeaderboardHandler
	progressHandler    *handlers.ProgressHandler
	errorHandler       *middleware.ErrorHandler
	port               string
}

// NewServer creates a new HTTP server
func NewServer(
	authHandler *handlers.AuthHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	progressHandler *handlers.ProgressHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.Telemetry())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(errorHandler.RecoveryMiddleware())

	// Unsupported methods answer 405 with the JSON error body; the CORS
	// middleware has already short-circuited OPTIONS preflights by then.
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	server := &Server{
		router:             router,
		authHandler:        authHandler,
		leaderboardHandler: leaderboardHandler,
		progressHandler:    progressHandler,
		errorHandler:       errorHandler,
		port:               port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/auth", s.authHandler.Handle)
		v1.GET("/leaderboard", s.leaderboardHandler.Top)

		progressRoutes := v1.Group("/progress")
		{
			progressRoutes.GET("", s.progressHandler.Get)
			progressRoutes.POST("", s.progressHandler.Submit)
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
