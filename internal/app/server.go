package app

import (
	"context"

	"github.com/playforge/starquest/internal/http"
	"github.com/playforge/starquest/internal/http/handlers"
	"github.com/playforge/starquest/internal/http/middleware"
	"github.com/playforge/starquest/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	authHandler *handlers.AuthHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	progressHandler *handlers.ProgressHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(authHandler, leaderboardHandler, progressHandler, errorHandler, log, port)
}

// RegisterServerHooks starts the HTTP server on application start
func (a *application) RegisterServerHooks(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return log.Sync()
		},
	})
}
