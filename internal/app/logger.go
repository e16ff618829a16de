package app

import (
	"github.com/playforge/starquest/internal/config"
	"github.com/playforge/starquest/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
