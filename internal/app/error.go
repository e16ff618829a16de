package app

import (
	"github.com/playforge/starquest/internal/http/middleware"
	"github.com/playforge/starquest/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
