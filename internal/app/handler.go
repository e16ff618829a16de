package app

import (
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/http/handlers"
)

func (a *application) InitAuthHandler(uc domain.AuthUseCase) *handlers.AuthHandler {
	return handlers.NewAuthHandler(uc)
}

func (a *application) InitLeaderboardHandler(uc domain.LeaderboardUseCase) *handlers.LeaderboardHandler {
	return handlers.NewLeaderboardHandler(uc)
}

func (a *application) InitProgressHandler(uc domain.ProgressUseCase) *handlers.ProgressHandler {
	return handlers.NewProgressHandler(uc)
}
