package app

import (
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/infrastructure/logger"
	"github.com/playforge/starquest/internal/infrastructure/password"
	"github.com/playforge/starquest/internal/usecase/auth"
	"github.com/playforge/starquest/internal/usecase/leaderboard"
	"github.com/playforge/starquest/internal/usecase/progress"
	"gorm.io/gorm"
)

func (a *application) InitAuthUseCase(pr domain.PlayerRepository, hasher password.Hasher, log *logger.Logger) domain.AuthUseCase {
	return auth.NewAuthUseCase(pr, hasher, log)
}

func (a *application) InitLeaderboardUseCase(pr domain.PlayerRepository, log *logger.Logger) domain.LeaderboardUseCase {
	return leaderboard.NewLeaderboardUseCase(
		pr,
		a.config.Leaderboard.DefaultLimit,
		a.config.Leaderboard.MaxLimit,
		log,
	)
}

func (a *application) InitProgressUseCase(
	progressRepo domain.ProgressRepository,
	levelRepo domain.LevelRepository,
	playerRepo domain.PlayerRepository,
	db *gorm.DB,
	log *logger.Logger,
) domain.ProgressUseCase {
	return progress.NewProgressUseCase(progressRepo, levelRepo, playerRepo, db, log)
}
