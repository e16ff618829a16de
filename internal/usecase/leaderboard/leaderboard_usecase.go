package leaderboard

import (
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LeaderboardUseCase implements domain.LeaderboardUseCase
type LeaderboardUseCase struct {
	playerRepo   domain.PlayerRepository
	defaultLimit int
	maxLimit     int
	logger       *logger.Logger
}

// NewLeaderboardUseCase creates a new leaderboard use case
func NewLeaderboardUseCase(playerRepo domain.PlayerRepository, defaultLimit, maxLimit int, logger *logger.Logger) domain.LeaderboardUseCase {
	return &LeaderboardUseCase{
		playerRepo:   playerRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// TopPlayers returns the ranked leaderboard. A non-positive limit falls back
// to the default; anything above the configured ceiling is clamped.
func (uc *LeaderboardUseCase) TopPlayers(limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	if limit > uc.maxLimit {
		limit = uc.maxLimit
	}

	entries, err := uc.playerRepo.TopByStars(limit)
	if err != nil {
		uc.logger.Error("Failed to query leaderboard",
			zap.Int("limit", limit),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to query leaderboard", 500, err)
	}

	return entries, nil
}
