package progress

import (
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressUseCase implements domain.ProgressUseCase
type ProgressUseCase struct {
	progressRepo domain.ProgressRepository
	levelRepo    domain.LevelRepository
	playerRepo   domain.PlayerRepository
	db           *gorm.DB
	logger       *logger.Logger
}

// NewProgressUseCase creates a new progress use case
func NewProgressUseCase(
	progressRepo domain.ProgressRepository,
	levelRepo domain.LevelRepository,
	playerRepo domain.PlayerRepository,
	db *gorm.DB,
	logger *logger.Logger,
) domain.ProgressUseCase {
	return &ProgressUseCase{
		progressRepo: progressRepo,
		levelRepo:    levelRepo,
		playerRepo:   playerRepo,
		db:           db,
		logger:       logger,
	}
}

// GetProgress returns every progress row the player has, joined with the
// level catalog and ordered by level number.
func (uc *ProgressUseCase) GetProgress(playerID int64) ([]domain.ProgressEntry, error) {
	if playerID <= 0 {
		return nil, domain.NewValidationError("player_id required")
	}

	entries, err := uc.progressRepo.ListByPlayer(playerID)
	if err != nil {
		uc.logger.Error("Failed to list player progress",
			zap.Int64("player_id", playerID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list progress", 500, err)
	}

	return entries, nil
}

// SubmitProgress runs the upsert-plus-recompute rule. The upsert and the
// star recomputation share one database transaction so a concurrent reader
// never sees a completed row next to a stale total_stars.
func (uc *ProgressUseCase) SubmitProgress(sub domain.ProgressSubmission) (*domain.SubmitResult, error) {
	if sub.PlayerID <= 0 || sub.LevelID <= 0 {
		return nil, domain.NewValidationError("player_id and level_id required")
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	result, err := uc.applySubmission(
		uc.progressRepo.WithTransaction(tx),
		uc.levelRepo.WithTransaction(tx),
		uc.playerRepo.WithTransaction(tx),
		sub,
	)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Progress submitted",
		zap.Int64("player_id", sub.PlayerID),
		zap.Int64("level_id", sub.LevelID),
		zap.Bool("completed", sub.Completed),
		zap.Int("attempts", result.Progress.Attempts))

	return result, nil
}

// applySubmission performs the upsert and, for completed submissions on a
// known level, the star recomputation. TotalStars stays nil when the
// submission is incomplete or the level does not exist; the response then
// carries the progress row alone.
func (uc *ProgressUseCase) applySubmission(
	progressRepo domain.ProgressRepository,
	levelRepo domain.LevelRepository,
	playerRepo domain.PlayerRepository,
	sub domain.ProgressSubmission,
) (*domain.SubmitResult, error) {
	row, err := progressRepo.Upsert(sub)
	if err != nil {
		uc.logger.Error("Failed to upsert progress",
			zap.Int64("player_id", sub.PlayerID),
			zap.Int64("level_id", sub.LevelID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to save progress", 500, err)
	}

	result := &domain.SubmitResult{Progress: row}

	if !sub.Completed {
		return result, nil
	}

	level, err := levelRepo.GetByID(sub.LevelID)
	if err != nil {
		uc.logger.Error("Failed to look up level",
			zap.Int64("level_id", sub.LevelID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to look up level", 500, err)
	}
	if level == nil {
		return result, nil
	}

	total, err := playerRepo.RecalculateTotalStars(sub.PlayerID)
	if err != nil {
		uc.logger.Error("Failed to recalculate total stars",
			zap.Int64("player_id", sub.PlayerID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update total stars", 500, err)
	}
	result.TotalStars = &total

	return result, nil
}
