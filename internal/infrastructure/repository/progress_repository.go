package repository

import (
	"time"

	"github.com/playforge/starquest/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository implements domain.ProgressRepository
type ProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *gorm.DB) domain.ProgressRepository {
	return &ProgressRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *ProgressRepository) WithTransaction(tx *gorm.DB) domain.ProgressRepository {
	return &ProgressRepository{db: tx}
}

// ListByPlayer returns the player's progress rows joined with their levels,
// ordered by level number.
func (r *ProgressRepository) ListByPlayer(playerID int64) ([]domain.ProgressEntry, error) {
	entries := make([]domain.ProgressEntry, 0)
	err := r.db.Table("player_progress AS pp").
		Select("pp.player_id, pp.level_id, pp.completed, pp.best_time, pp.attempts, pp.completed_at, l.level_number, l.name, l.difficulty").
		Joins("JOIN levels l ON pp.level_id = l.id").
		Where("pp.player_id = ?", playerID).
		Order("l.level_number").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert inserts or updates the (player, level) progress row in one atomic
// statement, relying on the unique pair key. Conflict rules:
//   - completed is overwritten with the new value (last write wins)
//   - best_time keeps the minimum, with NULL treated as no floor
//   - attempts increments by exactly one per submission
//   - completed_at is refreshed only when the new submission is completed;
//     an incomplete submission never erases a prior completion timestamp
func (r *ProgressRepository) Upsert(sub domain.ProgressSubmission) (*domain.PlayerProgress, error) {
	now := time.Now()
	progress := domain.PlayerProgress{
		PlayerID:  sub.PlayerID,
		LevelID:   sub.LevelID,
		Completed: sub.Completed,
		BestTime:  &sub.TimeSeconds,
		Attempts:  1,
	}
	if sub.Completed {
		progress.CompletedAt = &now
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}, {Name: "level_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"completed": gorm.Expr("excluded.completed"),
			"best_time": gorm.Expr(`CASE
				WHEN player_progress.best_time IS NULL THEN excluded.best_time
				WHEN excluded.best_time < player_progress.best_time THEN excluded.best_time
				ELSE player_progress.best_time
			END`),
			"attempts":     gorm.Expr("player_progress.attempts + 1"),
			"completed_at": gorm.Expr("CASE WHEN excluded.completed THEN CURRENT_TIMESTAMP ELSE player_progress.completed_at END"),
		}),
	}).Create(&progress).Error
	if err != nil {
		return nil, err
	}

	// Create does not report the post-conflict column values, so read the
	// row back within the same transaction scope.
	var row domain.PlayerProgress
	err = r.db.Where("player_id = ? AND level_id = ?", sub.PlayerID, sub.LevelID).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
