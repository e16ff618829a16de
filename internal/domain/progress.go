package domain

import (
	"time"

	"gorm.io/gorm"
)

// PlayerProgress is the fact row linking one player to one level. A row is
// created on the first submission for the pair and updated in place after
// that; there is no deletion path.
type PlayerProgress struct {
	PlayerID    int64      `json:"player_id" gorm:"primaryKey;column:player_id"`
	LevelID     int64      `json:"level_id" gorm:"primaryKey;column:level_id"`
	Completed   bool       `json:"completed" gorm:"not null;default:false"`
	BestTime    *float64   `json:"best_time" gorm:"type:numeric(10,3)"`
	Attempts    int        `json:"attempts" gorm:"not null;default:1"`
	CompletedAt *time.Time `json:"completed_at"`
}

// TableName specifies the table name for PlayerProgress
func (p PlayerProgress) TableName() string {
	return "player_progress"
}

// ProgressEntry is a progress row joined with its level, as returned by the
// progress listing.
type ProgressEntry struct {
	PlayerID    int64      `json:"player_id" gorm:"column:player_id"`
	LevelID     int64      `json:"level_id" gorm:"column:level_id"`
	Completed   bool       `json:"completed" gorm:"column:completed"`
	BestTime    *float64   `json:"best_time" gorm:"column:best_time"`
	Attempts    int        `json:"attempts" gorm:"column:attempts"`
	CompletedAt *time.Time `json:"completed_at" gorm:"column:completed_at"`
	LevelNumber int        `json:"level_number" gorm:"column:level_number"`
	Name        string     `json:"name" gorm:"column:name"`
	Difficulty  int        `json:"difficulty" gorm:"column:difficulty"`
}

// ProgressSubmission is one submission for a (player, level) pair.
type ProgressSubmission struct {
	PlayerID    int64
	LevelID     int64
	Completed   bool
	TimeSeconds float64
}

// SubmitResult is the outcome of a submission. TotalStars is set only when
// the submission was completed and the level exists; otherwise the response
// carries the progress row alone.
type SubmitResult struct {
	Progress   *PlayerProgress
	TotalStars *int
}

// ProgressRepository defines the interface for progress data
type ProgressRepository interface {
	ListByPlayer(playerID int64) ([]ProgressEntry, error)
	Upsert(sub ProgressSubmission) (*PlayerProgress, error)
	WithTransaction(tx *gorm.DB) ProgressRepository
}

// ProgressUseCase defines the interface for progress business logic
type ProgressUseCase interface {
	GetProgress(playerID int64) ([]ProgressEntry, error)
	SubmitProgress(sub ProgressSubmission) (*SubmitResult, error)
}
