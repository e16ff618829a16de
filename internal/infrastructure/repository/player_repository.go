package repository

import (
	"errors"
	"time"

	"github.com/playforge/starquest/internal/domain"

	"gorm.io/gorm"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *PlayerRepository) WithTransaction(tx *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: tx}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByUsername retrieves a player by username
func (r *PlayerRepository) GetByUsername(username string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("username = ?", username).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// Create creates a new player row
func (r *PlayerRepository) Create(player *domain.Player) error {
	player.CreatedAt = time.Now()
	return r.db.Create(player).Error
}

// TopByStars returns the ranked leaderboard. Players without stars never
// appear; ties on stars go to the earlier registration.
func (r *PlayerRepository) TopByStars(limit int) ([]domain.LeaderboardEntry, error) {
	entries := make([]domain.LeaderboardEntry, 0, limit)
	err := r.db.Model(&domain.Player{}).
		Select("id, username, total_stars, created_at").
		Where("total_stars > 0").
		Order("total_stars DESC, created_at ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// RecalculateTotalStars rewrites the player's total_stars from the completed
// progress rows and returns the new total. This is the only write path for
// total_stars; it must run inside the same transaction as the progress upsert
// that triggered it.
func (r *PlayerRepository) RecalculateTotalStars(playerID int64) (int, error) {
	var total int
	err := r.db.Raw(`
		UPDATE players
		SET total_stars = (
			SELECT COALESCE(SUM(l.difficulty), 0)
			FROM player_progress pp
			JOIN levels l ON pp.level_id = l.id
			WHERE pp.player_id = ? AND pp.completed = true
		)
		WHERE id = ?
		RETURNING total_stars
	`, playerID, playerID).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
