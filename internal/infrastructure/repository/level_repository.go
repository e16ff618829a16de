package repository

import (
	"errors"

	"github.com/playforge/starquest/internal/domain"

	"gorm.io/gorm"
)

// LevelRepository implements domain.LevelRepository
type LevelRepository struct {
	db *gorm.DB
}

// NewLevelRepository creates a new level repository
func NewLevelRepository(db *gorm.DB) domain.LevelRepository {
	return &LevelRepository{db: db}
}

// WithTransaction returns a repository bound to the given transaction
func (r *LevelRepository) WithTransaction(tx *gorm.DB) domain.LevelRepository {
	return &LevelRepository{db: tx}
}

// GetByID retrieves a level by ID
func (r *LevelRepository) GetByID(id int64) (*domain.Level, error) {
	var level domain.Level
	result := r.db.Where("id = ?", id).First(&level)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &level, nil
}

// Create creates a new level row
func (r *LevelRepository) Create(level *domain.Level) error {
	return r.db.Create(level).Error
}
