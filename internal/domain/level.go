package domain

import "gorm.io/gorm"

// Level is a static content reference; difficulty doubles as the level's
// star value. Levels are never mutated by the API handlers.
type Level struct {
	ID          int64  `json:"id" gorm:"primaryKey;column:id"`
	LevelNumber int    `json:"level_number" gorm:"not null;uniqueIndex"`
	Name        string `json:"name" gorm:"not null;type:varchar(128)"`
	Difficulty  int    `json:"difficulty" gorm:"not null"`
}

// TableName specifies the table name for Level
func (l Level) TableName() string {
	return "levels"
}

// LevelRepository defines the interface for level data
type LevelRepository interface {
	GetByID(id int64) (*Level, error)
	Create(level *Level) error
	WithTransaction(tx *gorm.DB) LevelRepository
}
