package domain

import (
	"time"

	"gorm.io/gorm"
)

// Player represents a registered player and their star aggregate.
//
// TotalStars is derived state: it always equals the sum of difficulty over
// the levels the player has completed, and is only ever written by
// PlayerRepository.RecalculateTotalStars.
type Player struct {
	ID           int64     `json:"id" gorm:"primaryKey;column:id"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null;type:varchar(128)"`
	TotalStars   int       `json:"total_stars" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetByID(id int64) (*Player, error)
	GetByUsername(username string) (*Player, error)
	Create(player *Player) error
	TopByStars(limit int) ([]LeaderboardEntry, error)
	RecalculateTotalStars(playerID int64) (int, error)
	WithTransaction(tx *gorm.DB) PlayerRepository
}

// AuthUseCase defines the interface for registration and login
type AuthUseCase interface {
	Register(username, password string) (*Player, error)
	Login(username, password string) (*Player, error)
}
