package domain

import "time"

// LeaderboardEntry is one ranked row of the global leaderboard. Only players
// with at least one star appear; ties on stars go to the earlier registration.
type LeaderboardEntry struct {
	ID         int64     `json:"id" gorm:"column:id"`
	Username   string    `json:"username" gorm:"column:username"`
	TotalStars int       `json:"total_stars" gorm:"column:total_stars"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}

// LeaderboardUseCase defines the interface for leaderboard queries
type LeaderboardUseCase interface {
	TopPlayers(limit int) ([]LeaderboardEntry, error)
}
