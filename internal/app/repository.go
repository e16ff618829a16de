package app

import (
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepositories(db *gorm.DB) (domain.PlayerRepository, domain.LevelRepository, domain.ProgressRepository) {
	return repository.NewPlayerRepository(db),
		repository.NewLevelRepository(db),
		repository.NewProgressRepository(db)
}
