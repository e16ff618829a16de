package seeder

import (
	"log"

	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/infrastructure/password"
)

// Seeder handles database seeding operations
type Seeder struct {
	playerRepo domain.PlayerRepository
	levelRepo  domain.LevelRepository
	hasher     password.Hasher
}

// NewSeeder creates a new seeder instance
func NewSeeder(playerRepo domain.PlayerRepository, levelRepo domain.LevelRepository, hasher password.Hasher) *Seeder {
	return &Seeder{
		playerRepo: playerRepo,
		levelRepo:  levelRepo,
		hasher:     hasher,
	}
}

// SeedLevels seeds the level catalog
func (s *Seeder) SeedLevels() error {
	log.Printf("Seeding levels...")

	levels := []domain.Level{
		{ID: 1, LevelNumber: 1, Name: "First Steps", Difficulty: 1},
		{ID: 2, LevelNumber: 2, Name: "Rolling Hills", Difficulty: 1},
		{ID: 3, LevelNumber: 3, Name: "Crystal Caves", Difficulty: 2},
		{ID: 4, LevelNumber: 4, Name: "Cloud Runner", Difficulty: 2},
		{ID: 5, LevelNumber: 5, Name: "Molten Core", Difficulty: 3},
		{ID: 6, LevelNumber: 6, Name: "Frozen Summit", Difficulty: 3},
		{ID: 7, LevelNumber: 7, Name: "Shadow Maze", Difficulty: 4},
		{ID: 8, LevelNumber: 8, Name: "Starfall Finale", Difficulty: 5},
	}

	for _, l := range levels {
		existing, err := s.levelRepo.GetByID(l.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		level := l
		if err := s.levelRepo.Create(&level); err != nil {
			return err
		}
	}

	log.Printf("Level seeding completed successfully")
	return nil
}

// SeedPlayers seeds demo players. One of them keeps a legacy SHA-256 digest
// so the login compatibility path stays exercised in dev environments.
func (s *Seeder) SeedPlayers() error {
	log.Printf("Seeding players...")

	bcryptHash, err := s.hasher.Hash("password123")
	if err != nil {
		return err
	}

	players := []struct {
		username string
		hash     string
	}{
		{"demo1", bcryptHash},
		{"demo2", bcryptHash},
		{"legacy_demo", password.LegacyHash("password123")},
	}

	for _, p := range players {
		existing, err := s.playerRepo.GetByUsername(p.username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		player := &domain.Player{
			Username:     p.username,
			PasswordHash: p.hash,
		}
		if err := s.playerRepo.Create(player); err != nil {
			return err
		}
	}

	log.Printf("Player seeding completed successfully")
	return nil
}
