package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/playforge/starquest/internal/config"
	"github.com/playforge/starquest/internal/infrastructure/database"
	"github.com/playforge/starquest/internal/infrastructure/password"
	"github.com/playforge/starquest/internal/infrastructure/repository"
	"github.com/playforge/starquest/internal/infrastructure/seeder"
	"github.com/spf13/viper"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", "development", "Environment")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDatabase(&database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	playerRepo := repository.NewPlayerRepository(db.GetDB())
	levelRepo := repository.NewLevelRepository(db.GetDB())

	s := seeder.NewSeeder(playerRepo, levelRepo, password.NewHasher())

	if err := s.SeedLevels(); err != nil {
		log.Fatalf("Failed to seed levels: %v", err)
	}
	if err := s.SeedPlayers(); err != nil {
		log.Fatalf("Failed to seed players: %v", err)
	}

	fmt.Println("Seeding completed")
}

// loadConfig loads configuration from file
func loadConfig(configPath, configFile string) (*config.Config, error) {
	viper.SetConfigName(fmt.Sprintf("config.%s", configFile))
	viper.SetConfigType("yml")
	viper.AddConfigPath(configPath)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &cfg, nil
}
