package auth

import (
	"errors"

	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/infrastructure/logger"
	"github.com/playforge/starquest/internal/infrastructure/password"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthUseCase implements domain.AuthUseCase
type AuthUseCase struct {
	playerRepo domain.PlayerRepository
	hasher     password.Hasher
	logger     *logger.Logger
}

// NewAuthUseCase creates a new auth use case
func NewAuthUseCase(playerRepo domain.PlayerRepository, hasher password.Hasher, logger *logger.Logger) domain.AuthUseCase {
	return &AuthUseCase{
		playerRepo: playerRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

// Register creates a new player with zero stars. The unique username
// constraint is the only duplicate check; a violation maps to a conflict
// error rather than leaking the database failure.
func (uc *AuthUseCase) Register(username, pass string) (*domain.Player, error) {
	if username == "" || pass == "" {
		return nil, domain.NewValidationError("Username and password required")
	}

	hash, err := uc.hasher.Hash(pass)
	if err != nil {
		uc.logger.Error("Failed to hash password during registration",
			zap.String("username", username),
			zap.Error(err))
		return nil, domain.NewInternalError("", err)
	}

	player := &domain.Player{
		Username:     username,
		PasswordHash: hash,
		TotalStars:   0,
	}

	if err := uc.playerRepo.Create(player); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			uc.logger.Warn("Registration rejected - username already taken",
				zap.String("username", username))
			return nil, domain.NewConflictError(domain.ErrCodeDuplicateUsername, "Username already taken")
		}
		uc.logger.Error("Failed to create player",
			zap.String("username", username),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create player", 500, err)
	}

	uc.logger.Info("Player registered",
		zap.Int64("player_id", player.ID),
		zap.String("username", username))

	return player, nil
}

// Login validates credentials and returns the matching player. Unknown
// username and wrong password produce the same error so usernames cannot be
// enumerated.
func (uc *AuthUseCase) Login(username, pass string) (*domain.Player, error) {
	if username == "" || pass == "" {
		return nil, domain.NewValidationError("Username and password required")
	}

	player, err := uc.playerRepo.GetByUsername(username)
	if err != nil {
		uc.logger.Error("Failed to get player during login",
			zap.String("username", username),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}

	if player == nil || !uc.hasher.Verify(pass, player.PasswordHash) {
		uc.logger.Warn("Login failed - invalid credentials",
			zap.String("username", username))
		return nil, domain.NewUnauthorizedError("Invalid credentials")
	}

	uc.logger.Info("Player logged in",
		zap.Int64("player_id", player.ID),
		zap.String("username", username))

	return player, nil
}
