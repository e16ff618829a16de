package leaderboard

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/domain/mocks"
	"github.com/playforge/starquest/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func TestTopPlayersLimitBounds(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		queried   int
	}{
		{"Zero_Uses_Default", 0, 50},
		{"Negative_Uses_Default", -3, 50},
		{"Within_Bounds", 10, 10},
		{"Above_Max_Clamped", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPlayerRepository(ctrl)
			repo.EXPECT().TopByStars(tt.queried).Return([]domain.LeaderboardEntry{}, nil)

			uc := NewLeaderboardUseCase(repo, 50, 100, logger.NewLogger("test", "debug"))

			entries, err := uc.TopPlayers(tt.requested)
			assert.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestTopPlayersPassesEntriesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := []domain.LeaderboardEntry{
		{ID: 2, Username: "bob", TotalStars: 9, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: 1, Username: "alice", TotalStars: 9, CreatedAt: time.Now()},
		{ID: 3, Username: "carol", TotalStars: 4, CreatedAt: time.Now()},
	}

	repo := mocks.NewMockPlayerRepository(ctrl)
	repo.EXPECT().TopByStars(50).Return(expected, nil)

	uc := NewLeaderboardUseCase(repo, 50, 100, logger.NewLogger("test", "debug"))

	entries, err := uc.TopPlayers(0)
	assert.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestTopPlayersRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPlayerRepository(ctrl)
	repo.EXPECT().TopByStars(50).Return(nil, errors.New("connection refused"))

	uc := NewLeaderboardUseCase(repo, 50, 100, logger.NewLogger("test", "debug"))

	entries, err := uc.TopPlayers(50)
	assert.Nil(t, entries)

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
}
