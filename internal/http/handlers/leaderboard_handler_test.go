package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
)

func performLeaderboard(t *testing.T, handler *LeaderboardHandler, target string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.GET("/leaderboard", handler.Top)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLeaderboardTop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := []domain.LeaderboardEntry{
		{ID: 2, Username: "bob", TotalStars: 12, CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{ID: 1, Username: "alice", TotalStars: 7, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	uc := mocks.NewMockLeaderboardUseCase(ctrl)
	uc.EXPECT().TopPlayers(0).Return(entries, nil)

	w := performLeaderboard(t, NewLeaderboardHandler(uc), "/leaderboard")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LeaderboardResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Leaderboard, 2)
	assert.Equal(t, "bob", resp.Leaderboard[0].Username)
	assert.Equal(t, 12, resp.Leaderboard[0].TotalStars)
}

func TestLeaderboardTopPassesLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLeaderboardUseCase(ctrl)
	uc.EXPECT().TopPlayers(10).Return([]domain.LeaderboardEntry{}, nil)

	w := performLeaderboard(t, NewLeaderboardHandler(uc), "/leaderboard?limit=10")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"leaderboard":[]}`, w.Body.String())
}

func TestLeaderboardTopInvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLeaderboardUseCase(ctrl)

	w := performLeaderboard(t, NewLeaderboardHandler(uc), "/leaderboard?limit=ten")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"limit must be an integer"}`, w.Body.String())
}

func TestLeaderboardTopUseCaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockLeaderboardUseCase(ctrl)
	uc.EXPECT().TopPlayers(0).Return(nil, domain.NewDatabaseError("query leaderboard", assert.AnError))

	w := performLeaderboard(t, NewLeaderboardHandler(uc), "/leaderboard")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
