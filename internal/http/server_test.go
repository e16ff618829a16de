package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/domain/mocks"
	"github.com/playforge/starquest/internal/http/handlers"
	"github.com/playforge/starquest/internal/http/middleware"
	"github.com/playforge/starquest/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	authUC := mocks.NewMockAuthUseCase(ctrl)
	leaderboardUC := mocks.NewMockLeaderboardUseCase(ctrl)
	leaderboardUC.EXPECT().TopPlayers(gomock.Any()).Return([]domain.LeaderboardEntry{}, nil).AnyTimes()
	progressUC := mocks.NewMockProgressUseCase(ctrl)

	log := logger.NewLogger("test", "debug")
	return NewServer(
		handlers.NewAuthHandler(authUC),
		handlers.NewLeaderboardHandler(leaderboardUC),
		handlers.NewProgressHandler(progressUC),
		middleware.NewErrorHandler(log),
		log,
		"8080",
	)
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflightShortCircuits(t *testing.T) {
	server := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/auth", nil)
	req.Header.Set("Origin", "https://game.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	server.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestMethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/v1/auth"},
		{http.MethodPost, "/api/v1/leaderboard"},
		{http.MethodDelete, "/api/v1/progress"},
	}

	for _, tt := range tests {
		t.Run(tt.method+"_"+tt.target, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.target, nil)
			server.Router().ServeHTTP(w, req)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
		})
	}
}
