package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/playforge/starquest/internal/domain"
	"github.com/playforge/starquest/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performAuth(t *testing.T, handler *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.POST("/auth", handler.Handle)

	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandleRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockAuthUseCase(ctrl)
	uc.EXPECT().Register("alice", "pw1").Return(&domain.Player{ID: 1, Username: "alice", TotalStars: 0}, nil)

	w := performAuth(t, NewAuthHandler(uc), `{"username":"alice","password":"pw1","action":"register"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, 0, resp.User.TotalStars)
}

func TestAuthHandleDefaultsToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockAuthUseCase(ctrl)
	uc.EXPECT().Login("alice", "pw1").Return(&domain.Player{ID: 1, Username: "alice", TotalStars: 7}, nil)

	w := performAuth(t, NewAuthHandler(uc), `{"username":"alice","password":"pw1"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.User.TotalStars)
}

func TestAuthHandleResponseOmitsPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockAuthUseCase(ctrl)
	uc.EXPECT().Login("alice", "pw1").Return(&domain.Player{ID: 1, Username: "alice", PasswordHash: "secret"}, nil)

	w := performAuth(t, NewAuthHandler(uc), `{"username":"alice","password":"pw1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandleInvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockAuthUseCase(ctrl)

	w := performAuth(t, NewAuthHandler(uc), `{"username":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestAuthHandleInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockAuthUseCase(ctrl)
	uc.EXPECT().Login("alice", "wrong").Return(nil, domain.NewUnauthorizedError("Invalid credentials"))

	w := performAuth(t, NewAuthHandler(uc), `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestAuthHandleDuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockAuthUseCase(ctrl)
	uc.EXPECT().Register("alice", "pw1").Return(nil, domain.NewConflictError(domain.ErrCodeDuplicateUsername, "Username already taken"))

	w := performAuth(t, NewAuthHandler(uc), `{"username":"alice","password":"pw1","action":"register"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Username already taken"}`, w.Body.String())
}
