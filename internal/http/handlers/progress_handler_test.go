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

func newProgressRouter(handler *ProgressHandler) *gin.Engine {
	router := gin.New()
	router.GET("/progress", handler.Get)
	router.POST("/progress", handler.Submit)
	return router
}

func TestProgressGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := []domain.ProgressEntry{
		{PlayerID: 1, LevelID: 10, Completed: true, Attempts: 2, LevelNumber: 1, Name: "First Steps", Difficulty: 1},
	}

	uc := mocks.NewMockProgressUseCase(ctrl)
	uc.EXPECT().GetProgress(int64(1)).Return(entries, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/progress?player_id=1", nil)
	newProgressRouter(NewProgressHandler(uc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ProgressListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Progress, 1)
	assert.Equal(t, "First Steps", resp.Progress[0].Name)
}

func TestProgressGetMissingPlayerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockProgressUseCase(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/progress", nil)
	newProgressRouter(NewProgressHandler(uc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"player_id required"}`, w.Body.String())
}

func TestProgressGetNonNumericPlayerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockProgressUseCase(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/progress?player_id=abc", nil)
	newProgressRouter(NewProgressHandler(uc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"player_id must be an integer"}`, w.Body.String())
}

func TestProgressSubmitWithStars(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bestTime := 42.0
	total := 3
	result := &domain.SubmitResult{
		Progress:   &domain.PlayerProgress{PlayerID: 1, LevelID: 10, Completed: true, BestTime: &bestTime, Attempts: 1},
		TotalStars: &total,
	}

	uc := mocks.NewMockProgressUseCase(ctrl)
	uc.EXPECT().SubmitProgress(domain.ProgressSubmission{
		PlayerID:    1,
		LevelID:     10,
		Completed:   true,
		TimeSeconds: 42,
	}).Return(result, nil)

	body := `{"player_id":1,"level_id":10,"completed":true,"time_seconds":42}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/progress", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	newProgressRouter(NewProgressHandler(uc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "progress")
	assert.Contains(t, resp, "total_stars")
	assert.Equal(t, "3", string(resp["total_stars"]))
}

func TestProgressSubmitWithoutStarsOmitsField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bestTime := 42.0
	result := &domain.SubmitResult{
		Progress: &domain.PlayerProgress{PlayerID: 1, LevelID: 10, Completed: false, BestTime: &bestTime, Attempts: 2},
	}

	uc := mocks.NewMockProgressUseCase(ctrl)
	uc.EXPECT().SubmitProgress(gomock.Any()).Return(result, nil)

	body := `{"player_id":1,"level_id":10,"completed":false,"time_seconds":42}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/progress", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	newProgressRouter(NewProgressHandler(uc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "progress")
	assert.NotContains(t, resp, "total_stars")
}

func TestProgressSubmitValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockProgressUseCase(ctrl)
	uc.EXPECT().SubmitProgress(gomock.Any()).Return(nil, domain.NewValidationError("player_id and level_id required"))

	body := `{"completed":true,"time_seconds":42}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/progress", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	newProgressRouter(NewProgressHandler(uc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"player_id and level_id required"}`, w.Body.String())
}

func TestProgressSubmitInvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockProgressUseCase(ctrl)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/progress", bytes.NewBufferString(`{"player_id":`))
	req.Header.Set("Content-Type", "application/json")
	newProgressRouter(NewProgressHandler(uc)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}
