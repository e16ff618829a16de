package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playforge/starquest/internal/domain"
)

// ProgressHandler handles HTTP requests for player progress
type ProgressHandler struct {
	progressUseCase domain.ProgressUseCase
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressUseCase domain.ProgressUseCase) *ProgressHandler {
	return &ProgressHandler{progressUseCase: progressUseCase}
}

// SubmitProgressRequest represents the submit request body
type SubmitProgressRequest struct {
	PlayerID    int64   `json:"player_id" example:"1"`
	LevelID     int64   `json:"level_id" example:"10"`
	Completed   bool    `json:"completed" example:"true"`
	TimeSeconds float64 `json:"time_seconds" example:"42"`
}

// ProgressListResponse represents the progress listing response body
type ProgressListResponse struct {
	Progress []domain.ProgressEntry `json:"progress"`
}

// SubmitProgressResponse represents the submit response body. TotalStars is
// present only when the submission was completed and the level exists.
type SubmitProgressResponse struct {
	Progress   *domain.PlayerProgress `json:"progress"`
	TotalStars *int                   `json:"total_stars,omitempty"`
}

// Get returns the player's progress rows
// @Summary List a player's level progress
// @Description Progress rows joined with their levels, ordered by level number
// @Tags progress
// @Produce json
// @Param player_id query int true "Player ID"
// @Success 200 {object} ProgressListResponse
// @Failure 400 {object} ErrorResponse
// @Router /progress [get]
func (h *ProgressHandler) Get(c *gin.Context) {
	raw := c.Query("player_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "player_id required"})
		return
	}

	playerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "player_id must be an integer"})
		return
	}

	entries, err := h.progressUseCase.GetProgress(playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProgressListResponse{Progress: entries})
}

// Submit records one submission for a (player, level) pair
// @Summary Submit level progress
// @Description Upserts the progress row and, for completed submissions on a known level, recomputes the player's stars
// @Tags progress
// @Accept json
// @Produce json
// @Param request body SubmitProgressRequest true "Submission"
// @Success 200 {object} SubmitProgressResponse
// @Failure 400 {object} ErrorResponse
// @Router /progress [post]
func (h *ProgressHandler) Submit(c *gin.Context) {
	var req SubmitProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	result, err := h.progressUseCase.SubmitProgress(domain.ProgressSubmission{
		PlayerID:    req.PlayerID,
		LevelID:     req.LevelID,
		Completed:   req.Completed,
		TimeSeconds: req.TimeSeconds,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitProgressResponse{
		Progress:   result.Progress,
		TotalStars: result.TotalStars,
	})
}
