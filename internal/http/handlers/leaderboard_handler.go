package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/playforge/starquest/internal/domain"
)

// LeaderboardHandler handles HTTP requests for the global leaderboard
type LeaderboardHandler struct {
	leaderboardUseCase domain.LeaderboardUseCase
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardUseCase domain.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUseCase: leaderboardUseCase}
}

// LeaderboardResponse represents the leaderboard response body
type LeaderboardResponse struct {
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

// Top returns the ranked leaderboard
// @Summary Get the global leaderboard
// @Description Players ranked by total stars descending, earliest registration winning ties
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboardUseCase.TopPlayers(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LeaderboardResponse{Leaderboard: entries})
}
