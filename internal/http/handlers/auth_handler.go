package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playforge/starquest/internal/domain"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	authUseCase domain.AuthUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUseCase domain.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// AuthRequest represents the auth request body
type AuthRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pw1"`
	Action   string `json:"action" example:"login" enums:"login,register"`
}

// PlayerInfo represents the player fields returned to clients. The password
// hash is never part of this shape.
type PlayerInfo struct {
	ID         int64  `json:"id" example:"1"`
	Username   string `json:"username" example:"alice"`
	TotalStars int    `json:"total_stars" example:"3"`
}

// AuthResponse represents the auth response body
type AuthResponse struct {
	User PlayerInfo `json:"user"`
}

// Handle processes a register or login request
// @Summary Register or log in a player
// @Description Registers a new player or authenticates an existing one; action defaults to login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AuthRequest true "Credentials and optional action"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth [post]
func (h *AuthHandler) Handle(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	var (
		player *domain.Player
		err    error
	)
	if req.Action == "register" {
		player, err = h.authUseCase.Register(req.Username, req.Password)
	} else {
		player, err = h.authUseCase.Login(req.Username, req.Password)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User: PlayerInfo{
			ID:         player.ID,
			Username:   player.Username,
			TotalStars: player.TotalStars,
		},
	})
}
