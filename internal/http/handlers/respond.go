package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playforge/starquest/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request"`
}

// respondError maps an error to the wire shape {"error": "<message>"}.
// Unclassified failures get a generic 500 body; details stay server-side.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, ErrorResponse{Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
