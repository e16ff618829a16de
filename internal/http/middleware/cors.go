package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware stamps the permissive CORS headers on every response and
// short-circuits OPTIONS preflights with an empty 200, matching the contract
// browser clients expect from the three public endpoints.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-User-Id")
			c.Header("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
