// Package middleware provides HTTP middleware for the dnamectl REST API:
// API key authentication and request logging.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/dnsname/internal/api/models"
)

// APIKeyHeader carries the shared secret.
const APIKeyHeader = "X-API-Key"

// RequireAPIKey enforces a shared-secret API key sent as `X-API-Key: <key>`.
// An empty expected key disables the check.
func RequireAPIKey(expected string) gin.HandlerFunc {
	want := []byte(expected)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(APIKeyHeader))
		if expected == "" || subtle.ConstantTimeCompare(got, want) == 1 {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
}
