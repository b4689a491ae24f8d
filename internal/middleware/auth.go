package middleware

import (
	"net/http"
	"strings"

	"github.com/Gnaveen516/Trade-Opportunities-API/internal/auth"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Auth validates the bearer token and stores the resolved identity in the
// request context.
func Auth(keyring auth.Keyring) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)

		if !ok || token == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key"})
			return
		}

		identity, ok := keyring.Lookup(token)
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the authenticated caller's identity, or "" when the auth
// middleware has not run.
func Identity(c *gin.Context) string {
	return c.GetString(identityKey)
}
