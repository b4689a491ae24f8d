package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Gnaveen516/Trade-Opportunities-API/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects requests once the caller's window is exhausted. It must
// run after Auth so the identity is available.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity(c)
		if identity == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		decision, err := limiter.Admit(c.Request.Context(), identity)
		if err != nil {
			slog.Error("rate limit check failed", "error", err, "identity", identity)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !decision.Allowed {
			secs := decision.RetryAfterSeconds()
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": fmt.Sprintf("Rate limit exceeded. Try again in %d seconds.", secs),
			})
			return
		}

		c.Next()
	}
}
