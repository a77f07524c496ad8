package middleware

import (
	"log/slog"
	"net/http"

	"building/internal/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit caps the process-wide request rate. rps <= 0 disables it.
func RateLimit(rps float64, burst int, log *slog.Logger) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.Warn("too many requests", slog.String("client_ip", c.ClientIP()), slog.String("request_id", c.GetString(RequestIDKey)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.NewErrorResponse("Too many requests", ""))
			return
		}
		c.Next()
	}
}
