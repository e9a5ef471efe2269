package api

import (
	"context"  // Context for store ping
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// Pinger is satisfied by stores that can check connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler answers the liveness probe without touching the store
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",                     // Fixed status
			"message": "Irys Gallery API is running", // Fixed message
		})
	}
}

// ReadyHandler answers the readiness probe by pinging the store
func ReadyHandler(store Pinger, redact bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			message := err.Error()
			if redact {
				message = "Database unavailable"
			}
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": message}) // Store unreachable
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
