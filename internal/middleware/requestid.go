package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Request id generation
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "requestID"

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it on the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Incoming id from a proxy
		if id == "" {
			id = uuid.NewString() // Generate a fresh id
		}
		c.Set(RequestIDKey, id)       // Store id in context
		c.Header(RequestIDHeader, id) // Echo id to the client
		c.Next()                      // Proceed to the next handler
	}
}

// GetRequestID returns the request id stored by RequestID, or an empty string
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
