package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"irys_gallery/internal/domain"     // Typed errors
	"irys_gallery/internal/middleware" // Request id

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// redactedMessage replaces server error details when redaction is on
const redactedMessage = "Internal server error"

// statusFor maps a typed error to its HTTP status and client message
func statusFor(err error) (int, string) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	var parseErr *domain.ParseError
	var storeErr *domain.StoreError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &parseErr):
		return http.StatusInternalServerError, parseErr.Error() // Parse failures keep the generic 500
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError, storeErr.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// abortWithError answers {"error": message} with the status mapped from err
func abortWithError(c *gin.Context, err error, redact bool) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		// Log the full error with context
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c), // Request id
			"route":      c.FullPath(),               // Route template
			"error":      err.Error(),                // Error message
		}).Error("Request failed")
		if redact {
			message = redactedMessage // Hide store details from the client
		}
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
