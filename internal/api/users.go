package api

import (
	"context"  // Context for store operations
	"net/http" // HTTP status codes

	"irys_gallery/internal/domain"     // Importing domain models
	"irys_gallery/internal/middleware" // Request id

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ConnectRequest represents a wallet connect request
type ConnectRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"` // Wallet address must be provided
}

// UserStore looks up or creates users by wallet address
type UserStore interface {
	ConnectWallet(ctx context.Context, walletAddress string) (*domain.User, bool, error)
}

// ConnectObserver is notified of every successful connect
type ConnectObserver interface {
	RecordConnect(created bool)
}

// errWalletRequired is returned for a missing or empty wallet address
var errWalletRequired = &domain.ValidationError{Message: "Wallet address is required"}

// ConnectWalletHandler returns the user for a wallet address, creating it on first connect.
// An existing user answers 200, a new one 201.
func ConnectWalletHandler(store UserStore, observer ConnectObserver, redact bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConnectRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.WalletAddress == "" {
			abortWithError(c, errWalletRequired, redact) // Missing body or address
			return
		}
		user, created, err := store.ConnectWallet(c.Request.Context(), req.WalletAddress)
		if err != nil {
			abortWithError(c, err, redact) // Store failure
			return
		}
		if observer != nil {
			observer.RecordConnect(created) // Count the outcome
		}
		// Log the connect with context
		entry := logrus.WithFields(logrus.Fields{
			"user_id":        user.ID,                    // User ID
			"wallet_address": user.WalletAddress,         // Wallet address
			"request_id":     middleware.GetRequestID(c), // Request id
		})
		if created {
			entry.Info("User created")
			c.JSON(http.StatusCreated, gin.H{"user": user}) // New user
			return
		}
		entry.Info("User connected")
		c.JSON(http.StatusOK, gin.H{"user": user}) // Existing user
	}
}
