package api

import (
	"context"  // Context for store operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"irys_gallery/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// Listing defaults
const (
	defaultPage  = "1"
	defaultLimit = "12"
)

// ArtworkStore lists artworks
type ArtworkStore interface {
	ListArtworks(ctx context.Context, q domain.ArtworkQuery) ([]domain.ArtworkListing, error)
}

// parseArtworkQuery reads page, limit and search. Values are not range checked.
func parseArtworkQuery(c *gin.Context) (domain.ArtworkQuery, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", defaultPage))
	if err != nil {
		return domain.ArtworkQuery{}, &domain.ParseError{Param: "page", Err: err}
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", defaultLimit))
	if err != nil {
		return domain.ArtworkQuery{}, &domain.ParseError{Param: "limit", Err: err}
	}
	return domain.ArtworkQuery{
		Page:   page,              // Page number
		Limit:  limit,             // Page size
		Search: c.Query("search"), // Optional search term
	}, nil
}

// ListArtworksHandler returns a page of artworks, optionally filtered by a search term
func ListArtworksHandler(store ArtworkStore, redact bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := parseArtworkQuery(c)
		if err != nil {
			abortWithError(c, err, redact) // Non-integer page or limit
			return
		}
		artworks, err := store.ListArtworks(c.Request.Context(), q)
		if err != nil {
			abortWithError(c, err, redact) // Store failure
			return
		}
		if artworks == nil {
			artworks = []domain.ArtworkListing{} // Always encode a list
		}
		c.JSON(http.StatusOK, gin.H{"artworks": artworks})
	}
}
