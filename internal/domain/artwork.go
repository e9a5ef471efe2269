package domain

import "time" // Timestamps

// Artwork Model
type Artwork struct {
	ID           uint       `gorm:"primaryKey" json:"id"`                      // Primary key
	UserID       uint       `gorm:"not null;index" json:"user_id"`             // Foreign key to User
	Title        *string    `json:"title"`                                     // Artwork title
	Description  *string    `json:"description"`                               // Artwork description
	FileType     *string    `json:"file_type"`                                 // Kind of file (image, video, ...)
	IrysID       *string    `gorm:"column:irys_id" json:"irys_id"`             // Content-addressed storage identifier
	FileURL      *string    `gorm:"column:file_url" json:"file_url"`           // URL of the stored file
	ThumbnailURL *string    `gorm:"column:thumbnail_url" json:"thumbnail_url"` // URL of the thumbnail
	FileSize     *int64     `json:"file_size"`                                 // File size in bytes
	MimeType     *string    `json:"mime_type"`                                 // MIME type
	CreatedAt    *time.Time `json:"created_at"`                                // Creation timestamp
	UpdatedAt    *time.Time `json:"updated_at"`                                // Last update timestamp
	Views        *int64     `json:"views"`                                     // View count
	Likes        *int64     `json:"likes"`                                     // Like count
}

// TableName pins the table name used by the store
func (Artwork) TableName() string {
	return "artworks"
}

// ArtworkListing is an artwork joined with its owner's display fields
type ArtworkListing struct {
	Artwork              // All artwork columns
	ArtistName   *string `json:"artist_name"`   // Owner username
	ArtistAvatar *string `json:"artist_avatar"` // Owner avatar URL
}

// ArtworkQuery describes one page of the artwork listing
type ArtworkQuery struct {
	Page   int    // 1-based page number
	Limit  int    // Page size
	Search string // Case-insensitive substring matched against title or description
}

// Offset returns the number of rows skipped before the page
func (q ArtworkQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
