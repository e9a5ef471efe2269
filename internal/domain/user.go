package domain

import "time" // Timestamps

// User Model
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`                        // Primary key, store generated
	WalletAddress string     `gorm:"uniqueIndex;not null" json:"wallet_address"`  // Unique wallet address
	Username      *string    `json:"username"`                                    // Display name
	AvatarURL     *string    `gorm:"column:avatar_url" json:"avatar_url"`         // Avatar image URL
	Bio           *string    `json:"bio"`                                         // Free-form biography
	XHandle       *string    `gorm:"column:x_handle" json:"x_handle"`             // X (Twitter) handle
	DiscordHandle *string    `gorm:"column:discord_handle" json:"discord_handle"` // Discord handle
	CreatedAt     *time.Time `gorm:"autoCreateTime:false" json:"created_at"`      // Store assigned creation timestamp
}

// TableName pins the table name used by the store
func (User) TableName() string {
	return "users"
}
