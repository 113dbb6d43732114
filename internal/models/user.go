// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultAvatarURL is assigned to users who have not uploaded a profile image.
const DefaultAvatarURL = "https://media.ripple.dev/defaults/avatar.png"

// User represents a user account in the Ripple application.
type User struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Username   string         `gorm:"unique;not null" json:"username"`
	Email      string         `gorm:"unique;not null" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	Name       string         `gorm:"not null" json:"name"`
	About      string         `json:"about"`
	Location   string         `json:"location"`
	Education  string         `json:"education"`
	Occupation string         `json:"occupation"`
	ImageURL   string         `json:"imageUrl"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// PublicProfile is the trimmed author view embedded in posts and comments.
type PublicProfile struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Public returns the author view of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, ImageURL: u.ImageURL}
}
