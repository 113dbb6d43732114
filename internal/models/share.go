package models

import "time"

// Share represents a user re-sharing a post, optionally with a comment.
// At most one share may exist per (user, post) pair; the unique index
// replaces the reference behavior of scanning every share row.
type Share struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_share_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_share_user_post" json:"post_id"`
	Content   string    `json:"content"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
