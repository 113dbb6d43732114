package models

import "time"

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique. Rows are removed with
// a hard delete so the unique index never blocks a re-like after a dislike.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
