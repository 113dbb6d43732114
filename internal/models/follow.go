package models

import "time"

// Follow is a directed edge: FollowerID follows FolloweeID.
// A user's "following" set and the other user's "followers" set are two views
// of the same rows, so the two sets can never drift apart.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
