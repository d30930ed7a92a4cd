package models

import (
	"time"
)

// Follow represents one directed edge of the social graph: follower follows
// followee. A single row backs both the follower's "following" set and the
// followee's "followers" set, so the pair can never drift apart.
// The combination of FollowerID and FolloweeID must be unique.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_followee" json:"followerId"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follower_followee;index" json:"followeeId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"userId"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post;index" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for GORM
func (Like) TableName() string {
	return "likes"
}
