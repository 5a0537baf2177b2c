package models

import "time"

// Comment represents a comment on a story. Unbounded per story, listed
// newest-first.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StoryID   uint      `json:"story_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for commenting on a story
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
