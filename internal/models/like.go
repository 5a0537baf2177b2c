package models

import "time"

// Like represents a like on a story. The composite unique index is the
// duplicate gate: at most one like per (story, user), enforced by the
// storage engine rather than by a lookup.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StoryID   uint      `json:"story_id" gorm:"index;uniqueIndex:idx_story_user_like;not null"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_story_user_like;not null"`
	CreatedAt time.Time `json:"created_at"`
}
