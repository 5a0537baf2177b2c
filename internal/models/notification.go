package models

import "time"

// Notification kinds produced by interaction recording.
const (
	NotificationLike     = "like"
	NotificationComment  = "comment"
	NotificationReaction = "reaction"
)

// Notification informs a story owner about an interaction on their story.
// StoryID and ActorID are optional so that future kinds (e.g. moderation
// outcomes) can omit them.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Kind      string    `json:"kind" gorm:"size:30;index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	StoryID   *uint     `json:"story_id,omitempty"`
	ActorID   *uint     `json:"actor_id,omitempty"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
