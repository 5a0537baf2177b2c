package models

import "time"

// Recognized reaction kinds. The column itself is an open string; other
// values are storable but carry no notification semantics.
const (
	ReactionFear      = "fear"
	ReactionSurprise  = "surprise"
	ReactionDisbelief = "disbelief"
)

// Reaction represents a named emotional response to a story, distinct from a
// like. A user may hold one reaction of each kind on a story simultaneously;
// the composite unique index enforces per-kind uniqueness.
type Reaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StoryID   uint      `json:"story_id" gorm:"index;uniqueIndex:idx_story_user_kind;not null"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_story_user_kind;not null"`
	Kind      string    `json:"kind" gorm:"uniqueIndex:idx_story_user_kind;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReactionRequest defines the request body for reacting to a story
type CreateReactionRequest struct {
	Kind string `json:"kind" validate:"required"`
}
