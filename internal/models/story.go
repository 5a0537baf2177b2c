package models

import "time"

// DefaultCategory is applied when a story is submitted without one.
const DefaultCategory = "Apparition"

// Story represents a user-submitted paranormal experience. The owner is
// immutable; content, location, category and anonymity are editable by the
// owner only. PhotoPath is the legacy single-photo slot kept for stories
// created before the story_images table existed.
type Story struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Content     string    `json:"content" gorm:"not null"`
	Location    *string   `json:"location,omitempty"`
	Category    string    `json:"category" gorm:"index;default:'Apparition'"`
	IsAnonymous bool      `json:"is_anonymous" gorm:"default:false"`
	PhotoPath   *string   `json:"photo_path,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// StoryImage is one attachment of a story, rendered in ascending SortOrder
// (ties broken by id). At most four per story.
type StoryImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StoryID   uint      `json:"story_id" gorm:"index;not null"`
	Path      string    `json:"path" gorm:"not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateStoryRequest defines the request body for publishing a story
type CreateStoryRequest struct {
	Content     string   `json:"content" validate:"required,min=1"`
	Location    *string  `json:"location,omitempty"`
	Category    string   `json:"category,omitempty"`
	IsAnonymous bool     `json:"is_anonymous,omitempty"`
	PhotoPath   *string  `json:"photo_path,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// UpdateStoryRequest defines the request body for editing an existing story
type UpdateStoryRequest struct {
	Content     string  `json:"content" validate:"required,min=1"`
	Location    *string `json:"location,omitempty"`
	Category    string  `json:"category,omitempty"`
	IsAnonymous bool    `json:"is_anonymous,omitempty"`
}
