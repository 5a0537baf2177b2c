package models

import "time"

// ReportStatusPending is the initial status of every report. Transitions are
// free-form strings set by moderators; no state machine is enforced here.
const ReportStatusPending = "pending"

// Report represents a moderation flag raised by a user against a story.
// A given reporter may report a given story at most once.
type Report struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	StoryID     uint      `json:"story_id" gorm:"index;uniqueIndex:idx_story_reporter;not null"`
	ReporterID  uint      `json:"reporter_id" gorm:"uniqueIndex:idx_story_reporter;not null"`
	Reason      string    `json:"reason" gorm:"not null"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status" gorm:"index;default:'pending'"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateReportRequest defines the request body for reporting a story
type CreateReportRequest struct {
	Reason      string  `json:"reason" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateReportStatusRequest defines the request body for moderating a report
type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
