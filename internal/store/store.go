package store

import (
	"github.com/espectro-app/backend/internal/models"
	"gorm.io/gorm"
)

// UserStore defines the interface for account operations
type UserStore interface {
	Register(username, email, password string) bool
	Authenticate(username, password string) *models.User
	UserByID(id uint) (*models.User, error)
}

// StoryOperations defines the interface for story CRUD, enrichment reads,
// images and comments
type StoryOperations interface {
	CreateStory(ownerID uint, content string, location *string, category string, isAnonymous bool, photoPath *string) (uint, bool)
	Feed(limit, offset int) []StoryView
	StoriesByOwner(ownerID uint) []StoryView
	SearchStories(query string) []StoryView
	StoryByID(id uint) *StoryView
	UpdateStory(storyID, requesterID uint, content string, location *string, category string, isAnonymous bool) bool
	DeleteStory(storyID, requesterID uint) bool
	AddStoryImages(storyID uint, paths []string) bool
	AddComment(storyID, userID uint, content string) bool
	Comments(storyID uint) []CommentView
}

// InteractionStore defines the interface for likes and reactions
type InteractionStore interface {
	AddLike(storyID, userID uint) bool
	AddReaction(storyID, userID uint, kind string) bool
}

// ModerationStore defines the interface for report operations
type ModerationStore interface {
	CreateReport(storyID, reporterID uint, reason string, description *string) bool
	Reports(status string) []ReportView
	UpdateReportStatus(reportID uint, status string) bool
}

// NotificationStore defines the interface for the notification feed
type NotificationStore interface {
	Notify(userID uint, kind, title, message string, storyID, actorID *uint) bool
	Notifications(userID uint, limit, offset int) []NotificationView
	UnreadCount(userID uint) int64
	MarkRead(notificationID, userID uint) bool
	MarkAllRead(userID uint) bool
}

// StoryStore owns the relational database and exposes every read/write
// operation the presentation layer uses. Business-rule violations (duplicate
// username, duplicate like, non-owner edit, unknown id) come back as a plain
// false; only storage faults are logged.
type StoryStore struct {
	db *gorm.DB
}

// New creates a StoryStore on top of an initialized GORM connection.
func New(db *gorm.DB) *StoryStore {
	return &StoryStore{db: db}
}

var (
	_ UserStore         = (*StoryStore)(nil)
	_ StoryOperations   = (*StoryStore)(nil)
	_ InteractionStore  = (*StoryStore)(nil)
	_ ModerationStore   = (*StoryStore)(nil)
	_ NotificationStore = (*StoryStore)(nil)
)
