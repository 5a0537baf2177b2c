package store

import (
	"log"

	"github.com/espectro-app/backend/internal/models"
)

// Notify inserts a raw notification. Interaction recording uses it
// indirectly; it is also the hook for future moderation notices.
func (s *StoryStore) Notify(userID uint, kind, title, message string, storyID, actorID *uint) bool {
	notification := &models.Notification{
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Message: message,
		StoryID: storyID,
		ActorID: actorID,
	}
	if err := s.db.Create(notification).Error; err != nil {
		log.Printf("store: notification for user %d failed: %v", userID, err)
		return false
	}
	return true
}

// Notifications returns a user's notifications newest-first, enriched with
// the actor's username and a snippet of the related story when present.
func (s *StoryStore) Notifications(userID uint, limit, offset int) []NotificationView {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&notifications).Error
	if err != nil {
		log.Printf("store: notifications for user %d failed: %v", userID, err)
		return []NotificationView{}
	}

	views := make([]NotificationView, len(notifications))
	usernameCache := make(map[uint]string)
	for i, n := range notifications {
		view := NotificationView{
			ID:        n.ID,
			UserID:    n.UserID,
			Kind:      n.Kind,
			Title:     n.Title,
			Message:   n.Message,
			StoryID:   n.StoryID,
			ActorID:   n.ActorID,
			IsRead:    n.IsRead,
			CreatedAt: formatTimestamp(n.CreatedAt),
		}
		if n.ActorID != nil {
			view.ActorUsername = s.lookupUsername(*n.ActorID, usernameCache)
		}
		if n.StoryID != nil {
			var story models.Story
			if err := s.db.First(&story, *n.StoryID).Error; err == nil {
				view.StoryContent = snippet(story.Content)
			}
		}
		views[i] = view
	}
	return views
}

// UnreadCount returns how many of a user's notifications are unread.
func (s *StoryStore) UnreadCount(userID uint) int64 {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		log.Printf("store: unread count for user %d failed: %v", userID, err)
		return 0
	}
	return count
}

// MarkRead marks one notification as read, scoped to its owner: a
// notification belonging to another user is never mutated, even with a
// guessed id.
func (s *StoryStore) MarkRead(notificationID, userID uint) bool {
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if res.Error != nil {
		log.Printf("store: mark read %d for user %d failed: %v", notificationID, userID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}

// MarkAllRead marks every notification of a user as read.
func (s *StoryStore) MarkAllRead(userID uint) bool {
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		log.Printf("store: mark all read for user %d failed: %v", userID, err)
		return false
	}
	return true
}
