package store

import (
	"errors"
	"log"

	"github.com/espectro-app/backend/internal/models"
	"gorm.io/gorm"
)

// AddComment records a comment and, in the same transaction, queues a
// "comment" notification to the story owner. Owners never hear about their
// own interactions.
func (s *StoryStore) AddComment(storyID, userID uint, content string) bool {
	if content == "" {
		return false
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var story models.Story
		if err := tx.First(&story, storyID).Error; err != nil {
			return err
		}

		comment := &models.Comment{
			StoryID: storyID,
			UserID:  userID,
			Content: content,
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		if story.UserID == userID {
			return nil
		}
		notification := &models.Notification{
			UserID:  story.UserID,
			Kind:    models.NotificationComment,
			Title:   "New comment",
			Message: "Someone commented on your story",
			StoryID: &storyID,
			ActorID: &userID,
		}
		return tx.Create(notification).Error
	})
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: comment on story %d by user %d failed: %v", storyID, userID, err)
		}
		return false
	}
	return true
}

// Comments returns a story's comments newest-first, each carrying the
// commenter's username.
func (s *StoryStore) Comments(storyID uint) []CommentView {
	var comments []models.Comment
	err := s.db.Where("story_id = ?", storyID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		log.Printf("store: comments for story %d failed: %v", storyID, err)
		return []CommentView{}
	}

	views := make([]CommentView, len(comments))
	usernameCache := make(map[uint]string)
	for i, comment := range comments {
		views[i] = CommentView{
			ID:        comment.ID,
			StoryID:   comment.StoryID,
			UserID:    comment.UserID,
			Username:  s.lookupUsername(comment.UserID, usernameCache),
			Content:   comment.Content,
			CreatedAt: formatTimestamp(comment.CreatedAt),
		}
	}
	return views
}
