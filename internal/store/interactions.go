package store

import (
	"errors"
	"fmt"
	"log"

	"github.com/espectro-app/backend/internal/models"
	"gorm.io/gorm"
)

// reactionEmoji maps recognized reaction kinds to the emoji used in the
// owner's notification. Unknown kinds fall back to surprise.
var reactionEmoji = map[string]string{
	models.ReactionFear:      "😱",
	models.ReactionSurprise:  "😮",
	models.ReactionDisbelief: "🙄",
}

// AddLike records a like on a story. The (story, user) unique index is the
// only duplicate gate: the insert is attempted unconditionally and a
// constraint violation means "already liked". The story owner gets a "like"
// notification unless they liked their own story.
func (s *StoryStore) AddLike(storyID, userID uint) bool {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var story models.Story
		if err := tx.First(&story, storyID).Error; err != nil {
			return err
		}

		like := &models.Like{StoryID: storyID, UserID: userID}
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		if story.UserID == userID {
			return nil
		}
		notification := &models.Notification{
			UserID:  story.UserID,
			Kind:    models.NotificationLike,
			Title:   "New like",
			Message: "Someone liked your story",
			StoryID: &storyID,
			ActorID: &userID,
		}
		return tx.Create(notification).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrRecordNotFound) {
			return false
		}
		log.Printf("store: like on story %d by user %d failed: %v", storyID, userID, err)
		return false
	}
	return true
}

// AddReaction records a reaction of one kind on a story. A user may hold one
// reaction per kind per story; kinds are independent of each other. The
// (story, user, kind) unique index gates duplicates. The owner's
// notification message varies by kind.
func (s *StoryStore) AddReaction(storyID, userID uint, kind string) bool {
	if kind == "" {
		return false
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var story models.Story
		if err := tx.First(&story, storyID).Error; err != nil {
			return err
		}

		reaction := &models.Reaction{StoryID: storyID, UserID: userID, Kind: kind}
		if err := tx.Create(reaction).Error; err != nil {
			return err
		}

		if story.UserID == userID {
			return nil
		}
		emoji, ok := reactionEmoji[kind]
		if !ok {
			emoji = reactionEmoji[models.ReactionSurprise]
		}
		notification := &models.Notification{
			UserID:  story.UserID,
			Kind:    models.NotificationReaction,
			Title:   "New reaction",
			Message: fmt.Sprintf("Someone reacted %s to your story", emoji),
			StoryID: &storyID,
			ActorID: &userID,
		}
		return tx.Create(notification).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrRecordNotFound) {
			return false
		}
		log.Printf("store: reaction %q on story %d by user %d failed: %v", kind, storyID, userID, err)
		return false
	}
	return true
}
