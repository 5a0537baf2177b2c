package store

import (
	"errors"
	"log"

	"github.com/espectro-app/backend/internal/models"
	"gorm.io/gorm"
)

// maxImagesPerStory caps the attachments of a single story; excess submitted
// paths are silently dropped.
const maxImagesPerStory = 4

// CreateStory publishes a story for ownerID and returns its id. An unknown
// owner fails without raising. An empty category falls back to the default.
func (s *StoryStore) CreateStory(ownerID uint, content string, location *string, category string, isAnonymous bool, photoPath *string) (uint, bool) {
	if content == "" {
		return 0, false
	}
	if err := s.db.First(&models.User{}, ownerID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: create story: owner %d lookup failed: %v", ownerID, err)
		}
		return 0, false
	}
	if category == "" {
		category = models.DefaultCategory
	}

	story := &models.Story{
		UserID:      ownerID,
		Content:     content,
		Location:    location,
		Category:    category,
		IsAnonymous: isAnonymous,
		PhotoPath:   photoPath,
	}
	if err := s.db.Create(story).Error; err != nil {
		log.Printf("store: create story for user %d failed: %v", ownerID, err)
		return 0, false
	}
	return story.ID, true
}

// Feed returns stories newest-first, enriched for display. Offset-based
// pagination; the caller infers "more pages" from a full page coming back.
func (s *StoryStore) Feed(limit, offset int) []StoryView {
	var stories []models.Story
	err := s.db.Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&stories).Error
	if err != nil {
		log.Printf("store: feed query failed: %v", err)
		return []StoryView{}
	}
	return s.enrichStories(stories)
}

// StoriesByOwner returns all stories of one user, newest-first, enriched.
func (s *StoryStore) StoriesByOwner(ownerID uint) []StoryView {
	var stories []models.Story
	err := s.db.Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&stories).Error
	if err != nil {
		log.Printf("store: stories for user %d failed: %v", ownerID, err)
		return []StoryView{}
	}
	return s.enrichStories(stories)
}

// SearchStories matches a case-insensitive substring against content,
// location and category, OR-combined, newest-first.
func (s *StoryStore) SearchStories(query string) []StoryView {
	pattern := "%" + query + "%"
	var stories []models.Story
	err := s.db.Where(
		"LOWER(content) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)",
		pattern, pattern, pattern,
	).Order("created_at DESC, id DESC").Find(&stories).Error
	if err != nil {
		log.Printf("store: story search %q failed: %v", query, err)
		return []StoryView{}
	}
	return s.enrichStories(stories)
}

// StoryByID returns one enriched story, or nil when it does not exist.
func (s *StoryStore) StoryByID(id uint) *StoryView {
	var story models.Story
	if err := s.db.First(&story, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: story %d lookup failed: %v", id, err)
		}
		return nil
	}
	views := s.enrichStories([]models.Story{story})
	return &views[0]
}

// UpdateStory edits a story's mutable fields. Only the owner may edit; a
// missing story and a non-owner requester are the same false.
func (s *StoryStore) UpdateStory(storyID, requesterID uint, content string, location *string, category string, isAnonymous bool) bool {
	var story models.Story
	if err := s.db.First(&story, storyID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: update story %d lookup failed: %v", storyID, err)
		}
		return false
	}
	if story.UserID != requesterID {
		return false
	}
	if category == "" {
		category = models.DefaultCategory
	}

	err := s.db.Model(&models.Story{}).
		Where("id = ? AND user_id = ?", storyID, requesterID).
		Updates(map[string]interface{}{
			"content":      content,
			"location":     location,
			"category":     category,
			"is_anonymous": isAnonymous,
		}).Error
	if err != nil {
		log.Printf("store: update story %d failed: %v", storyID, err)
		return false
	}
	return true
}

// DeleteStory removes a story together with its likes, reactions, comments,
// images and reports in one transaction. Only the owner may delete.
func (s *StoryStore) DeleteStory(storyID, requesterID uint) bool {
	var story models.Story
	if err := s.db.First(&story, storyID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("store: delete story %d lookup failed: %v", storyID, err)
		}
		return false
	}
	if story.UserID != requesterID {
		return false
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("story_id = ?", storyID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("story_id = ?", storyID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("story_id = ?", storyID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("story_id = ?", storyID).Delete(&models.StoryImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("story_id = ?", storyID).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", storyID, requesterID).Delete(&models.Story{}).Error
	})
	if err != nil {
		log.Printf("store: delete story %d failed: %v", storyID, err)
		return false
	}
	return true
}

// AddStoryImages attaches up to four image paths to a story with ascending
// sort order. An empty list is a successful no-op.
func (s *StoryStore) AddStoryImages(storyID uint, paths []string) bool {
	if len(paths) == 0 {
		return true
	}
	if len(paths) > maxImagesPerStory {
		paths = paths[:maxImagesPerStory]
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for idx, path := range paths {
			image := &models.StoryImage{
				StoryID:   storyID,
				Path:      path,
				SortOrder: idx,
			}
			if err := tx.Create(image).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("store: images for story %d failed: %v", storyID, err)
		return false
	}
	return true
}

// enrichStories attaches author username, like count, per-kind reaction
// counts and ordered image paths to each story. Usernames are cached per
// call; anonymous stories mask the author.
func (s *StoryStore) enrichStories(stories []models.Story) []StoryView {
	views := make([]StoryView, len(stories))
	usernameCache := make(map[uint]string)

	for i, story := range stories {
		view := StoryView{
			ID:          story.ID,
			UserID:      story.UserID,
			Content:     story.Content,
			Location:    deref(story.Location),
			Category:    story.Category,
			IsAnonymous: story.IsAnonymous,
			PhotoPath:   deref(story.PhotoPath),
			Images:      []string{},
			CreatedAt:   formatTimestamp(story.CreatedAt),
		}

		if story.IsAnonymous {
			view.Username = AnonymousAuthor
		} else {
			view.Username = s.lookupUsername(story.UserID, usernameCache)
		}

		if err := s.db.Model(&models.Like{}).Where("story_id = ?", story.ID).
			Count(&view.Likes).Error; err != nil {
			log.Printf("store: like count for story %d failed: %v", story.ID, err)
		}

		view.Fear, view.Surprise, view.Disbelief = s.reactionCounts(story.ID)

		var images []models.StoryImage
		if err := s.db.Where("story_id = ?", story.ID).
			Order("sort_order, id").Find(&images).Error; err != nil {
			log.Printf("store: images for story %d failed: %v", story.ID, err)
		}
		for _, img := range images {
			view.Images = append(view.Images, img.Path)
		}

		views[i] = view
	}
	return views
}

func (s *StoryStore) reactionCounts(storyID uint) (fear, surprise, disbelief int64) {
	var rows []struct {
		Kind  string
		Count int64
	}
	err := s.db.Model(&models.Reaction{}).
		Select("kind, COUNT(*) as count").
		Where("story_id = ?", storyID).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		log.Printf("store: reaction counts for story %d failed: %v", storyID, err)
		return 0, 0, 0
	}
	for _, row := range rows {
		switch row.Kind {
		case models.ReactionFear:
			fear = row.Count
		case models.ReactionSurprise:
			surprise = row.Count
		case models.ReactionDisbelief:
			disbelief = row.Count
		}
	}
	return fear, surprise, disbelief
}

func (s *StoryStore) lookupUsername(userID uint, cache map[uint]string) string {
	if name, ok := cache[userID]; ok {
		return name
	}
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ""
	}
	cache[userID] = user.Username
	return user.Username
}
