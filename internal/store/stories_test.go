package store

import (
	"testing"

	"github.com/espectro-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStoryDefaults(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "ana")

	id, ok := s.CreateStory(user.ID, "a chilling tale", nil, "", false, nil)
	require.True(t, ok)

	view := s.StoryByID(id)
	require.NotNil(t, view)
	assert.Equal(t, models.DefaultCategory, view.Category)
	assert.Equal(t, "ana", view.Username)
	assert.Empty(t, view.Location)
}

func TestCreateStoryUnknownOwner(t *testing.T) {
	s := setupTestDB(t)

	_, ok := s.CreateStory(9999, "orphan story", nil, "", false, nil)
	assert.False(t, ok)
}

func TestCreateStoryEmptyContent(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "ana")

	_, ok := s.CreateStory(user.ID, "", nil, "", false, nil)
	assert.False(t, ok)
}

func TestFeedNewestFirstWithEnrichment(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")

	first := createTestStory(t, s, ana.ID, "first story")
	second := createTestStory(t, s, ana.ID, "second story")

	require.True(t, s.AddLike(first, bob.ID))
	require.True(t, s.AddReaction(first, bob.ID, models.ReactionFear))
	require.True(t, s.AddReaction(first, bob.ID, models.ReactionSurprise))

	feed := s.Feed(10, 0)
	require.Len(t, feed, 2)

	assert.Equal(t, second, feed[0].ID)
	assert.Equal(t, first, feed[1].ID)

	assert.Equal(t, int64(1), feed[1].Likes)
	assert.Equal(t, int64(1), feed[1].Fear)
	assert.Equal(t, int64(1), feed[1].Surprise)
	assert.Equal(t, int64(0), feed[1].Disbelief)
	assert.Equal(t, "ana", feed[1].Username)
	assert.NotEmpty(t, feed[1].CreatedAt)
}

func TestFeedPagination(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	for i := 0; i < 5; i++ {
		createTestStory(t, s, ana.ID, "story")
	}

	page := s.Feed(3, 0)
	assert.Len(t, page, 3)

	rest := s.Feed(3, 3)
	assert.Len(t, rest, 2) // short page: no more to fetch
}

func TestAnonymousStoryMasksAuthor(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")

	id, ok := s.CreateStory(ana.ID, "I saw something", nil, "Ghost", true, nil)
	require.True(t, ok)

	view := s.StoryByID(id)
	require.NotNil(t, view)
	assert.Equal(t, AnonymousAuthor, view.Username)
	assert.True(t, view.IsAnonymous)
}

func TestStoriesByOwner(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")

	createTestStory(t, s, ana.ID, "ana one")
	createTestStory(t, s, ana.ID, "ana two")
	createTestStory(t, s, bob.ID, "bob one")

	assert.Len(t, s.StoriesByOwner(ana.ID), 2)
	assert.Len(t, s.StoriesByOwner(bob.ID), 1)
}

func TestSearchStories(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")

	loc := "Valparaíso, Chile"
	_, ok := s.CreateStory(ana.ID, "footsteps upstairs", &loc, "Apparition", false, nil)
	require.True(t, ok)
	_, ok = s.CreateStory(ana.ID, "strange lights", nil, "UFO", false, nil)
	require.True(t, ok)

	assert.Len(t, s.SearchStories("FOOTSTEPS"), 1) // content, case-insensitive
	assert.Len(t, s.SearchStories("valparaíso"), 1) // location
	assert.Len(t, s.SearchStories("ufo"), 1)        // category
	assert.Len(t, s.SearchStories("nothing here"), 0)
}

func TestStoryByIDMissing(t *testing.T) {
	s := setupTestDB(t)
	assert.Nil(t, s.StoryByID(424242))
}

func TestUpdateStoryOwnerOnly(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "original text")

	assert.False(t, s.UpdateStory(id, bob.ID, "hacked", nil, "Ghost", false))
	assert.False(t, s.UpdateStory(424242, ana.ID, "ghost edit", nil, "Ghost", false))

	view := s.StoryByID(id)
	require.NotNil(t, view)
	assert.Equal(t, "original text", view.Content)

	loc := "Santiago, Chile"
	require.True(t, s.UpdateStory(id, ana.ID, "edited text", &loc, "Ghost", true))

	view = s.StoryByID(id)
	require.NotNil(t, view)
	assert.Equal(t, "edited text", view.Content)
	assert.Equal(t, "Santiago, Chile", view.Location)
	assert.Equal(t, "Ghost", view.Category)
	assert.True(t, view.IsAnonymous)
}

func TestDeleteStoryCascades(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "doomed story")

	require.True(t, s.AddLike(id, bob.ID))
	require.True(t, s.AddReaction(id, bob.ID, models.ReactionFear))
	require.True(t, s.AddComment(id, bob.ID, "spooky"))
	require.True(t, s.AddStoryImages(id, []string{"a.jpg", "b.jpg"}))
	require.True(t, s.CreateReport(id, bob.ID, "inappropriate", nil))

	// A non-owner cannot delete, and nothing is lost.
	require.False(t, s.DeleteStory(id, bob.ID))
	require.NotNil(t, s.StoryByID(id))

	require.True(t, s.DeleteStory(id, ana.ID))
	assert.Nil(t, s.StoryByID(id))

	for _, model := range []interface{}{
		&models.Like{}, &models.Reaction{}, &models.Comment{},
		&models.StoryImage{}, &models.Report{},
	} {
		var count int64
		require.NoError(t, s.db.Model(model).Where("story_id = ?", id).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestAddStoryImagesCapsAtFour(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	id := createTestStory(t, s, ana.ID, "photo story")

	paths := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}
	require.True(t, s.AddStoryImages(id, paths))

	view := s.StoryByID(id)
	require.NotNil(t, view)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}, view.Images)

	var images []models.StoryImage
	require.NoError(t, s.db.Where("story_id = ?", id).Order("sort_order").Find(&images).Error)
	require.Len(t, images, 4)
	for i, img := range images {
		assert.Equal(t, i, img.SortOrder)
	}
}

func TestAddStoryImagesEmptyIsNoop(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	id := createTestStory(t, s, ana.ID, "plain story")

	assert.True(t, s.AddStoryImages(id, nil))
	view := s.StoryByID(id)
	require.NotNil(t, view)
	assert.Empty(t, view.Images)
}

func TestCommentsNewestFirstWithUsername(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "talked about")

	require.True(t, s.AddComment(id, bob.ID, "first!"))
	require.True(t, s.AddComment(id, ana.ID, "thanks"))

	comments := s.Comments(id)
	require.Len(t, comments, 2)
	assert.Equal(t, "thanks", comments[0].Content)
	assert.Equal(t, "ana", comments[0].Username)
	assert.Equal(t, "first!", comments[1].Content)
	assert.Equal(t, "bob", comments[1].Username)
}

func TestAddCommentMissingStory(t *testing.T) {
	s := setupTestDB(t)
	bob := createTestUser(t, s, "bob")

	assert.False(t, s.AddComment(424242, bob.ID, "into the void"))
	assert.False(t, s.AddComment(1, bob.ID, ""))
}
