package store

import (
	"testing"

	"github.com/espectro-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLikeOncePerUser(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "likeable story")

	require.True(t, s.AddLike(id, bob.ID))
	assert.False(t, s.AddLike(id, bob.ID))

	view := s.StoryByID(id)
	require.NotNil(t, view)
	assert.Equal(t, int64(1), view.Likes)
}

func TestAddLikeMissingStory(t *testing.T) {
	s := setupTestDB(t)
	bob := createTestUser(t, s, "bob")

	assert.False(t, s.AddLike(424242, bob.ID))

	var count int64
	require.NoError(t, s.db.Model(&models.Like{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddLikeNotifiesOwnerOnce(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "likeable story")

	require.True(t, s.AddLike(id, bob.ID))
	assert.False(t, s.AddLike(id, bob.ID))

	notifications := s.Notifications(ana.ID, 10, 0)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationLike, notifications[0].Kind)
	assert.Equal(t, "bob", notifications[0].ActorUsername)
	require.NotNil(t, notifications[0].StoryID)
	assert.Equal(t, id, *notifications[0].StoryID)
}

func TestAddLikeOwnStoryNoSelfNotification(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	id := createTestStory(t, s, ana.ID, "my own story")

	require.True(t, s.AddLike(id, ana.ID))

	assert.Empty(t, s.Notifications(ana.ID, 10, 0))
	view := s.StoryByID(id)
	require.NotNil(t, view)
	assert.Equal(t, int64(1), view.Likes)
}

func TestAddReactionKindsAreIndependent(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "reactive story")

	require.True(t, s.AddReaction(id, bob.ID, models.ReactionFear))
	require.True(t, s.AddReaction(id, bob.ID, models.ReactionSurprise))
	require.True(t, s.AddReaction(id, bob.ID, models.ReactionDisbelief))

	// Same kind again is gated, other kinds stayed.
	assert.False(t, s.AddReaction(id, bob.ID, models.ReactionFear))

	view := s.StoryByID(id)
	require.NotNil(t, view)
	assert.Equal(t, int64(1), view.Fear)
	assert.Equal(t, int64(1), view.Surprise)
	assert.Equal(t, int64(1), view.Disbelief)
}

func TestAddReactionEmptyKind(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "reactive story")

	assert.False(t, s.AddReaction(id, bob.ID, ""))
}

func TestAddReactionMissingStory(t *testing.T) {
	s := setupTestDB(t)
	bob := createTestUser(t, s, "bob")

	assert.False(t, s.AddReaction(424242, bob.ID, models.ReactionFear))
}

func TestAddReactionNotificationMessage(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "reactive story")

	require.True(t, s.AddReaction(id, bob.ID, models.ReactionFear))
	require.True(t, s.AddReaction(id, bob.ID, "unheard-of"))

	notifications := s.Notifications(ana.ID, 10, 0)
	require.Len(t, notifications, 2)
	// Newest first: the unknown kind falls back to the surprise emoji.
	assert.Equal(t, "Someone reacted 😮 to your story", notifications[0].Message)
	assert.Equal(t, "Someone reacted 😱 to your story", notifications[1].Message)
}

func TestAddReactionOwnStoryNoSelfNotification(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	id := createTestStory(t, s, ana.ID, "my own story")

	require.True(t, s.AddReaction(id, ana.ID, models.ReactionDisbelief))
	assert.Empty(t, s.Notifications(ana.ID, 10, 0))
}

func TestAddCommentNotifiesOwner(t *testing.T) {
	s := setupTestDB(t)
	ana := createTestUser(t, s, "ana")
	bob := createTestUser(t, s, "bob")
	id := createTestStory(t, s, ana.ID, "commented story")

	require.True(t, s.AddComment(id, bob.ID, "what happened next?"))
	require.True(t, s.AddComment(id, ana.ID, "I ran."))

	// Only bob's comment notifies; ana commenting on her own story does not.
	notifications := s.Notifications(ana.ID, 10, 0)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationComment, notifications[0].Kind)
	assert.Equal(t, "bob", notifications[0].ActorUsername)
}
