package store

import (
	"testing"

	"github.com/espectro-app/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing. A single
// connection keeps every query on the same in-memory instance.
func setupTestDB(t *testing.T) *StoryStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db))
	return New(db)
}

// createTestUser registers and returns a fresh account.
func createTestUser(t *testing.T, s *StoryStore, username string) *models.User {
	t.Helper()

	require.True(t, s.Register(username, username+"@example.com", "pw12345"))
	user := s.Authenticate(username, "pw12345")
	require.NotNil(t, user)
	return user
}

// createTestStory publishes a plain story owned by the given user.
func createTestStory(t *testing.T, s *StoryStore, ownerID uint, content string) uint {
	t.Helper()

	id, ok := s.CreateStory(ownerID, content, nil, "", false, nil)
	require.True(t, ok)
	return id
}

func TestOperationsOnClosedDatabaseReturnFailure(t *testing.T) {
	s := setupTestDB(t)
	user := createTestUser(t, s, "fragile")
	storyID := createTestStory(t, s, user.ID, "still here")

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	require.False(t, s.Register("other", "other@example.com", "pw12345"))
	require.Nil(t, s.Authenticate("fragile", "pw12345"))
	require.False(t, s.AddLike(storyID, user.ID))
	require.False(t, s.UpdateReportStatus(1, "reviewed"))
	require.Empty(t, s.Feed(10, 0))
}
