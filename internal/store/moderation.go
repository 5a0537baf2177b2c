package store

import (
	"errors"
	"log"
	"time"

	"github.com/espectro-app/backend/internal/models"
	"gorm.io/gorm"
)

// CreateReport files a moderation report against a story. A reporter may
// report a given story once; the (story, reporter) unique index gates
// duplicates. Reporting one's own story is allowed.
func (s *StoryStore) CreateReport(storyID, reporterID uint, reason string, description *string) bool {
	if reason == "" {
		return false
	}

	report := &models.Report{
		StoryID:     storyID,
		ReporterID:  reporterID,
		Reason:      reason,
		Description: description,
		Status:      models.ReportStatusPending,
	}
	if err := s.db.Create(report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false
		}
		log.Printf("store: report on story %d by user %d failed: %v", storyID, reporterID, err)
		return false
	}
	return true
}

type reportRow struct {
	ID               uint
	StoryID          uint
	ReporterID       uint
	Reason           string
	Description      *string
	Status           string
	StoryContent     *string
	Location         *string
	Category         *string
	ReporterUsername *string
	StoryAuthor      *string
	CreatedAt        time.Time
}

// Reports lists reports with the given status (default "pending"),
// newest-first, enriched with a snippet of the reported story and the
// usernames of reporter and author.
func (s *StoryStore) Reports(status string) []ReportView {
	if status == "" {
		status = models.ReportStatusPending
	}

	var rows []reportRow
	err := s.db.Table("reports").
		Select("reports.id, reports.story_id, reports.reporter_id, reports.reason, reports.description, reports.status, reports.created_at, "+
			"stories.content AS story_content, stories.location, stories.category, "+
			"reporter.username AS reporter_username, author.username AS story_author").
		Joins("LEFT JOIN stories ON stories.id = reports.story_id").
		Joins("LEFT JOIN users reporter ON reporter.id = reports.reporter_id").
		Joins("LEFT JOIN users author ON author.id = stories.user_id").
		Where("reports.status = ?", status).
		Order("reports.created_at DESC, reports.id DESC").
		Scan(&rows).Error
	if err != nil {
		log.Printf("store: reports with status %q failed: %v", status, err)
		return []ReportView{}
	}

	views := make([]ReportView, len(rows))
	for i, row := range rows {
		views[i] = ReportView{
			ID:               row.ID,
			StoryID:          row.StoryID,
			ReporterID:       row.ReporterID,
			Reason:           row.Reason,
			Description:      deref(row.Description),
			Status:           row.Status,
			StoryContent:     snippet(deref(row.StoryContent)),
			Location:         deref(row.Location),
			Category:         deref(row.Category),
			ReporterUsername: deref(row.ReporterUsername),
			StoryAuthor:      deref(row.StoryAuthor),
			CreatedAt:        formatTimestamp(row.CreatedAt),
		}
	}
	return views
}

// UpdateReportStatus sets a report's status to any caller-supplied value; no
// transition rules are enforced at this layer. An unknown id is a no-op
// failure.
func (s *StoryStore) UpdateReportStatus(reportID uint, status string) bool {
	res := s.db.Model(&models.Report{}).Where("id = ?", reportID).Update("status", status)
	if res.Error != nil {
		log.Printf("store: status update for report %d failed: %v", reportID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}
