package store

import "time"

// AnonymousAuthor replaces the author's username on stories published with
// the anonymity flag set.
const AnonymousAuthor = "Anonymous"

const displayTimeLayout = "02/01/2006 15:04"

const snippetRunes = 80

// StoryView is a story enriched for display: author username (masked for
// anonymous stories), aggregate like count, per-kind reaction counts and the
// ordered image paths. Timestamps are pre-formatted display strings.
type StoryView struct {
	ID          uint     `json:"id"`
	UserID      uint     `json:"user_id"`
	Username    string   `json:"username"`
	Content     string   `json:"content"`
	Location    string   `json:"location,omitempty"`
	Category    string   `json:"category"`
	IsAnonymous bool     `json:"is_anonymous"`
	PhotoPath   string   `json:"photo_path,omitempty"`
	Images      []string `json:"images"`
	Likes       int64    `json:"likes"`
	Fear        int64    `json:"fear"`
	Surprise    int64    `json:"surprise"`
	Disbelief   int64    `json:"disbelief"`
	CreatedAt   string   `json:"created_at"`
}

// CommentView is a comment enriched with the commenter's username.
type CommentView struct {
	ID        uint   `json:"id"`
	StoryID   uint   `json:"story_id"`
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ReportView is a report enriched with a snippet of the reported story and
// the usernames of reporter and original author.
type ReportView struct {
	ID               uint   `json:"id"`
	StoryID          uint   `json:"story_id"`
	ReporterID       uint   `json:"reporter_id"`
	Reason           string `json:"reason"`
	Description      string `json:"description,omitempty"`
	Status           string `json:"status"`
	StoryContent     string `json:"story_content"`
	Location         string `json:"location,omitempty"`
	Category         string `json:"category"`
	ReporterUsername string `json:"reporter_username"`
	StoryAuthor      string `json:"story_author"`
	CreatedAt        string `json:"created_at"`
}

// NotificationView is a notification enriched with the actor's username and
// a snippet of the related story when present.
type NotificationView struct {
	ID            uint   `json:"id"`
	UserID        uint   `json:"user_id"`
	Kind          string `json:"kind"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	StoryID       *uint  `json:"story_id,omitempty"`
	ActorID       *uint  `json:"actor_id,omitempty"`
	ActorUsername string `json:"actor_username,omitempty"`
	StoryContent  string `json:"story_content,omitempty"`
	IsRead        bool   `json:"is_read"`
	CreatedAt     string `json:"created_at"`
}

// formatTimestamp renders a stored timestamp as the localized display string
// the presentation layer shows verbatim.
func formatTimestamp(t time.Time) string {
	return t.Format(displayTimeLayout)
}

// snippet truncates story content for report and notification views.
func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetRunes {
		return content
	}
	return string(runes[:snippetRunes]) + "…"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
