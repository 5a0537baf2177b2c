package handlers

import (
	"net/http"
	"strconv"

	"github.com/espectro-app/backend/internal/models"
	"github.com/espectro-app/backend/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// StoryHandler handles HTTP requests related to stories and their comments
type StoryHandler struct {
	stories store.StoryOperations
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(stories store.StoryOperations) *StoryHandler {
	return &StoryHandler{stories: stories}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.GET("/stories", h.GetFeed)
	g.GET("/stories/mine", h.GetOwnStories)
	g.GET("/stories/search", h.SearchStories)
	g.GET("/stories/:id", h.GetStory)
	g.POST("/stories", h.CreateStory)
	g.PUT("/stories/:id", h.UpdateStory)
	g.DELETE("/stories/:id", h.DeleteStory)
	g.GET("/stories/:id/comments", h.GetComments)
	g.POST("/stories/:id/comments", h.CreateComment)
}

// GetFeed returns the enriched story feed, newest first. "has_more" is the
// full-page heuristic: a short page means the feed is exhausted.
func (h *StoryHandler) GetFeed(c echo.Context) error {
	limit, offset := pagination(c, 20)

	stories := h.stories.Feed(limit, offset)

	return c.JSON(http.StatusOK, echo.Map{
		"stories":  stories,
		"has_more": len(stories) == limit,
	})
}

// GetOwnStories returns all stories of the authenticated user
func (h *StoryHandler) GetOwnStories(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	return c.JSON(http.StatusOK, echo.Map{"stories": h.stories.StoriesByOwner(currentUserID)})
}

// SearchStories matches the query against content, location and category
func (h *StoryHandler) SearchStories(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}

	return c.JSON(http.StatusOK, echo.Map{"stories": h.stories.SearchStories(query)})
}

// GetStory returns one enriched story by id
func (h *StoryHandler) GetStory(c echo.Context) error {
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	story := h.stories.StoryByID(storyID)
	if story == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found")
	}

	return c.JSON(http.StatusOK, story)
}

// CreateStory publishes a story (with up to four images) for the
// authenticated user
func (h *StoryHandler) CreateStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	storyID, ok := h.stories.CreateStory(currentUserID, req.Content, req.Location, req.Category, req.IsAnonymous, req.PhotoPath)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Story could not be created")
	}

	if !h.stories.AddStoryImages(storyID, req.Images) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Story images could not be saved")
	}

	return c.JSON(http.StatusCreated, h.stories.StoryByID(storyID))
}

// UpdateStory edits a story; only its owner may do so
func (h *StoryHandler) UpdateStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	var req models.UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.stories.UpdateStory(storyID, currentUserID, req.Content, req.Location, req.Category, req.IsAnonymous) {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found or not yours to edit")
	}

	return c.JSON(http.StatusOK, h.stories.StoryByID(storyID))
}

// DeleteStory removes a story and everything attached to it; owner only
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	if !h.stories.DeleteStory(storyID, currentUserID) {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found or not yours to delete")
	}

	return c.NoContent(http.StatusNoContent)
}

// GetComments returns a story's comments, newest first
func (h *StoryHandler) GetComments(c echo.Context) error {
	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	return c.JSON(http.StatusOK, echo.Map{"comments": h.stories.Comments(storyID)})
}

// CreateComment adds a comment to a story and notifies the story owner
func (h *StoryHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.stories.AddComment(storyID, currentUserID, req.Content) {
		return echo.NewHTTPError(http.StatusNotFound, "Story not found")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
