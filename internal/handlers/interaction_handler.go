package handlers

import (
	"net/http"

	"github.com/espectro-app/backend/internal/models"
	"github.com/espectro-app/backend/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// InteractionHandler handles likes and reactions
type InteractionHandler struct {
	interactions store.InteractionStore
}

// NewInteractionHandler creates a new InteractionHandler
func NewInteractionHandler(interactions store.InteractionStore) *InteractionHandler {
	return &InteractionHandler{interactions: interactions}
}

// RegisterInteractionRoutes registers like and reaction routes
func (h *InteractionHandler) RegisterInteractionRoutes(g *echo.Group) {
	g.POST("/stories/:id/like", h.LikeStory)
	g.POST("/stories/:id/reactions", h.ReactToStory)
}

// LikeStory records a like; a repeat like by the same user is a conflict
func (h *InteractionHandler) LikeStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	if !h.interactions.AddLike(storyID, currentUserID) {
		return echo.NewHTTPError(http.StatusConflict, "Story already liked or not found")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

// ReactToStory records a reaction of one kind; kinds are independent and a
// repeat of the same kind is a conflict
func (h *InteractionHandler) ReactToStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	var req models.CreateReactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.interactions.AddReaction(storyID, currentUserID, req.Kind) {
		return echo.NewHTTPError(http.StatusConflict, "Reaction already recorded or story not found")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}
