package handlers

import (
	"net/http"

	"github.com/espectro-app/backend/internal/models"
	"github.com/espectro-app/backend/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ModerationHandler handles content reports
type ModerationHandler struct {
	moderation store.ModerationStore
}

// NewModerationHandler creates a new ModerationHandler
func NewModerationHandler(moderation store.ModerationStore) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

// RegisterModerationRoutes registers report-related routes
func (h *ModerationHandler) RegisterModerationRoutes(g *echo.Group) {
	g.POST("/stories/:id/reports", h.ReportStory)
	g.GET("/reports", h.GetReports)
	g.PUT("/reports/:id/status", h.UpdateReportStatus)
}

// ReportStory files a report against a story; one per reporter per story
func (h *ModerationHandler) ReportStory(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	storyID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid story ID")
	}

	var req models.CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.moderation.CreateReport(storyID, currentUserID, req.Reason, req.Description) {
		return echo.NewHTTPError(http.StatusConflict, "Story already reported by this user")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

// GetReports lists reports by status (default pending), enriched for review
func (h *ModerationHandler) GetReports(c echo.Context) error {
	status := c.QueryParam("status")
	return c.JSON(http.StatusOK, echo.Map{"reports": h.moderation.Reports(status)})
}

// UpdateReportStatus sets a report's status to the supplied value
func (h *ModerationHandler) UpdateReportStatus(c echo.Context) error {
	reportID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid report ID")
	}

	var req models.UpdateReportStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !h.moderation.UpdateReportStatus(reportID, req.Status) {
		return echo.NewHTTPError(http.StatusNotFound, "Report not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
