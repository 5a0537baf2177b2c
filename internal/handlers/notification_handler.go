package handlers

import (
	"net/http"

	"github.com/espectro-app/backend/internal/store"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles the notification feed
type NotificationHandler struct {
	notifications store.NotificationStore
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifications store.NotificationStore) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// GetNotifications returns the user's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, offset := pagination(c, 20)
	notifications := h.notifications.Notifications(currentUserID, limit, offset)

	return c.JSON(http.StatusOK, echo.Map{
		"notifications": notifications,
		"unread_count":  h.notifications.UnreadCount(currentUserID),
		"has_more":      len(notifications) == limit,
	})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	return c.JSON(http.StatusOK, echo.Map{"count": h.notifications.UnreadCount(currentUserID)})
}

// MarkAsRead marks one of the user's own notifications as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	notifID, err := parseIDParam(c, "id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if !h.notifications.MarkRead(notifID, currentUserID) {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// MarkAllAsRead marks all of the user's notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if !h.notifications.MarkAllRead(currentUserID) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not mark notifications as read")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
