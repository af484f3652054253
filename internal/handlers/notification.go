package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
	"github.com/hireline/applicant-tracking-api/internal/services"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ListNotifications returns a filtered, paginated inbox.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	filter := repository.NotificationFilter{
		Type:     models.NotificationType(c.Query("type")),
		Priority: models.NotificationPriority(c.Query("priority")),
	}
	if raw := c.Query("read"); raw != "" {
		read := raw == "true"
		filter.Read = &read
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	page, err := h.notifications.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": page.Notifications,
		"pagination": gin.H{
			"current": page.Page,
			"pages":   page.Pages,
			"total":   page.Total,
			"limit":   page.Limit,
		},
		"unreadCount": page.UnreadCount,
	})
}

// MarkNotificationRead flips one notification to read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	notification, err := h.notifications.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": notification,
	})
}

// MarkAllNotificationsRead flips every unread notification.
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	modified, err := h.notifications.MarkAllRead(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "All notifications marked as read",
		"modifiedCount": modified,
	})
}

// DeleteNotification removes one notification.
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}

// NotificationStats summarizes the inbox by type and priority.
func (h *NotificationHandler) NotificationStats(c *gin.Context) {
	stats, err := h.notifications.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"overview": gin.H{
			"total":  stats.Total,
			"unread": stats.Unread,
			"read":   stats.Read,
		},
		"byType":     stats.ByType,
		"byPriority": stats.ByPriority,
	})
}

// UnreadCount reports how many notifications are unread.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notifications.UnreadCount(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}
