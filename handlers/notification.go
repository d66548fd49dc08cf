package handlers

import (
	"net/http"

	notificationSvc "roamly/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationService is assigned during startup wiring.
var NotificationService notificationSvc.NotificationService

// ListNotificationsHandler returns the user's notifications, newest first.
// Pass ?unread=true to restrict to unread ones.
func ListNotificationsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, err := NotificationService.List(userID, unreadOnly)
	if err != nil {
		getLogger(c).Error("failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler flags a single notification as read.
func MarkNotificationReadHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := NotificationService.MarkRead(c.Param("id"), userID); err != nil {
		getLogger(c).Error("failed to mark notification read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}

// MarkAllReadHandler flags all of the user's notifications as read.
func MarkAllReadHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := NotificationService.MarkAllRead(userID); err != nil {
		getLogger(c).Error("failed to mark notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked read"})
}
