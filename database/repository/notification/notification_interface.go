package notificationRepo

import "roamly/models"

// NotificationRepository defines data access for the notifications collection.
type NotificationRepository interface {
	Create(n *models.Notification) error
	ListByUser(userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
}
