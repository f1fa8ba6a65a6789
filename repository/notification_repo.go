package repository

import "bookingtrack/models"

type NotificationRepository interface {
	GetNotifications(userID string) ([]*models.Notification, error)
	MarkRead(id string) error
	InsertNotifications(notifs []*models.Notification) (int, error)
}
