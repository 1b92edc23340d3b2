package service

import (
	"famify/internal/models"
	"famify/internal/repository"
)

// notificationListLimit caps how many notifications a single fetch returns
const notificationListLimit = 50

// NotificationService reads and updates a user's in-app notifications
type NotificationService struct {
	notificationRepo *repository.NotificationRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// GetNotifications retrieves a user's notifications, newest first
func (s *NotificationService) GetNotifications(userID int64) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(userID, notificationListLimit)
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(notificationID, userID int64) error {
	return s.notificationRepo.MarkRead(notificationID, userID)
}

// MarkAllRead marks all of a user's notifications as read
func (s *NotificationService) MarkAllRead(userID int64) error {
	return s.notificationRepo.MarkAllRead(userID)
}
