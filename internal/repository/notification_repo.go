package repository

import (
	"fmt"
	"time"

	"famify/internal/database"
	"famify/internal/models"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a notification
func (r *NotificationRepository) Create(n *models.Notification) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, family_id, type, title, message, is_read)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	var familyID interface{}
	if n.FamilyID != 0 {
		familyID = n.FamilyID
	}
	id, err := r.db.ExecReturningID(query, n.UserID, familyID, n.Type, n.Title, n.Message, n.IsRead)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	n.ID = id
	n.CreatedAt = time.Now()
	return n, nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *NotificationRepository) ListByUser(userID int64, limit int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, COALESCE(family_id, 0), type, title, COALESCE(message, ''), is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.FamilyID, &n.Type, &n.Title,
			&n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead marks a single notification as read, scoped to its owner
func (r *NotificationRepository) MarkRead(notificationID, userID int64) error {
	query := "UPDATE notifications SET is_read = ? WHERE id = ? AND user_id = ?"
	if _, err := r.db.Exec(query, true, notificationID, userID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks all of a user's notifications as read
func (r *NotificationRepository) MarkAllRead(userID int64) error {
	query := "UPDATE notifications SET is_read = ? WHERE user_id = ? AND is_read = ?"
	if _, err := r.db.Exec(query, true, userID, false); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
