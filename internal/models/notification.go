package models

import "time"

// Notification types
const (
	NotificationTask    = "task"
	NotificationEvent   = "event"
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationInvite  = "invite"
)

// Notification is an in-app notification row for a user
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FamilyID  int64     `json:"family_id,omitempty"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
