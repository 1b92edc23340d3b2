package models

import "time"

// Reminder is a personal reminder within a family context
type Reminder struct {
	ID          int64     `json:"id"`
	FamilyID    int64     `json:"family_id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	RemindAt    time.Time `json:"remind_at"`
	IsCompleted bool      `json:"is_completed"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
