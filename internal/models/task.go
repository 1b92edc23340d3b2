package models

import "time"

// Task priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a to-do item scoped to a family
type Task struct {
	ID          int64      `json:"id"`
	FamilyID    int64      `json:"family_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	Priority    string     `json:"priority"`
	AssignedTo  int64      `json:"assigned_to,omitempty"`
	CreatedBy   int64      `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
}
