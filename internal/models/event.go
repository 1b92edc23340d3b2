package models

import "time"

// Event categories
const (
	CategoryHealth   = "health"
	CategoryFamily   = "family"
	CategoryActivity = "activity"
	CategoryChores   = "chores"
	CategoryOther    = "other"
)

// Event is a calendar entry scoped to a family
type Event struct {
	ID          int64      `json:"id"`
	FamilyID    int64      `json:"family_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    string     `json:"location,omitempty"`
	Category    string     `json:"category"`
	CreatedBy   int64      `json:"created_by"`
	AssignedTo  []int64    `json:"assigned_to"`
	CreatedAt   time.Time  `json:"created_at"`
}
