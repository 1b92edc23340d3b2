package models

import "time"

// Note is a shared family note
type Note struct {
	ID        int64     `json:"id"`
	FamilyID  int64     `json:"family_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
