package models

import "time"

// Meal types
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealPlan is a planned meal for a calendar date
type MealPlan struct {
	ID          int64     `json:"id"`
	FamilyID    int64     `json:"family_id"`
	Date        string    `json:"date"` // calendar date, YYYY-MM-DD
	MealType    string    `json:"meal_type"`
	Description string    `json:"description"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
