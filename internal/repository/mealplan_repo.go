package repository

import (
	"fmt"
	"time"

	"famify/internal/database"
	"famify/internal/models"
)

// MealPlanRepository handles database operations for meal plans
type MealPlanRepository struct {
	db *database.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *database.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create inserts a meal plan
func (r *MealPlanRepository) Create(plan *models.MealPlan) (*models.MealPlan, error) {
	query := `
		INSERT INTO meal_plans (family_id, date, meal_type, description, created_by)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		plan.FamilyID, plan.Date, plan.MealType, plan.Description, plan.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create meal plan: %w", err)
	}
	plan.ID = id
	plan.CreatedAt = time.Now()
	return plan, nil
}

// ListByDateRange retrieves meal plans for calendar dates in [from, to] inclusive.
// Dates are YYYY-MM-DD strings, which compare correctly lexically.
func (r *MealPlanRepository) ListByDateRange(familyID int64, from, to string) ([]models.MealPlan, error) {
	query := `
		SELECT id, family_id, date, COALESCE(meal_type, ''), COALESCE(description, ''),
		       COALESCE(created_by, 0), created_at
		FROM meal_plans
		WHERE family_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`
	rows, err := r.db.Query(query, familyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal plans: %w", err)
	}
	defer rows.Close()

	var plans []models.MealPlan
	for rows.Next() {
		var p models.MealPlan
		if err := rows.Scan(&p.ID, &p.FamilyID, &p.Date, &p.MealType,
			&p.Description, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// CountByFamily returns the number of meal plans for a family
func (r *MealPlanRepository) CountByFamily(familyID int64) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM meal_plans WHERE family_id = ?", familyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count meal plans: %w", err)
	}
	return count, nil
}

// Delete removes a meal plan scoped to a family
func (r *MealPlanRepository) Delete(planID, familyID int64) error {
	query := "DELETE FROM meal_plans WHERE id = ? AND family_id = ?"
	if _, err := r.db.Exec(query, planID, familyID); err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	return nil
}
