package repository

import (
	"fmt"
	"time"

	"famify/internal/database"
	"famify/internal/models"
)

// ReminderRepository handles database operations for reminders
type ReminderRepository struct {
	db *database.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *database.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create inserts a reminder
func (r *ReminderRepository) Create(reminder *models.Reminder) (*models.Reminder, error) {
	query := `
		INSERT INTO reminders (family_id, user_id, title, remind_at, is_completed, created_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	var userID interface{}
	if reminder.UserID != 0 {
		userID = reminder.UserID
	}
	id, err := r.db.ExecReturningID(query,
		reminder.FamilyID, userID, reminder.Title,
		reminder.RemindAt, reminder.IsCompleted, reminder.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	reminder.ID = id
	reminder.CreatedAt = time.Now()
	return reminder, nil
}

// ListByUser retrieves a user's reminders in a family, soonest first
func (r *ReminderRepository) ListByUser(familyID, userID int64) ([]models.Reminder, error) {
	query := `
		SELECT id, family_id, COALESCE(user_id, 0), title, remind_at, is_completed,
		       COALESCE(created_by, 0), created_at
		FROM reminders
		WHERE family_id = ? AND user_id = ?
		ORDER BY remind_at ASC
	`
	return r.queryReminders(query, familyID, userID)
}

// ListInRange retrieves a family's reminders due within [from, to)
func (r *ReminderRepository) ListInRange(familyID int64, from, to time.Time) ([]models.Reminder, error) {
	query := `
		SELECT id, family_id, COALESCE(user_id, 0), title, remind_at, is_completed,
		       COALESCE(created_by, 0), created_at
		FROM reminders
		WHERE family_id = ? AND remind_at >= ? AND remind_at < ?
		ORDER BY remind_at ASC
	`
	return r.queryReminders(query, familyID, from, to)
}

func (r *ReminderRepository) queryReminders(query string, args ...interface{}) ([]models.Reminder, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.FamilyID, &rem.UserID, &rem.Title,
			&rem.RemindAt, &rem.IsCompleted, &rem.CreatedBy, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

// SetCompleted updates a reminder's completion state
func (r *ReminderRepository) SetCompleted(reminderID, familyID int64, completed bool) error {
	query := "UPDATE reminders SET is_completed = ? WHERE id = ? AND family_id = ?"
	if _, err := r.db.Exec(query, completed, reminderID, familyID); err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}
	return nil
}
