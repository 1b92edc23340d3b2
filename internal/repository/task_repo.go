package repository

import (
	"fmt"
	"time"

	"famify/internal/database"
	"famify/internal/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *database.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *database.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task
func (r *TaskRepository) Create(task *models.Task) (*models.Task, error) {
	query := `
		INSERT INTO tasks (family_id, title, description, due_date, is_completed, priority, assigned_to, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	var assignedTo interface{}
	if task.AssignedTo != 0 {
		assignedTo = task.AssignedTo
	}
	id, err := r.db.ExecReturningID(query,
		task.FamilyID, task.Title, task.Description, task.DueDate,
		task.IsCompleted, task.Priority, assignedTo, task.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	task.ID = id
	task.CreatedAt = time.Now()
	return task, nil
}

// ListByFamily retrieves all tasks for a family, soonest due first
func (r *TaskRepository) ListByFamily(familyID int64) ([]models.Task, error) {
	query := `
		SELECT id, family_id, title, COALESCE(description, ''), due_date, is_completed,
		       priority, COALESCE(assigned_to, 0), COALESCE(created_by, 0), created_at
		FROM tasks
		WHERE family_id = ?
		ORDER BY is_completed ASC, due_date ASC
	`
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.FamilyID, &t.Title, &t.Description, &t.DueDate,
			&t.IsCompleted, &t.Priority, &t.AssignedTo, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// ListDueInRange retrieves incomplete tasks due within [from, to)
func (r *TaskRepository) ListDueInRange(familyID int64, from, to time.Time) ([]models.Task, error) {
	query := `
		SELECT id, family_id, title, COALESCE(description, ''), due_date, is_completed,
		       priority, COALESCE(assigned_to, 0), COALESCE(created_by, 0), created_at
		FROM tasks
		WHERE family_id = ? AND is_completed = ? AND due_date >= ? AND due_date < ?
		ORDER BY due_date ASC
	`
	rows, err := r.db.Query(query, familyID, false, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.FamilyID, &t.Title, &t.Description, &t.DueDate,
			&t.IsCompleted, &t.Priority, &t.AssignedTo, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// SetCompleted updates a task's completion state, scoped to a family
func (r *TaskRepository) SetCompleted(taskID, familyID int64, completed bool) error {
	query := "UPDATE tasks SET is_completed = ? WHERE id = ? AND family_id = ?"
	if _, err := r.db.Exec(query, completed, taskID, familyID); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// Delete removes a task scoped to a family
func (r *TaskRepository) Delete(taskID, familyID int64) error {
	query := "DELETE FROM tasks WHERE id = ? AND family_id = ?"
	if _, err := r.db.Exec(query, taskID, familyID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
