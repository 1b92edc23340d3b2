package repository

import (
	"fmt"
	"strings"
	"time"

	"famify/internal/database"
	"famify/internal/models"
)

// EventRepository handles database operations for calendar events
type EventRepository struct {
	db *database.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an event and its assignee rows in one transaction
func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (family_id, title, description, start_time, end_time, location, category, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := tx.ExecReturningID(query,
		event.FamilyID, event.Title, event.Description, event.StartTime,
		event.EndTime, event.Location, event.Category, event.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	for _, userID := range event.AssignedTo {
		query := "INSERT INTO event_assignees (event_id, user_id) VALUES (?, ?)"
		if _, err := tx.Exec(query, id, userID); err != nil {
			return nil, fmt.Errorf("failed to assign event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	event.ID = id
	event.CreatedAt = time.Now()
	return event, nil
}

// ListByFamilyRange retrieves events for a family within [from, to), earliest first
func (r *EventRepository) ListByFamilyRange(familyID int64, from, to time.Time) ([]models.Event, error) {
	query := `
		SELECT id, family_id, title, COALESCE(description, ''), start_time, end_time,
		       COALESCE(location, ''), category, COALESCE(created_by, 0), created_at
		FROM events
		WHERE family_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time ASC
	`
	rows, err := r.db.Query(query, familyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.FamilyID, &e.Title, &e.Description, &e.StartTime,
			&e.EndTime, &e.Location, &e.Category, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadAssignees(events); err != nil {
		return nil, err
	}
	return events, nil
}

// loadAssignees populates AssignedTo for the given events with one query
func (r *EventRepository) loadAssignees(events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	index := make(map[int64]int, len(events))
	placeholders := make([]string, len(events))
	args := make([]interface{}, len(events))
	for i := range events {
		index[events[i].ID] = i
		placeholders[i] = "?"
		args[i] = events[i].ID
	}

	query := "SELECT event_id, user_id FROM event_assignees WHERE event_id IN (" +
		strings.Join(placeholders, ", ") + ") ORDER BY id ASC"
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("failed to query event assignees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID, userID int64
		if err := rows.Scan(&eventID, &userID); err != nil {
			return fmt.Errorf("failed to scan event assignee: %w", err)
		}
		if i, ok := index[eventID]; ok {
			events[i].AssignedTo = append(events[i].AssignedTo, userID)
		}
	}
	return rows.Err()
}

// CountByFamily returns the number of events for a family
func (r *EventRepository) CountByFamily(familyID int64) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM events WHERE family_id = ?", familyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// Delete removes an event scoped to a family
func (r *EventRepository) Delete(eventID, familyID int64) error {
	query := "DELETE FROM events WHERE id = ? AND family_id = ?"
	if _, err := r.db.Exec(query, eventID, familyID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
