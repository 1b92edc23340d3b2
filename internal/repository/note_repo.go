package repository

import (
	"fmt"
	"time"

	"famify/internal/database"
	"famify/internal/models"
)

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db *database.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *database.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a note
func (r *NoteRepository) Create(note *models.Note) (*models.Note, error) {
	query := "INSERT INTO notes (family_id, title, content, created_by) VALUES (?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, note.FamilyID, note.Title, note.Content, note.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	note.ID = id
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	return note, nil
}

// ListByFamily retrieves all notes for a family, most recently updated first
func (r *NoteRepository) ListByFamily(familyID int64) ([]models.Note, error) {
	query := `
		SELECT id, family_id, COALESCE(title, ''), COALESCE(content, ''),
		       COALESCE(created_by, 0), created_at, updated_at
		FROM notes
		WHERE family_id = ?
		ORDER BY updated_at DESC, id DESC
	`
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.FamilyID, &n.Title, &n.Content,
			&n.CreatedBy, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Update changes a note's title and content, scoped to a family
func (r *NoteRepository) Update(noteID, familyID int64, title, content string) error {
	query := `
		UPDATE notes
		SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND family_id = ?
	`
	if _, err := r.db.Exec(query, title, content, noteID, familyID); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}
