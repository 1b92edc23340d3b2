package repository

import (
	"database/sql"
	"fmt"
	"time"

	"famify/internal/database"
	"famify/internal/models"
)

// ListRepository handles database operations for lists and list items
type ListRepository struct {
	db *database.DB
}

// NewListRepository creates a new list repository
func NewListRepository(db *database.DB) *ListRepository {
	return &ListRepository{db: db}
}

// CreateList inserts a list
func (r *ListRepository) CreateList(list *models.List) (*models.List, error) {
	query := "INSERT INTO lists (family_id, title, type, created_by) VALUES (?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, list.FamilyID, list.Title, list.Type, list.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}
	list.ID = id
	list.CreatedAt = time.Now()
	return list, nil
}

// GetListByID retrieves a list by ID
func (r *ListRepository) GetListByID(listID int64) (*models.List, error) {
	query := "SELECT id, family_id, title, type, COALESCE(created_by, 0), created_at FROM lists WHERE id = ?"
	list := &models.List{}
	err := r.db.QueryRow(query, listID).Scan(
		&list.ID, &list.FamilyID, &list.Title, &list.Type, &list.CreatedBy, &list.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	return list, nil
}

// ListByFamily retrieves all lists for a family, newest first
func (r *ListRepository) ListByFamily(familyID int64) ([]models.List, error) {
	query := `
		SELECT id, family_id, title, type, COALESCE(created_by, 0), created_at
		FROM lists
		WHERE family_id = ?
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	var lists []models.List
	for rows.Next() {
		var l models.List
		if err := rows.Scan(&l.ID, &l.FamilyID, &l.Title, &l.Type, &l.CreatedBy, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

// AddItem inserts a list item
func (r *ListRepository) AddItem(item *models.ListItem) (*models.ListItem, error) {
	query := `
		INSERT INTO list_items (list_id, name, quantity, unit, is_checked, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query,
		item.ListID, item.Name, item.Quantity, item.Unit, item.IsChecked, item.SortOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to add list item: %w", err)
	}
	item.ID = id
	item.CreatedAt = time.Now()
	return item, nil
}

// GetItems retrieves the items of a list in display order
func (r *ListRepository) GetItems(listID int64) ([]models.ListItem, error) {
	query := `
		SELECT id, list_id, name, COALESCE(quantity, ''), COALESCE(unit, ''), is_checked, sort_order, created_at
		FROM list_items
		WHERE list_id = ?
		ORDER BY sort_order ASC, id ASC
	`
	rows, err := r.db.Query(query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query list items: %w", err)
	}
	defer rows.Close()

	var items []models.ListItem
	for rows.Next() {
		var item models.ListItem
		if err := rows.Scan(&item.ID, &item.ListID, &item.Name, &item.Quantity,
			&item.Unit, &item.IsChecked, &item.SortOrder, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetItemChecked updates an item's checked state
func (r *ListRepository) SetItemChecked(itemID, listID int64, checked bool) error {
	query := "UPDATE list_items SET is_checked = ? WHERE id = ? AND list_id = ?"
	if _, err := r.db.Exec(query, checked, itemID, listID); err != nil {
		return fmt.Errorf("failed to update list item: %w", err)
	}
	return nil
}

// SetItemSortOrder moves an item within its list
func (r *ListRepository) SetItemSortOrder(itemID, listID int64, sortOrder int) error {
	query := "UPDATE list_items SET sort_order = ? WHERE id = ? AND list_id = ?"
	if _, err := r.db.Exec(query, sortOrder, itemID, listID); err != nil {
		return fmt.Errorf("failed to reorder list item: %w", err)
	}
	return nil
}

// DeleteItem removes a list item
func (r *ListRepository) DeleteItem(itemID, listID int64) error {
	query := "DELETE FROM list_items WHERE id = ? AND list_id = ?"
	if _, err := r.db.Exec(query, itemID, listID); err != nil {
		return fmt.Errorf("failed to delete list item: %w", err)
	}
	return nil
}
