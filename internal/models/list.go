package models

import "time"

// List types
const (
	ListTypeGrocery  = "grocery"
	ListTypeShopping = "shopping"
	ListTypeCustom   = "custom"
)

// List is a shopping or to-buy list scoped to a family
type List struct {
	ID        int64     `json:"id"`
	FamilyID  int64     `json:"family_id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// ListItem is a single entry on a list, ordered by SortOrder
type ListItem struct {
	ID        int64     `json:"id"`
	ListID    int64     `json:"list_id"`
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity,omitempty"`
	Unit      string    `json:"unit,omitempty"`
	IsChecked bool      `json:"is_checked"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// ListWithItems combines a list with its items in display order
type ListWithItems struct {
	List  List       `json:"list"`
	Items []ListItem `json:"items"`
}
