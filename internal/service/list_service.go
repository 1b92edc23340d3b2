package service

import (
	"errors"
	"fmt"
	"strings"

	"famify/internal/models"
	"famify/internal/repository"
)

var (
	ErrListNotFound  = errors.New("list not found")
	ErrEmptyItemName = errors.New("item name is required")
)

// ListService manages shopping and to-buy lists
type ListService struct {
	listRepo *repository.ListRepository
}

// NewListService creates a new list service
func NewListService(listRepo *repository.ListRepository) *ListService {
	return &ListService{listRepo: listRepo}
}

// CreateList creates a list for a family
func (s *ListService) CreateList(familyID, userID int64, title, listType string) (*models.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	switch listType {
	case models.ListTypeGrocery, models.ListTypeShopping, models.ListTypeCustom:
	case "":
		listType = models.ListTypeCustom
	default:
		return nil, fmt.Errorf("invalid list type %q", listType)
	}
	return s.listRepo.CreateList(&models.List{
		FamilyID:  familyID,
		Title:     title,
		Type:      listType,
		CreatedBy: userID,
	})
}

// GetLists retrieves all of a family's lists with their items
func (s *ListService) GetLists(familyID int64) ([]models.ListWithItems, error) {
	lists, err := s.listRepo.ListByFamily(familyID)
	if err != nil {
		return nil, err
	}

	result := make([]models.ListWithItems, 0, len(lists))
	for _, list := range lists {
		items, err := s.listRepo.GetItems(list.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, models.ListWithItems{List: list, Items: items})
	}
	return result, nil
}

// getOwnedList loads a list and verifies it belongs to the family
func (s *ListService) getOwnedList(listID, familyID int64) (*models.List, error) {
	list, err := s.listRepo.GetListByID(listID)
	if err != nil {
		return nil, err
	}
	if list == nil || list.FamilyID != familyID {
		return nil, ErrListNotFound
	}
	return list, nil
}

// AddItem appends an item to a list. When sortOrder is negative the item goes
// to the end of the list.
func (s *ListService) AddItem(listID, familyID int64, name, quantity, unit string, sortOrder int) (*models.ListItem, error) {
	if _, err := s.getOwnedList(listID, familyID); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyItemName
	}

	if sortOrder < 0 {
		items, err := s.listRepo.GetItems(listID)
		if err != nil {
			return nil, err
		}
		sortOrder = 0
		for _, item := range items {
			if item.SortOrder >= sortOrder {
				sortOrder = item.SortOrder + 1
			}
		}
	}

	return s.listRepo.AddItem(&models.ListItem{
		ListID:    listID,
		Name:      name,
		Quantity:  quantity,
		Unit:      unit,
		SortOrder: sortOrder,
	})
}

// SetItemChecked toggles an item's checked state
func (s *ListService) SetItemChecked(itemID, listID, familyID int64, checked bool) error {
	if _, err := s.getOwnedList(listID, familyID); err != nil {
		return err
	}
	return s.listRepo.SetItemChecked(itemID, listID, checked)
}

// ReorderItem moves an item to a new position in its list
func (s *ListService) ReorderItem(itemID, listID, familyID int64, sortOrder int) error {
	if _, err := s.getOwnedList(listID, familyID); err != nil {
		return err
	}
	return s.listRepo.SetItemSortOrder(itemID, listID, sortOrder)
}

// DeleteItem removes an item from a list
func (s *ListService) DeleteItem(itemID, listID, familyID int64) error {
	if _, err := s.getOwnedList(listID, familyID); err != nil {
		return err
	}
	return s.listRepo.DeleteItem(itemID, listID)
}
