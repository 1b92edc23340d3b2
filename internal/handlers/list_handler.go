package handlers

import (
	"net/http"

	"famify/internal/service"
)

// ListHandler handles shopping list endpoints
type ListHandler struct {
	listService *service.ListService
}

// NewListHandler creates a new list handler
func NewListHandler(listService *service.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

// GetLists returns the family's lists with their items
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	lists, err := h.listService.GetLists(family.Family.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load lists", err)
		return
	}
	respondWithJSON(w, http.StatusOK, lists)
}

type createListRequest struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

// CreateList creates a new list
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	var req createListRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	list, err := h.listService.CreateList(family.Family.ID, user.ID, req.Title, req.Type)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, list)
}

type addItemRequest struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	Unit      string `json:"unit"`
	SortOrder *int   `json:"sort_order"`
}

// AddItem appends an item to a list
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	listID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", err)
		return
	}
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sortOrder := -1
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	item, err := h.listService.AddItem(listID, family.Family.ID, req.Name, req.Quantity, req.Unit, sortOrder)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

type checkItemRequest struct {
	Checked bool `json:"checked"`
}

// SetItemChecked toggles an item's checked state
func (h *ListHandler) SetItemChecked(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	listID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", err)
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID", err)
		return
	}
	var req checkItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.listService.SetItemChecked(itemID, listID, family.Family.ID, req.Checked); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

type reorderItemRequest struct {
	SortOrder int `json:"sort_order"`
}

// ReorderItem moves an item within its list
func (h *ListHandler) ReorderItem(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	listID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", err)
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID", err)
		return
	}
	var req reorderItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.listService.ReorderItem(itemID, listID, family.Family.ID, req.SortOrder); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// DeleteItem removes an item from a list
func (h *ListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	listID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid list ID", err)
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID", err)
		return
	}
	if err := h.listService.DeleteItem(itemID, listID, family.Family.ID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
