package handlers

import (
	"net/http"

	"famify/internal/service"
)

// FamilyHandler handles family setup and membership endpoints
type FamilyHandler struct {
	familyService *service.FamilyService
	inviteService *service.InviteService
}

// NewFamilyHandler creates a new family handler
func NewFamilyHandler(familyService *service.FamilyService, inviteService *service.InviteService) *FamilyHandler {
	return &FamilyHandler{
		familyService: familyService,
		inviteService: inviteService,
	}
}

// GetActiveFamily returns the user's active family and roster. A user with
// no family gets a 200 with a null body; the client routes to family setup.
func (h *FamilyHandler) GetActiveFamily(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	active, err := h.familyService.ResolveActiveFamily(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to resolve family", err)
		return
	}
	respondWithJSON(w, http.StatusOK, active)
}

type createFamilyRequest struct {
	Name string `json:"name"`
}

// CreateFamily creates a family with the user as its first parent
func (h *FamilyHandler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req createFamilyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	family, err := h.familyService.CreateFamily(user.ID, req.Name)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, family)
}

type joinFamilyRequest struct {
	InviteCode string `json:"invite_code"`
}

// JoinFamily joins the family matching the submitted invite code
func (h *FamilyHandler) JoinFamily(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req joinFamilyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	family, err := h.familyService.JoinFamily(user.ID, req.InviteCode)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, family)
}

type inviteRequest struct {
	Email string `json:"email"`
}

// SendInvite emails an invitation to join the user's active family
func (h *FamilyHandler) SendInvite(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	var req inviteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.inviteService.SendInvite(r.Context(), user, family.Family.ID, req.Email); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "invitation sent"})
}

type acceptInviteRequest struct {
	Token string `json:"token"`
}

// AcceptInvite redeems an emailed invitation token
func (h *FamilyHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req acceptInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	family, err := h.inviteService.AcceptInvite(user, req.Token)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, family)
}
