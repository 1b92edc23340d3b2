package handlers

import (
	"net/http"

	"famify/internal/service"
)

// NotificationHandler handles in-app notification endpoints
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotifications returns the user's notifications, newest first
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	notifications, err := h.notificationService.GetNotifications(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load notifications", err)
		return
	}
	respondWithJSON(w, http.StatusOK, notifications)
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	notificationID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid notification ID", err)
		return
	}
	if err := h.notificationService.MarkRead(notificationID, user.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to mark notification read", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// MarkAllRead marks all of the user's notifications as read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.notificationService.MarkAllRead(user.ID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to mark notifications read", err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}
