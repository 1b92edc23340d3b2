package handlers

import (
	"net/http"

	"famify/internal/service"
)

// FeedHandler handles the family social feed endpoints
type FeedHandler struct {
	feedService *service.FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed returns the family's posts, newest first
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	posts, err := h.feedService.GetFeed(family.Family.ID, user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load feed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, posts)
}

type createPostRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// CreatePost publishes a post to the family feed
func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	post, err := h.feedService.CreatePost(family.Family.ID, user.ID, req.Content, req.Visibility)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, post)
}

// LikePost records a like on a post
func (h *FeedHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	postID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID", err)
		return
	}
	if err := h.feedService.LikePost(postID, family.Family.ID, user); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// UnlikePost removes a like from a post
func (h *FeedHandler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	postID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID", err)
		return
	}
	if err := h.feedService.UnlikePost(postID, family.Family.ID, user.ID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// GetComments returns a post's comments, oldest first
func (h *FeedHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	family := FamilyFromContext(r.Context())

	postID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID", err)
		return
	}
	comments, err := h.feedService.GetComments(postID, family.Family.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, comments)
}

type commentRequest struct {
	Content string `json:"content"`
}

// CreateComment adds a comment to a post
func (h *FeedHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	family := FamilyFromContext(r.Context())

	postID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID", err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	comment, err := h.feedService.CommentOnPost(postID, family.Family.ID, user, req.Content)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, comment)
}
