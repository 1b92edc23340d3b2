package handlers

import (
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"

	"famify/internal/config"
	"famify/internal/security"
	"famify/internal/service"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService          *service.AuthService
	oauthProviders       map[string]OAuthProvider
	oauthRedirectBaseURL string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	providers := map[string]OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
		"facebook": {
			Name:  "facebook",
			Label: "Facebook",
			Config: &oauth2.Config{
				ClientID:     cfg.FacebookClientID,
				ClientSecret: cfg.FacebookClientSecret,
				Endpoint:     facebook.Endpoint,
				Scopes:       []string{"email", "public_profile"},
			},
			UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		},
	}

	return &AuthHandler{
		authService:          authService,
		oauthProviders:       providers,
		oauthRedirectBaseURL: cfg.AppBaseURL,
	}
}

type registerRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	InviteCode string `json:"invite_code"`
}

// Register creates an account and logs it in
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.authService.Register(req.Email, req.Password, req.Name, req.InviteCode)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	session, _, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Registration succeeded but login failed", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, session.ID, session.ExpiresAt))
	respondWithJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and sets the session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, session.ID, session.ExpiresAt))
	respondWithJSON(w, http.StatusOK, user)
}

// Logout invalidates the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(security.SessionCookieName); err == nil {
		_ = h.authService.Logout(cookie.Value)
	}
	http.SetCookie(w, security.CreateDeleteCookie(r))
	respondWithJSON(w, http.StatusNoContent, nil)
}

// CurrentUser returns the authenticated user
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, UserFromContext(r.Context()))
}
