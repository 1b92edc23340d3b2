package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"famify/internal/models"
	"famify/internal/security"
	"famify/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// UserContextKey carries the authenticated *models.User
	UserContextKey ContextKey = "user"
	// FamilyContextKey carries the resolved *models.ActiveFamily
	FamilyContextKey ContextKey = "family"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService   *service.AuthService
	familyService *service.FamilyService
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, familyService *service.FamilyService) *Middleware {
	return &Middleware{
		authService:   authService,
		familyService: familyService,
	}
}

// RequireAuth rejects requests without a valid session and injects the
// authenticated user into the request context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		user, err := m.authService.ValidateSession(cookie.Value)
		if err != nil {
			http.SetCookie(w, security.CreateDeleteCookie(r))
			respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RequireFamily resolves the user's active family and injects it into the
// request context. Requests from users without a family get a 409 pointing
// them at family setup. Must run after RequireAuth.
func (m *Middleware) RequireFamily(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())

		active, err := m.familyService.ResolveActiveFamily(user.ID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to resolve family", err)
			return
		}
		if active == nil {
			respondWithError(w, http.StatusConflict, "No family yet: create or join one first", nil)
			return
		}

		ctx := context.WithValue(r.Context(), FamilyContextKey, active)
		next(w, r.WithContext(ctx))
	})
}

// RateLimit throttles an endpoint by client IP
func (m *Middleware) RateLimit(limiter *security.RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow(security.GetClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests, try again later", nil)
			return
		}
		next(w, r)
	}
}

// UserFromContext extracts the authenticated user placed by RequireAuth
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserContextKey).(*models.User)
	return user
}

// FamilyFromContext extracts the active family placed by RequireFamily
func FamilyFromContext(ctx context.Context) *models.ActiveFamily {
	family, _ := ctx.Value(FamilyContextKey).(*models.ActiveFamily)
	return family
}

// Logging logs each request with method, path, status and duration
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, recorder.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
