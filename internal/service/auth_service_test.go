package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"famify/internal/database"
	"famify/internal/repository"
)

func setupAuthService(t *testing.T) (*AuthService, *FamilyService) {
	t.Helper()

	db, err := database.InitializeSQLite(filepath.Join(t.TempDir(), "auth_test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	familyService := NewFamilyService(familyRepo, userRepo)
	return NewAuthService(userRepo, familyService, 24*time.Hour), familyService
}

func TestRegisterAndLogin(t *testing.T) {
	authSvc, _ := setupAuthService(t)

	user, err := authSvc.Register("new@example.com", "Passw0rd!", "New User", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "new@example.com" {
		t.Errorf("Email = %q, want new@example.com", user.Email)
	}

	session, loggedIn, err := authSvc.Login("new@example.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("Logged-in user %d, want %d", loggedIn.ID, user.ID)
	}
	if session.ID == "" {
		t.Error("Session ID should not be empty")
	}

	validated, err := authSvc.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if validated.ID != user.ID {
		t.Errorf("Validated user %d, want %d", validated.ID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	authSvc, _ := setupAuthService(t)

	if _, err := authSvc.Register("dup@example.com", "Passw0rd!", "First", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, err := authSvc.Register("dup@example.com", "Passw0rd!", "Second", "")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterWithInviteCodeJoinsFamily(t *testing.T) {
	authSvc, familySvc := setupAuthService(t)

	creator, err := authSvc.Register("creator@example.com", "Passw0rd!", "Creator", "")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	family, err := familySvc.CreateFamily(creator.ID, "The Invitees")
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}

	joiner, err := authSvc.Register("joiner@example.com", "Passw0rd!", "Joiner", family.InviteCode)
	if err != nil {
		t.Fatalf("Register with invite code failed: %v", err)
	}

	active, err := familySvc.ResolveActiveFamily(joiner.ID)
	if err != nil {
		t.Fatalf("ResolveActiveFamily returned error: %v", err)
	}
	if active == nil || active.Family.ID != family.ID {
		t.Error("Registering with an invite code should join the family")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	authSvc, _ := setupAuthService(t)

	if _, err := authSvc.Register("locked@example.com", "Passw0rd!", "Locked", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, _, err := authSvc.Login("locked@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
	_, _, err = authSvc.Login("nobody@example.com", "Passw0rd!")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	authSvc, _ := setupAuthService(t)

	if _, err := authSvc.Register("bye@example.com", "Passw0rd!", "Bye", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	session, _, err := authSvc.Login("bye@example.com", "Passw0rd!")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := authSvc.Logout(session.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := authSvc.ValidateSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestOAuthLoginCreatesAndReuses(t *testing.T) {
	authSvc, _ := setupAuthService(t)

	_, user, err := authSvc.OAuthLogin("google", "sub-123", "oauth@example.com", "OAuth User", "")
	if err != nil {
		t.Fatalf("OAuthLogin failed: %v", err)
	}
	if !user.EmailConfirmed {
		t.Error("OAuth users should be email-confirmed")
	}

	_, again, err := authSvc.OAuthLogin("google", "sub-123", "oauth@example.com", "OAuth User", "")
	if err != nil {
		t.Fatalf("Second OAuthLogin failed: %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("Second login created user %d, want existing %d", again.ID, user.ID)
	}
}
