package service

import (
	"errors"
	"path/filepath"
	"testing"

	"famify/internal/database"
	"famify/internal/models"
	"famify/internal/repository"
)

func setupFamilyService(t *testing.T) (*FamilyService, *repository.UserRepository, *database.DB) {
	t.Helper()

	db, err := database.InitializeSQLite(filepath.Join(t.TempDir(), "family_test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	return NewFamilyService(familyRepo, userRepo), userRepo, db
}

func createTestUser(t *testing.T, userRepo *repository.UserRepository, email string) *models.User {
	t.Helper()
	user, err := userRepo.CreateUser(email, "not-a-real-hash", "Test User", true)
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

func TestResolveActiveFamilyNoMembership(t *testing.T) {
	svc, userRepo, _ := setupFamilyService(t)
	user := createTestUser(t, userRepo, "solo@example.com")

	active, err := svc.ResolveActiveFamily(user.ID)
	if err != nil {
		t.Fatalf("ResolveActiveFamily returned error: %v", err)
	}
	if active != nil {
		t.Errorf("Expected nil for user with no memberships, got family %q", active.Family.Name)
	}
}

func TestResolveActiveFamilySingleMembership(t *testing.T) {
	svc, userRepo, _ := setupFamilyService(t)
	user := createTestUser(t, userRepo, "alice@example.com")

	family, err := svc.CreateFamily(user.ID, "The Smiths")
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}

	active, err := svc.ResolveActiveFamily(user.ID)
	if err != nil {
		t.Fatalf("ResolveActiveFamily returned error: %v", err)
	}
	if active == nil {
		t.Fatal("Expected an active family, got nil")
	}
	if active.Family.ID != family.ID {
		t.Errorf("Active family ID = %d, want %d", active.Family.ID, family.ID)
	}
	if len(active.Members) != 1 {
		t.Fatalf("Expected 1 member in roster, got %d", len(active.Members))
	}
	if active.Members[0].UserID != user.ID || active.Members[0].Role != models.RoleParent {
		t.Errorf("Creator should be a parent member, got user %d role %s",
			active.Members[0].UserID, active.Members[0].Role)
	}
}

func TestResolveActiveFamilyLatestJoinWins(t *testing.T) {
	svc, userRepo, db := setupFamilyService(t)
	user := createTestUser(t, userRepo, "bob@example.com")
	other := createTestUser(t, userRepo, "carol@example.com")

	first, err := svc.CreateFamily(user.ID, "First Family")
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}

	second, err := svc.CreateFamily(other.ID, "Second Family")
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}
	if _, err := svc.JoinFamily(user.ID, second.InviteCode); err != nil {
		t.Fatalf("JoinFamily failed: %v", err)
	}

	// Pin distinct join times: membership in the second family is newer
	setJoinedAt := func(familyID int64, joinedAt string) {
		_, err := db.Exec("UPDATE family_members SET joined_at = ? WHERE user_id = ? AND family_id = ?",
			joinedAt, user.ID, familyID)
		if err != nil {
			t.Fatalf("Failed to set joined_at: %v", err)
		}
	}
	setJoinedAt(first.ID, "2025-01-01 10:00:00")
	setJoinedAt(second.ID, "2025-03-01 10:00:00")

	active, err := svc.ResolveActiveFamily(user.ID)
	if err != nil {
		t.Fatalf("ResolveActiveFamily returned error: %v", err)
	}
	if active == nil {
		t.Fatal("Expected an active family, got nil")
	}
	if active.Family.ID != second.ID {
		t.Errorf("Active family = %q (id %d), want most recently joined %q (id %d)",
			active.Family.Name, active.Family.ID, second.Name, second.ID)
	}

	// Deterministic: repeated resolution picks the same family
	again, err := svc.ResolveActiveFamily(user.ID)
	if err != nil {
		t.Fatalf("ResolveActiveFamily returned error: %v", err)
	}
	if again.Family.ID != active.Family.ID {
		t.Errorf("Resolution is not stable: got %d then %d", active.Family.ID, again.Family.ID)
	}
}

func TestResolveActiveFamilyOrphanedMembership(t *testing.T) {
	svc, userRepo, db := setupFamilyService(t)
	user := createTestUser(t, userRepo, "dave@example.com")

	// Construct the integrity violation directly: a membership row whose
	// family does not exist.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys=OFF"); err != nil {
		t.Fatalf("Failed to disable foreign keys: %v", err)
	}
	if _, err := db.Exec("INSERT INTO family_members (family_id, user_id, role) VALUES (?, ?, ?)",
		99999, user.ID, models.RoleParent); err != nil {
		t.Fatalf("Failed to insert orphaned membership: %v", err)
	}

	_, err := svc.ResolveActiveFamily(user.ID)
	if !errors.Is(err, ErrOrphanedMembership) {
		t.Errorf("Expected ErrOrphanedMembership, got %v", err)
	}
}

func TestCreateFamily(t *testing.T) {
	svc, userRepo, db := setupFamilyService(t)
	user := createTestUser(t, userRepo, "eve@example.com")

	family, err := svc.CreateFamily(user.ID, "The Parkers")
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}
	if family.Name != "The Parkers" {
		t.Errorf("Family name = %q, want %q", family.Name, "The Parkers")
	}
	if len(family.InviteCode) != 8 {
		t.Errorf("Invite code %q should be 8 characters", family.InviteCode)
	}
	if family.CreatedBy != user.ID {
		t.Errorf("created_by = %d, want %d", family.CreatedBy, user.ID)
	}

	var memberCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM family_members WHERE family_id = ?", family.ID).Scan(&memberCount); err != nil {
		t.Fatalf("Failed to count members: %v", err)
	}
	if memberCount != 1 {
		t.Errorf("Expected creator membership, got %d member rows", memberCount)
	}
}

func TestCreateFamilyRejectsEmptyName(t *testing.T) {
	svc, userRepo, _ := setupFamilyService(t)
	user := createTestUser(t, userRepo, "frank@example.com")

	if _, err := svc.CreateFamily(user.ID, "   "); err == nil {
		t.Error("Expected validation error for blank family name")
	}
}

func TestJoinFamily(t *testing.T) {
	svc, userRepo, _ := setupFamilyService(t)
	creator := createTestUser(t, userRepo, "grace@example.com")
	joiner := createTestUser(t, userRepo, "henry@example.com")

	family, err := svc.CreateFamily(creator.ID, "The Wilsons")
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}

	joined, err := svc.JoinFamily(joiner.ID, family.InviteCode)
	if err != nil {
		t.Fatalf("JoinFamily failed: %v", err)
	}
	if joined.ID != family.ID {
		t.Errorf("Joined family %d, want %d", joined.ID, family.ID)
	}

	active, err := svc.ResolveActiveFamily(joiner.ID)
	if err != nil {
		t.Fatalf("ResolveActiveFamily returned error: %v", err)
	}
	if active == nil || active.Family.ID != family.ID {
		t.Fatal("Joiner's active family should be the joined family")
	}
	if len(active.Members) != 2 {
		t.Errorf("Roster should have 2 members, got %d", len(active.Members))
	}
}

func TestJoinFamilyUnknownCode(t *testing.T) {
	svc, userRepo, db := setupFamilyService(t)
	user := createTestUser(t, userRepo, "iris@example.com")

	_, err := svc.JoinFamily(user.ID, "ZZZZZZZZ")
	if !errors.Is(err, ErrFamilyNotFound) {
		t.Errorf("Expected ErrFamilyNotFound, got %v", err)
	}

	// A failed join must not write anything
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM family_members WHERE user_id = ?", user.ID).Scan(&count); err != nil {
		t.Fatalf("Failed to count memberships: %v", err)
	}
	if count != 0 {
		t.Errorf("Failed join wrote %d membership rows", count)
	}
}

func TestJoinFamilyTwiceRejected(t *testing.T) {
	svc, userRepo, _ := setupFamilyService(t)
	creator := createTestUser(t, userRepo, "judy@example.com")
	joiner := createTestUser(t, userRepo, "ken@example.com")

	family, err := svc.CreateFamily(creator.ID, "The Larsens")
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}
	if _, err := svc.JoinFamily(joiner.ID, family.InviteCode); err != nil {
		t.Fatalf("First join failed: %v", err)
	}

	_, err = svc.JoinFamily(joiner.ID, family.InviteCode)
	if !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("Expected ErrAlreadyMember on duplicate join, got %v", err)
	}
}

func TestVerifyFamilyAccess(t *testing.T) {
	svc, userRepo, _ := setupFamilyService(t)
	member := createTestUser(t, userRepo, "liam@example.com")
	outsider := createTestUser(t, userRepo, "mona@example.com")

	family, err := svc.CreateFamily(member.ID, "The Nguyens")
	if err != nil {
		t.Fatalf("CreateFamily failed: %v", err)
	}

	if err := svc.VerifyFamilyAccess(member.ID, family.ID); err != nil {
		t.Errorf("Member should have access: %v", err)
	}
	if err := svc.VerifyFamilyAccess(outsider.ID, family.ID); !errors.Is(err, ErrNotFamilyMember) {
		t.Errorf("Expected ErrNotFamilyMember for outsider, got %v", err)
	}
}
