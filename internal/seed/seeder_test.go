package seed

import (
	"context"
	"path/filepath"
	"testing"

	"famify/internal/database"
	"famify/internal/repository"
)

func setupSeeder(t *testing.T) (*Seeder, *database.DB) {
	t.Helper()

	db, err := database.InitializeSQLite(filepath.Join(t.TempDir(), "seed_test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := NewSeeder(
		repository.NewUserRepository(db),
		repository.NewFamilyRepository(db),
		repository.NewEventRepository(db),
		repository.NewTaskRepository(db),
		repository.NewListRepository(db),
		repository.NewMealPlanRepository(db),
		repository.NewReminderRepository(db),
		repository.NewNoteRepository(db),
		repository.NewPostRepository(db),
		repository.NewNotificationRepository(db),
		"",
	)
	return seeder, db
}

func countRows(t *testing.T, db *database.DB, table string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}

func TestSeederRun(t *testing.T) {
	seeder, db := setupSeeder(t)

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	counts := []struct {
		table string
		want  int
	}{
		{"users", 2},
		{"families", 1},
		{"family_members", 2},
		{"events", 12},
		{"tasks", 8},
		{"lists", 2},
		{"list_items", 13},
		{"meal_plans", 9},
		{"reminders", 5},
		{"notes", 3},
		{"posts", 8},
		{"post_likes", 4},
		{"post_comments", 3},
		{"notifications", 4},
	}
	for _, c := range counts {
		if got := countRows(t, db, c.table); got != c.want {
			t.Errorf("%s: got %d rows, want %d", c.table, got, c.want)
		}
	}
}

func TestSeederLikesAndCommentsTargetExistingPosts(t *testing.T) {
	seeder, db := setupSeeder(t)

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var orphanLikes int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM post_likes pl
		LEFT JOIN posts p ON pl.post_id = p.id
		WHERE p.id IS NULL
	`).Scan(&orphanLikes)
	if err != nil {
		t.Fatalf("Failed to check likes: %v", err)
	}
	if orphanLikes != 0 {
		t.Errorf("Found %d likes pointing at missing posts", orphanLikes)
	}

	var orphanComments int
	err = db.QueryRow(`
		SELECT COUNT(*) FROM post_comments pc
		LEFT JOIN posts p ON pc.post_id = p.id
		WHERE p.id IS NULL
	`).Scan(&orphanComments)
	if err != nil {
		t.Fatalf("Failed to check comments: %v", err)
	}
	if orphanComments != 0 {
		t.Errorf("Found %d comments pointing at missing posts", orphanComments)
	}

	// The first-tooth post carries one like and one comment from Patricia
	var likeCount, commentCount int
	err = db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM post_likes WHERE post_id = p.id),
			(SELECT COUNT(*) FROM post_comments WHERE post_id = p.id)
		FROM posts p
		WHERE p.content LIKE 'Julia lost her first tooth%'
	`).Scan(&likeCount, &commentCount)
	if err != nil {
		t.Fatalf("Failed to load first-tooth post: %v", err)
	}
	if likeCount != 1 || commentCount != 1 {
		t.Errorf("first-tooth post: got %d likes, %d comments, want 1 and 1", likeCount, commentCount)
	}
}

func TestSeederDemoCredentialsWork(t *testing.T) {
	seeder, db := setupSeeder(t)

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	for _, email := range []string{johnEmail, patriciaEmail} {
		user, err := userRepo.GetUserByEmail(email)
		if err != nil {
			t.Fatalf("Failed to load %s: %v", email, err)
		}
		if user == nil {
			t.Fatalf("Demo user %s was not created", email)
		}
		if !user.EmailConfirmed {
			t.Errorf("Demo user %s should be email-confirmed", email)
		}
	}

	familyRepo := repository.NewFamilyRepository(db)
	john, _ := userRepo.GetUserByEmail(johnEmail)
	memberships, err := familyRepo.GetMembershipsByUser(john.ID)
	if err != nil {
		t.Fatalf("Failed to load memberships: %v", err)
	}
	if len(memberships) != 1 {
		t.Fatalf("John should have exactly one membership, got %d", len(memberships))
	}

	family, err := familyRepo.GetFamilyByID(memberships[0].FamilyID)
	if err != nil || family == nil {
		t.Fatalf("Failed to load demo family: %v", err)
	}
	if family.Name != demoFamilyName {
		t.Errorf("Family name = %q, want %q", family.Name, demoFamilyName)
	}
	if family.CreatedBy != john.ID {
		t.Errorf("Family created_by = %d, want John's id %d", family.CreatedBy, john.ID)
	}
}

func TestSeederSecondRunFails(t *testing.T) {
	seeder, db := setupSeeder(t)

	if err := seeder.Run(context.Background()); err != nil {
		t.Fatalf("First run failed: %v", err)
	}

	// Demo emails are unique; a second run must fail at the users step
	// without touching later tables.
	if err := seeder.Run(context.Background()); err == nil {
		t.Fatal("Second run should fail on duplicate demo users")
	}
	if got := countRows(t, db, "families"); got != 1 {
		t.Errorf("Second run should not add families, got %d", got)
	}
}
