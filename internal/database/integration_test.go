package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := InitializeSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func TestMigrationsCreateSchema(t *testing.T) {
	db := openTestDB(t)

	tables := []string{
		"users", "sessions", "families", "family_members",
		"events", "event_assignees", "tasks", "lists", "list_items",
		"meal_plans", "reminders", "notes",
		"posts", "post_likes", "post_comments", "notifications",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := openTestDB(t)

	// A second run must see the recorded migrations and do nothing
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count == 0 {
		t.Error("Expected recorded migrations")
	}
}

func TestExecReturningID(t *testing.T) {
	db := openTestDB(t)

	first, err := db.ExecReturningID(
		"INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"a@example.com", "hash", "A")
	if err != nil {
		t.Fatalf("ExecReturningID failed: %v", err)
	}
	second, err := db.ExecReturningID(
		"INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"b@example.com", "hash", "B")
	if err != nil {
		t.Fatalf("ExecReturningID failed: %v", err)
	}

	if first == 0 || second != first+1 {
		t.Errorf("Expected sequential IDs, got %d then %d", first, second)
	}
}

func TestTransactionCommitAndRollback(t *testing.T) {
	db := openTestDB(t)

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.ExecReturningID(
		"INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"committed@example.com", "hash", "Committed"); err != nil {
		t.Fatalf("Insert in transaction failed: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	tx2, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx2.ExecReturningID(
		"INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"rolledback@example.com", "hash", "RolledBack"); err != nil {
		t.Fatalf("Insert in transaction failed: %v", err)
	}
	if err := tx2.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "committed@example.com").Scan(&count); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Committed row missing, count = %d", count)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "rolledback@example.com").Scan(&count); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Rolled-back row persisted, count = %d", count)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)

	// family_members.family_id references families; inserting against a
	// missing family must fail.
	_, err := db.Exec("INSERT INTO family_members (family_id, user_id, role) VALUES (?, ?, ?)", 12345, 67890, "parent")
	if err == nil {
		t.Error("Expected foreign key violation")
	}
}
