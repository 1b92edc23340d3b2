package database

import "testing"

func TestDialectMetadata(t *testing.T) {
	tests := []struct {
		name             string
		dialect          Dialect
		driverName       string
		lastInsertID     bool
		migrationsSubdir string
	}{
		{"sqlite", NewSQLiteDialect(), "sqlite3", true, "sqlite"},
		{"postgres", NewPostgresDialect(), "postgres", false, "postgres"},
		{"mysql", NewMySQLDialect(), "mysql", true, "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driverName {
				t.Errorf("DriverName() = %q, want %q", got, tt.driverName)
			}
			if got := tt.dialect.SupportsLastInsertId(); got != tt.lastInsertID {
				t.Errorf("SupportsLastInsertId() = %v, want %v", got, tt.lastInsertID)
			}
			if got := tt.dialect.MigrationsSubdir(); got != tt.migrationsSubdir {
				t.Errorf("MigrationsSubdir() = %q, want %q", got, tt.migrationsSubdir)
			}
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "sqlite passthrough",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM families WHERE id = ?",
			expected: "SELECT * FROM families WHERE id = ?",
		},
		{
			name:     "mysql passthrough",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE tasks SET is_completed = ? WHERE id = ? AND family_id = ?",
			expected: "UPDATE tasks SET is_completed = ? WHERE id = ? AND family_id = ?",
		},
		{
			name:     "postgres single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM families WHERE invite_code = ?",
			expected: "SELECT * FROM families WHERE invite_code = $1",
		},
		{
			name:     "postgres numbered in order",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO family_members (family_id, user_id, role) VALUES (?, ?, ?)",
			expected: "INSERT INTO family_members (family_id, user_id, role) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.RewriteQuery(tt.query); got != tt.expected {
				t.Errorf("RewriteQuery() = %q, want %q", got, tt.expected)
			}
		})
	}
}
