package database

import (
	"embed"
	"fmt"
	"path"
	"sort"
)

//go:embed migrations
var migrationFiles embed.FS

// RunMigrations executes all embedded SQL migrations for the active dialect
// that have not been recorded as run yet.
func (db *DB) RunMigrations() error {
	if err := db.createMigrationsTable(); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	dir := path.Join("migrations", db.Dialect.MigrationsSubdir())
	entries, err := migrationFiles.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".sql" {
			names = append(names, entry.Name())
		}
	}

	// Filenames are numbered; lexical order is execution order
	sort.Strings(names)

	for _, name := range names {
		hasRun, err := db.hasMigrationRun(name)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if hasRun {
			continue
		}

		content, err := migrationFiles.ReadFile(path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		if _, err := db.DB.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", name, err)
		}

		if err := db.recordMigration(name); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", name, err)
		}
	}

	return nil
}

// createMigrationsTable creates the table to track completed migrations
func (db *DB) createMigrationsTable() error {
	var query string
	switch db.Dialect.(type) {
	case *PostgresDialect:
		query = `
			CREATE TABLE IF NOT EXISTS migrations (
				id BIGSERIAL PRIMARY KEY,
				filename TEXT UNIQUE NOT NULL,
				executed_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
			);
		`
	case *MySQLDialect:
		query = `
			CREATE TABLE IF NOT EXISTS migrations (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				filename VARCHAR(255) UNIQUE NOT NULL,
				executed_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
			);
		`
	default:
		query = `
			CREATE TABLE IF NOT EXISTS migrations (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				filename TEXT UNIQUE NOT NULL,
				executed_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
		`
	}
	_, err := db.DB.Exec(query)
	return err
}

// hasMigrationRun checks if a migration has already been executed
func (db *DB) hasMigrationRun(filename string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM migrations WHERE filename = ?"
	if err := db.QueryRow(query, filename).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// recordMigration marks a migration as completed
func (db *DB) recordMigration(filename string) error {
	query := "INSERT INTO migrations (filename) VALUES (?)"
	_, err := db.Exec(query, filename)
	return err
}
