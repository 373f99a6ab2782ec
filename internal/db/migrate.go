package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS contexts (
		name               TEXT PRIMARY KEY,
		action_description TEXT NOT NULL,
		document           TEXT NOT NULL,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS evaluations (
		id           TEXT PRIMARY KEY,
		context_name TEXT,
		action       TEXT NOT NULL,
		ran_at       TEXT NOT NULL,
		report       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_context
		ON evaluations(context_name)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_ran_at
		ON evaluations(ran_at)`,
}
