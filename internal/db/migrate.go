package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id             TEXT PRIMARY KEY,
		student_name   TEXT NOT NULL DEFAULT '',
		target_date    TEXT NOT NULL,
		preferred_time TEXT NOT NULL
		               CHECK(preferred_time IN ('Morning','Afternoon','Night')),
		payload        TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_created ON plans(created_at)`,

	`CREATE TABLE IF NOT EXISTS block_completions (
		plan_id      TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		block_id     TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		PRIMARY KEY (plan_id, block_id)
	)`,

	`CREATE TABLE IF NOT EXISTS confidence_updates (
		plan_id    TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		subject    TEXT NOT NULL,
		confidence INTEGER NOT NULL CHECK(confidence BETWEEN 1 AND 5),
		updated_at TEXT NOT NULL,
		PRIMARY KEY (plan_id, subject)
	)`,

	// Added after the first release; older stores lack the column.
	`ALTER TABLE plans ADD COLUMN seed INTEGER`,
}
