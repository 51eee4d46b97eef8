package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full set re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email
		ON users(email) WHERE email <> ''`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		estimated_hours REAL NOT NULL DEFAULT 0,
		assigned_to_id  INTEGER NOT NULL REFERENCES users(id),
		created_by_id   INTEGER NOT NULL REFERENCES users(id),
		completed       INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_assigned_to ON tasks(assigned_to_id)`,

	`CREATE TABLE IF NOT EXISTS work_intervals (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id    INTEGER NOT NULL REFERENCES tasks(id),
		user_id    INTEGER NOT NULL REFERENCES users(id),
		start_time TEXT NOT NULL,
		end_time   TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_intervals_user_start ON work_intervals(user_id, start_time)`,

	// At most one open work interval per user, enforced by the schema
	// itself in addition to the transactional check-then-write.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_work_intervals_one_open
		ON work_intervals(user_id) WHERE end_time IS NULL`,

	`CREATE TABLE IF NOT EXISTS break_intervals (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id    INTEGER NOT NULL REFERENCES tasks(id),
		user_id    INTEGER NOT NULL REFERENCES users(id),
		start_time TEXT NOT NULL,
		end_time   TEXT,
		reason     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_break_intervals_user_start ON break_intervals(user_id, start_time)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_break_intervals_one_open
		ON break_intervals(user_id) WHERE end_time IS NULL`,

	`CREATE TABLE IF NOT EXISTS task_queries (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id         INTEGER NOT NULL REFERENCES tasks(id),
		user_id         INTEGER NOT NULL REFERENCES users(id),
		subject         TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		attachment_path TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'open'
		                CHECK(status IN ('open','resolved')),
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_task_queries_task ON task_queries(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_task_queries_user ON task_queries(user_id)`,
}
