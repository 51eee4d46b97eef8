package db_test

import (
	"testing"

	"github.com/flowtik/flowtik/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	for _, table := range []string{"users", "tasks", "work_intervals", "break_intervals", "task_queries"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// Re-running the full migration set must not fail.
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_OneOpenWorkIntervalPerUser(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO users (id, name, created_at) VALUES (1, 'u', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO tasks (id, title, assigned_to_id, created_by_id, created_at)
		VALUES (1, 't', 1, 1, '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO work_intervals (task_id, user_id, start_time) VALUES (1, 1, '2025-01-01T09:00:00Z')`)
	require.NoError(t, err)

	// A second open interval for the same user must be rejected.
	_, err = database.Exec(`INSERT INTO work_intervals (task_id, user_id, start_time) VALUES (1, 1, '2025-01-01T10:00:00Z')`)
	assert.Error(t, err)

	// A closed interval is fine.
	_, err = database.Exec(`INSERT INTO work_intervals (task_id, user_id, start_time, end_time)
		VALUES (1, 1, '2025-01-01T07:00:00Z', '2025-01-01T08:00:00Z')`)
	assert.NoError(t, err)
}
