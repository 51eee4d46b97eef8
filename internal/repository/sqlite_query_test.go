package repository

import (
	"context"
	"testing"
	"time"

	"github.com/flowtik/flowtik/internal/domain"
	"github.com/flowtik/flowtik/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryTestSetup(t *testing.T) (*SQLiteQueryRepo, int64, int64) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	taskRepo := NewSQLiteTaskRepo(db)

	user := testutil.NewTestUser("mira")
	require.NoError(t, userRepo.Create(ctx, user))
	task := testutil.NewTestTask(user.ID, "Migrate database")
	require.NoError(t, taskRepo.Create(ctx, task))

	return NewSQLiteQueryRepo(db), user.ID, task.ID
}

func TestQueryRepo_CreateAndGetByID(t *testing.T) {
	repo, userID, taskID := queryTestSetup(t)
	ctx := context.Background()

	q := testutil.NewTestQuery(taskID, userID, "Which schema version?")
	require.NoError(t, repo.Create(ctx, q))

	fetched, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Which schema version?", fetched.Subject)
	assert.Equal(t, domain.QueryOpen, fetched.Status)
}

func TestQueryRepo_UpdateStatus(t *testing.T) {
	repo, userID, taskID := queryTestSetup(t)
	ctx := context.Background()

	q := testutil.NewTestQuery(taskID, userID, "Blocked on access")
	require.NoError(t, repo.Create(ctx, q))

	require.NoError(t, repo.UpdateStatus(ctx, q.ID, domain.QueryResolved, time.Now().UTC()))

	fetched, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QueryResolved, fetched.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 9999, domain.QueryResolved, time.Now().UTC()), ErrNotFound)
}

func TestQueryRepo_ListAndCountByTask(t *testing.T) {
	repo, userID, taskID := queryTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestQuery(taskID, userID, "q1")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestQuery(taskID, userID, "q2")))

	list, err := repo.ListByTask(ctx, taskID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	// Newest first.
	assert.Equal(t, "q2", list[0].Subject)

	n, err := repo.CountByTask(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
