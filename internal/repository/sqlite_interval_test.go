package repository

import (
	"context"
	"testing"
	"time"

	"github.com/flowtik/flowtik/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intervalTestSetup creates a user and a task needed by interval tests.
func intervalTestSetup(t *testing.T) (*SQLiteIntervalRepo, int64, int64) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	taskRepo := NewSQLiteTaskRepo(db)
	intervalRepo := NewSQLiteIntervalRepo(db)

	user := testutil.NewTestUser("dana")
	require.NoError(t, userRepo.Create(ctx, user))

	task := testutil.NewTestTask(user.ID, "Quarterly report")
	require.NoError(t, taskRepo.Create(ctx, task))

	return intervalRepo, user.ID, task.ID
}

func TestIntervalRepo_CreateAndFindOpenWork(t *testing.T) {
	repo, userID, taskID := intervalTestSetup(t)
	ctx := context.Background()

	w := testutil.NewTestWorkInterval(taskID, userID)
	require.NoError(t, repo.CreateWork(ctx, w))
	assert.NotZero(t, w.ID, "insert should assign an id")

	open, err := repo.FindOpenWork(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, open.ID)
	assert.Equal(t, taskID, open.TaskID)
	assert.True(t, open.Open())
}

func TestIntervalRepo_FindOpenWork_NoneOpen(t *testing.T) {
	repo, userID, taskID := intervalTestSetup(t)
	ctx := context.Background()

	start := time.Now().UTC().Add(-2 * time.Hour)
	closed := testutil.NewTestWorkInterval(taskID, userID,
		testutil.WithWorkStart(start),
		testutil.WithWorkEnd(start.Add(time.Hour)))
	require.NoError(t, repo.CreateWork(ctx, closed))

	_, err := repo.FindOpenWork(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIntervalRepo_SecondOpenWorkRejected(t *testing.T) {
	repo, userID, taskID := intervalTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateWork(ctx, testutil.NewTestWorkInterval(taskID, userID)))

	// The partial unique index guards the one-open-interval invariant.
	err := repo.CreateWork(ctx, testutil.NewTestWorkInterval(taskID, userID))
	assert.Error(t, err)
}

func TestIntervalRepo_CloseWork(t *testing.T) {
	repo, userID, taskID := intervalTestSetup(t)
	ctx := context.Background()

	w := testutil.NewTestWorkInterval(taskID, userID)
	require.NoError(t, repo.CreateWork(ctx, w))

	end := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, repo.CloseWork(ctx, w.ID, end))

	_, err := repo.FindOpenWork(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Closing an already-closed interval reports ErrNotFound.
	err = repo.CloseWork(ctx, w.ID, end)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIntervalRepo_ListWorkInRange(t *testing.T) {
	repo, userID, taskID := intervalTestSetup(t)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	inRange := testutil.NewTestWorkInterval(taskID, userID,
		testutil.WithWorkStart(day.Add(9*time.Hour)),
		testutil.WithWorkEnd(day.Add(11*time.Hour)))
	before := testutil.NewTestWorkInterval(taskID, userID,
		testutil.WithWorkStart(day.Add(-5*time.Hour)),
		testutil.WithWorkEnd(day.Add(-4*time.Hour)))
	after := testutil.NewTestWorkInterval(taskID, userID,
		testutil.WithWorkStart(day.Add(25*time.Hour)),
		testutil.WithWorkEnd(day.Add(26*time.Hour)))
	require.NoError(t, repo.CreateWork(ctx, inRange))
	require.NoError(t, repo.CreateWork(ctx, before))
	require.NoError(t, repo.CreateWork(ctx, after))

	list, err := repo.ListWorkInRange(ctx, userID, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, inRange.ID, list[0].ID)
	require.NotNil(t, list[0].EndTime)
	assert.Equal(t, day.Add(11*time.Hour), list[0].EndTime.UTC())
}

func TestIntervalRepo_BreakRoundTrip(t *testing.T) {
	repo, userID, taskID := intervalTestSetup(t)
	ctx := context.Background()

	b := testutil.NewTestBreakInterval(taskID, userID, testutil.WithReason("lunch"))
	require.NoError(t, repo.CreateBreak(ctx, b))

	open, err := repo.FindOpenBreak(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, open.ID)
	assert.Equal(t, "lunch", open.Reason)
	assert.True(t, open.Open())

	end := time.Now().UTC().Add(15 * time.Minute)
	require.NoError(t, repo.CloseBreak(ctx, b.ID, end))

	_, err = repo.FindOpenBreak(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIntervalRepo_SecondOpenBreakRejected(t *testing.T) {
	repo, userID, taskID := intervalTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateBreak(ctx, testutil.NewTestBreakInterval(taskID, userID)))

	err := repo.CreateBreak(ctx, testutil.NewTestBreakInterval(taskID, userID))
	assert.Error(t, err)
}

func TestIntervalRepo_ListBreaksInRange(t *testing.T) {
	repo, userID, taskID := intervalTestSetup(t)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	b := testutil.NewTestBreakInterval(taskID, userID,
		testutil.WithBreakStart(day.Add(12*time.Hour)),
		testutil.WithBreakEnd(day.Add(12*time.Hour+30*time.Minute)))
	outside := testutil.NewTestBreakInterval(taskID, userID,
		testutil.WithBreakStart(day.AddDate(0, 0, 2)),
		testutil.WithBreakEnd(day.AddDate(0, 0, 2).Add(time.Hour)))
	require.NoError(t, repo.CreateBreak(ctx, b))
	require.NoError(t, repo.CreateBreak(ctx, outside))

	list, err := repo.ListBreaksInRange(ctx, userID, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}
