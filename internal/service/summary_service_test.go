package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/flowtik/flowtik/internal/repository"
	"github.com/flowtik/flowtik/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summaryFixture struct {
	db        *sql.DB
	summaries *summaryService
	users     *repository.SQLiteUserRepo
	tasks     *repository.SQLiteTaskRepo
	intervals *repository.SQLiteIntervalRepo
	userID    int64
}

func newSummaryFixture(t *testing.T) *summaryFixture {
	t.Helper()
	database := testutil.NewTestDB(t)

	users := repository.NewSQLiteUserRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	intervals := repository.NewSQLiteIntervalRepo(database)

	user := testutil.NewTestUser("mira")
	require.NoError(t, users.Create(context.Background(), user))

	summaries := NewSummaryService(users, tasks, intervals).(*summaryService)
	return &summaryFixture{
		db:        database,
		summaries: summaries,
		users:     users,
		tasks:     tasks,
		intervals: intervals,
		userID:    user.ID,
	}
}

// addClosedWork records a finished work interval of the given length.
func (f *summaryFixture) addClosedWork(t *testing.T, taskID int64, start time.Time, d time.Duration) {
	t.Helper()
	err := f.intervals.CreateWork(context.Background(), testutil.NewTestWorkInterval(
		taskID, f.userID,
		testutil.WithWorkStart(start),
		testutil.WithWorkEnd(start.Add(d)),
	))
	require.NoError(t, err)
}

func TestDaily_EmptyDay(t *testing.T) {
	f := newSummaryFixture(t)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	summary, err := f.summaries.Daily(context.Background(), f.userID, day)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalWorkedHours)
	assert.Equal(t, "00h 00m", summary.TotalWorkedFormatted)
	assert.False(t, summary.QuotaMet)
	assert.InDelta(t, 8.0, summary.RemainingHours, 1e-9)
	assert.Empty(t, summary.TaskBreakdown)
	assert.Empty(t, summary.BreakBreakdown)
	assert.Nil(t, summary.ActiveTimer)
	assert.Equal(t, "mira", summary.UserName)
}

func TestDaily_TotalsAndQuota(t *testing.T) {
	f := newSummaryFixture(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask(f.userID, "Refactor billing", testutil.WithEstimate(6.0))
	require.NoError(t, f.tasks.Create(ctx, task))

	f.addClosedWork(t, task.ID, day.Add(9*time.Hour), 5*time.Hour)
	f.addClosedWork(t, task.ID, day.Add(15*time.Hour), 3*time.Hour+30*time.Minute)

	require.NoError(t, f.intervals.CreateBreak(ctx, testutil.NewTestBreakInterval(
		task.ID, f.userID,
		testutil.WithBreakStart(day.Add(14*time.Hour)),
		testutil.WithBreakEnd(day.Add(14*time.Hour+45*time.Minute)),
		testutil.WithReason("lunch"),
	)))

	summary, err := f.summaries.Daily(ctx, f.userID, day)
	require.NoError(t, err)

	assert.InDelta(t, 8.5, summary.TotalWorkedHours, 1e-9)
	assert.Equal(t, "08h 30m", summary.TotalWorkedFormatted)
	assert.InDelta(t, 0.75, summary.TotalBreakHours, 1e-9)
	assert.Equal(t, "00h 45m", summary.TotalBreakFormatted)

	// Breaks do not reduce the working total.
	assert.InDelta(t, summary.TotalWorkedHours, summary.NetWorkingHours, 1e-9)
	assert.True(t, summary.QuotaMet)
	assert.Zero(t, summary.RemainingHours)

	require.Len(t, summary.TaskBreakdown, 1)
	row := summary.TaskBreakdown[0]
	assert.Equal(t, "Refactor billing", row.TaskTitle)
	assert.InDelta(t, 8.5, row.ActualHours, 1e-9)
	assert.InDelta(t, 2.5, row.VarianceHours, 1e-9)
	assert.Equal(t, "02h 30m", row.VarianceFormatted)
	assert.True(t, row.OverEstimate)
	assert.Equal(t, 2, row.SessionCount)
}

func TestDaily_OpenIntervalCountsUpToNow(t *testing.T) {
	f := newSummaryFixture(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask(f.userID, "Write docs")
	require.NoError(t, f.tasks.Create(ctx, task))

	require.NoError(t, f.intervals.CreateWork(ctx, testutil.NewTestWorkInterval(
		task.ID, f.userID,
		testutil.WithWorkStart(day.Add(9*time.Hour)),
	)))

	f.summaries.now = func() time.Time { return day.Add(10*time.Hour + 30*time.Minute) }

	summary, err := f.summaries.Daily(ctx, f.userID, day)
	require.NoError(t, err)

	assert.InDelta(t, 1.5, summary.TotalWorkedHours, 1e-9)
	require.NotNil(t, summary.ActiveTimer)
	assert.Equal(t, "Write docs", summary.ActiveTimer.TaskTitle)
	assert.InDelta(t, 1.5, summary.ActiveTimer.ElapsedHours, 1e-9)
	assert.Equal(t, "01h 30m", summary.ActiveTimer.ElapsedFormatted)
}

func TestDaily_BreakdownOrderedByActualHours(t *testing.T) {
	f := newSummaryFixture(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	small := testutil.NewTestTask(f.userID, "Small task", testutil.WithEstimate(1.0))
	big := testutil.NewTestTask(f.userID, "Big task", testutil.WithEstimate(5.0))
	mid := testutil.NewTestTask(f.userID, "Mid task", testutil.WithEstimate(2.0))
	require.NoError(t, f.tasks.Create(ctx, small))
	require.NoError(t, f.tasks.Create(ctx, big))
	require.NoError(t, f.tasks.Create(ctx, mid))

	f.addClosedWork(t, small.ID, day.Add(9*time.Hour), 30*time.Minute)
	f.addClosedWork(t, big.ID, day.Add(10*time.Hour), 4*time.Hour)
	f.addClosedWork(t, mid.ID, day.Add(14*time.Hour), 2*time.Hour)

	breakdown, err := f.summaries.TaskBreakdown(ctx, f.userID, day)
	require.NoError(t, err)
	require.Len(t, breakdown, 3)

	assert.Equal(t, "Big task", breakdown[0].TaskTitle)
	assert.Equal(t, "Mid task", breakdown[1].TaskTitle)
	assert.Equal(t, "Small task", breakdown[2].TaskTitle)

	// Under-estimate variance keeps its sign in hours, renders absolute.
	assert.InDelta(t, -1.0, breakdown[0].VarianceHours, 1e-9)
	assert.Equal(t, "01h 00m", breakdown[0].VarianceFormatted)
	assert.False(t, breakdown[0].OverEstimate)
}

func TestDaily_ExcludesOtherDays(t *testing.T) {
	f := newSummaryFixture(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask(f.userID, "Spread across days")
	require.NoError(t, f.tasks.Create(ctx, task))

	f.addClosedWork(t, task.ID, day.Add(9*time.Hour), time.Hour)
	f.addClosedWork(t, task.ID, day.AddDate(0, 0, -1).Add(9*time.Hour), 2*time.Hour)
	f.addClosedWork(t, task.ID, day.AddDate(0, 0, 1).Add(9*time.Hour), 3*time.Hour)

	summary, err := f.summaries.Daily(ctx, f.userID, day)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, summary.TotalWorkedHours, 1e-9)
}

func TestWeekly_Aggregates(t *testing.T) {
	f := newSummaryFixture(t)
	ctx := context.Background()
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask(f.userID, "Weekly work")
	require.NoError(t, f.tasks.Create(ctx, task))

	// Monday: full quota. Wednesday: a short day. Rest: nothing.
	f.addClosedWork(t, task.ID, weekStart.Add(9*time.Hour), 8*time.Hour)
	f.addClosedWork(t, task.ID, weekStart.AddDate(0, 0, 2).Add(9*time.Hour), 2*time.Hour)

	weekly, err := f.summaries.Weekly(ctx, f.userID, weekStart)
	require.NoError(t, err)

	assert.Equal(t, weekStart, weekly.WeekStart)
	assert.Equal(t, weekStart.AddDate(0, 0, 6), weekly.WeekEnd)
	require.Len(t, weekly.Days, 7)

	assert.InDelta(t, 10.0, weekly.TotalWorkedHours, 1e-9)
	assert.Equal(t, "10h 00m", weekly.TotalWorkedFormatted)
	assert.Equal(t, 2, weekly.DaysWorked)
	assert.Equal(t, 1, weekly.DaysQuotaMet)
	assert.InDelta(t, 5.0, weekly.AverageHoursPerDay, 1e-9)
	assert.Equal(t, "mira", weekly.UserName)
}

func TestWeekly_EmptyWeekAverageIsZero(t *testing.T) {
	f := newSummaryFixture(t)
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	weekly, err := f.summaries.Weekly(context.Background(), f.userID, weekStart)
	require.NoError(t, err)

	assert.Zero(t, weekly.DaysWorked)
	assert.Zero(t, weekly.AverageHoursPerDay)
}

func TestWeekly_UnknownUser(t *testing.T) {
	f := newSummaryFixture(t)

	_, err := f.summaries.Weekly(context.Background(), 9999, time.Now())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBreaksForDay(t *testing.T) {
	f := newSummaryFixture(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask(f.userID, "Deep work")
	require.NoError(t, f.tasks.Create(ctx, task))

	require.NoError(t, f.intervals.CreateBreak(ctx, testutil.NewTestBreakInterval(
		task.ID, f.userID,
		testutil.WithBreakStart(day.Add(12*time.Hour)),
		testutil.WithBreakEnd(day.Add(12*time.Hour+20*time.Minute)),
		testutil.WithReason("walk"),
	)))
	require.NoError(t, f.intervals.CreateBreak(ctx, testutil.NewTestBreakInterval(
		task.ID, f.userID,
		testutil.WithBreakStart(day.Add(16*time.Hour)),
		testutil.WithReason("coffee"),
	)))

	f.summaries.now = func() time.Time { return day.Add(16*time.Hour + 6*time.Minute) }

	breaks, err := f.summaries.BreaksForDay(ctx, f.userID, day)
	require.NoError(t, err)
	require.Len(t, breaks, 2)

	assert.Equal(t, "walk", breaks[0].Reason)
	assert.Equal(t, "00h 20m", breaks[0].HoursFormatted)
	assert.False(t, breaks[0].Active)

	assert.Equal(t, "coffee", breaks[1].Reason)
	assert.True(t, breaks[1].Active)
	assert.InDelta(t, 0.1, breaks[1].Hours, 1e-9)
}
