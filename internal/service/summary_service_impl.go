package service

import (
	"context"
	"time"

	"github.com/flowtik/flowtik/internal/contract"
	"github.com/flowtik/flowtik/internal/repository"
	"github.com/flowtik/flowtik/internal/timeutil"
)

type summaryService struct {
	users     repository.UserRepo
	tasks     repository.TaskRepo
	intervals repository.IntervalRepo

	now func() time.Time
}

// NewSummaryService creates the aggregation engine. Summaries are plain
// reads: they are not transactionally consistent with concurrent timer
// mutations, which is acceptable for reporting.
func NewSummaryService(
	users repository.UserRepo,
	tasks repository.TaskRepo,
	intervals repository.IntervalRepo,
) SummaryService {
	return &summaryService{
		users:     users,
		tasks:     tasks,
		intervals: intervals,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *summaryService) Daily(ctx context.Context, userID int64, date time.Time) (*contract.DailySummary, error) {
	now := s.now()
	dayStart, dayEnd := timeutil.DayBounds(date)

	works, err := s.intervals.ListWorkInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	breaks, err := s.intervals.ListBreaksInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	var totalWorked, totalBreak float64
	for _, w := range works {
		totalWorked += timeutil.ElapsedHours(w.StartTime, w.EndTime, now)
	}
	for _, b := range breaks {
		totalBreak += timeutil.ElapsedHours(b.StartTime, b.EndTime, now)
	}

	breakdown, err := buildTaskBreakdown(ctx, s.tasks, works, now)
	if err != nil {
		return nil, err
	}

	// The active-timer view is always "now", independent of the
	// requested date.
	active, err := activeTimerView(ctx, s.users, s.tasks, s.intervals, userID, now)
	if err != nil {
		return nil, err
	}

	// Breaks are tracked separately, not subtracted from worked time.
	net := totalWorked

	summary := &contract.DailySummary{
		Date:                 dayStart,
		UserID:               userID,
		UserName:             userNameOrEmpty(ctx, s.users, userID),
		TotalWorkedHours:     totalWorked,
		TotalWorkedFormatted: timeutil.FormatHours(totalWorked),
		TotalBreakHours:      totalBreak,
		TotalBreakFormatted:  timeutil.FormatHours(totalBreak),
		NetWorkingHours:      net,
		NetWorkingFormatted:  timeutil.FormatHours(net),
		QuotaMet:             timeutil.IsQuotaMet(net),
		RemainingHours:       timeutil.RemainingToQuota(net),
		TaskBreakdown:        breakdown,
		BreakBreakdown:       buildBreakSummaries(ctx, s.tasks, breaks, now),
		ActiveTimer:          active,
	}
	summary.RemainingFormatted = timeutil.FormatHours(summary.RemainingHours)
	return summary, nil
}

func (s *summaryService) Weekly(ctx context.Context, userID int64, weekStart time.Time) (*contract.WeeklySummary, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, _ := timeutil.DayBounds(weekStart)
	weekly := &contract.WeeklySummary{
		WeekStart: start,
		WeekEnd:   start.AddDate(0, 0, 6),
		UserID:    userID,
		UserName:  user.Name,
		Days:      make([]contract.DailySummary, 0, 7),
	}

	for i := 0; i < 7; i++ {
		daily, err := s.Daily(ctx, userID, start.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		weekly.Days = append(weekly.Days, *daily)

		weekly.TotalWorkedHours += daily.TotalWorkedHours
		weekly.TotalBreakHours += daily.TotalBreakHours
		if daily.TotalWorkedHours > 0 {
			weekly.DaysWorked++
		}
		if daily.QuotaMet {
			weekly.DaysQuotaMet++
		}
	}

	weekly.TotalWorkedFormatted = timeutil.FormatHours(weekly.TotalWorkedHours)
	if weekly.DaysWorked > 0 {
		weekly.AverageHoursPerDay = weekly.TotalWorkedHours / float64(weekly.DaysWorked)
	}
	return weekly, nil
}

func (s *summaryService) TaskBreakdown(ctx context.Context, userID int64, date time.Time) ([]contract.TaskTimeSummary, error) {
	dayStart, dayEnd := timeutil.DayBounds(date)
	works, err := s.intervals.ListWorkInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return buildTaskBreakdown(ctx, s.tasks, works, s.now())
}

func (s *summaryService) BreaksForDay(ctx context.Context, userID int64, date time.Time) ([]contract.BreakSummary, error) {
	dayStart, dayEnd := timeutil.DayBounds(date)
	breaks, err := s.intervals.ListBreaksInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return buildBreakSummaries(ctx, s.tasks, breaks, s.now()), nil
}
