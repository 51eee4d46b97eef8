package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/flowtik/flowtik/internal/contract"
	"github.com/flowtik/flowtik/internal/domain"
	"github.com/flowtik/flowtik/internal/repository"
	"github.com/flowtik/flowtik/internal/timeutil"
)

// unknownTaskTitle is shown when an interval references a task that no
// longer resolves.
const unknownTaskTitle = "Unknown"

func taskTitleOrUnknown(ctx context.Context, tasks repository.TaskRepo, id int64) string {
	task, err := tasks.GetByID(ctx, id)
	if err != nil {
		return unknownTaskTitle
	}
	return task.Title
}

func userNameOrEmpty(ctx context.Context, users repository.UserRepo, id int64) string {
	user, err := users.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return user.Name
}

// activeTimerView builds the view for a user's open work interval, or nil
// when no timer is running. The break fields are defensive: an open break
// alongside an open work interval violates the state invariant, and the
// view surfaces it rather than hiding it.
func activeTimerView(
	ctx context.Context,
	users repository.UserRepo,
	tasks repository.TaskRepo,
	intervals repository.IntervalRepo,
	userID int64,
	now time.Time,
) (*contract.ActiveTimerView, error) {
	open, err := intervals.FindOpenWork(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	view := &contract.ActiveTimerView{
		IntervalID:   open.ID,
		TaskID:       open.TaskID,
		TaskTitle:    taskTitleOrUnknown(ctx, tasks, open.TaskID),
		UserID:       open.UserID,
		UserName:     userNameOrEmpty(ctx, users, open.UserID),
		StartTime:    open.StartTime,
		ElapsedHours: timeutil.ElapsedHours(open.StartTime, nil, now),
	}
	view.ElapsedFormatted = timeutil.FormatHours(view.ElapsedHours)

	openBreak, err := intervals.FindOpenBreak(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return view, nil
		}
		return nil, err
	}
	view.OnBreak = true
	view.BreakStartTime = &openBreak.StartTime
	view.BreakHours = timeutil.ElapsedHours(openBreak.StartTime, nil, now)
	return view, nil
}

// buildTaskBreakdown groups work intervals by task and computes actual
// hours, variance against the estimate, and session stats. Rows are
// ordered by actual hours descending so the largest time investment
// surfaces first.
func buildTaskBreakdown(
	ctx context.Context,
	tasks repository.TaskRepo,
	works []*domain.WorkInterval,
	now time.Time,
) ([]contract.TaskTimeSummary, error) {
	type group struct {
		taskID int64
		hours  float64
		count  int
		first  time.Time
		last   time.Time
	}
	groups := make(map[int64]*group)
	var order []int64
	for _, w := range works {
		g, ok := groups[w.TaskID]
		if !ok {
			g = &group{taskID: w.TaskID, first: w.StartTime, last: w.StartTime}
			groups[w.TaskID] = g
			order = append(order, w.TaskID)
		}
		g.hours += timeutil.ElapsedHours(w.StartTime, w.EndTime, now)
		g.count++
		if w.StartTime.Before(g.first) {
			g.first = w.StartTime
		}
		if w.StartTime.After(g.last) {
			g.last = w.StartTime
		}
	}

	breakdown := make([]contract.TaskTimeSummary, 0, len(groups))
	for _, taskID := range order {
		g := groups[taskID]

		var estimated float64
		var completed bool
		title := unknownTaskTitle
		if task, err := tasks.GetByID(ctx, taskID); err == nil {
			title = task.Title
			estimated = task.EstimatedHours
			completed = task.Completed
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		variance := g.hours - estimated
		breakdown = append(breakdown, contract.TaskTimeSummary{
			TaskID:               taskID,
			TaskTitle:            title,
			EstimatedHours:       estimated,
			ActualHours:          g.hours,
			ActualHoursFormatted: timeutil.FormatHours(g.hours),
			VarianceHours:        variance,
			VarianceFormatted:    timeutil.FormatHours(math.Abs(variance)),
			OverEstimate:         variance > 0,
			Completed:            completed,
			SessionCount:         g.count,
			FirstWorkedOn:        g.first,
			LastWorkedOn:         g.last,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].ActualHours > breakdown[j].ActualHours
	})
	return breakdown, nil
}

// buildBreakSummaries converts break intervals into display rows, one per
// break, open breaks measured up to now.
func buildBreakSummaries(
	ctx context.Context,
	tasks repository.TaskRepo,
	breaks []*domain.BreakInterval,
	now time.Time,
) []contract.BreakSummary {
	summaries := make([]contract.BreakSummary, 0, len(breaks))
	for _, b := range breaks {
		hours := timeutil.ElapsedHours(b.StartTime, b.EndTime, now)
		summaries = append(summaries, contract.BreakSummary{
			BreakID:        b.ID,
			TaskID:         b.TaskID,
			TaskTitle:      taskTitleOrUnknown(ctx, tasks, b.TaskID),
			Reason:         b.Reason,
			StartTime:      b.StartTime,
			EndTime:        b.EndTime,
			Hours:          hours,
			HoursFormatted: timeutil.FormatHours(hours),
			Active:         b.Open(),
		})
	}
	return summaries
}
