package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flowtik/flowtik/internal/contract"
	"github.com/flowtik/flowtik/internal/db"
	"github.com/flowtik/flowtik/internal/domain"
	"github.com/flowtik/flowtik/internal/repository"
	"github.com/flowtik/flowtik/internal/timeutil"
	"github.com/google/uuid"
)

type timerService struct {
	users     repository.UserRepo
	tasks     repository.TaskRepo
	intervals repository.IntervalRepo
	summaries SummaryService
	uow       db.UnitOfWork
	observer  UseCaseObserver

	// now is read once per operation so closed and newly opened intervals
	// share the exact same boundary instant.
	now func() time.Time
}

// NewTimerService creates the timer state machine. Every mutation runs its
// check-then-write sequence inside a single unit of work.
func NewTimerService(
	users repository.UserRepo,
	tasks repository.TaskRepo,
	intervals repository.IntervalRepo,
	summaries SummaryService,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TimerService {
	return &timerService{
		users:     users,
		tasks:     tasks,
		intervals: intervals,
		summaries: summaries,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *timerService) Start(ctx context.Context, userID, taskID int64) (*contract.TimerControlResult, error) {
	now := s.now()
	started := time.Now()

	var taskTitle string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txIntervals := repository.NewSQLiteIntervalRepo(tx)

		if _, err := txUsers.GetByID(ctx, userID); err != nil {
			return err
		}
		task, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		if task.AssignedToID != userID {
			return fmt.Errorf("task %d is not assigned to user %d: %w", taskID, userID, ErrConflict)
		}
		if task.Completed {
			return fmt.Errorf("task %d is already completed: %w", taskID, ErrConflict)
		}
		taskTitle = task.Title

		if _, err := txIntervals.FindOpenWork(ctx, userID); err == nil {
			return fmt.Errorf("user %d already has a running timer: %w", userID, ErrInvalidTransition)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		// Starting a task silently ends any in-progress break, using the
		// same instant the new work interval starts at.
		openBreak, err := txIntervals.FindOpenBreak(ctx, userID)
		if err == nil {
			if err := txIntervals.CloseBreak(ctx, openBreak.ID, now); err != nil {
				return err
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		return txIntervals.CreateWork(ctx, &domain.WorkInterval{
			TaskID:    taskID,
			UserID:    userID,
			StartTime: now,
		})
	})
	s.observe(ctx, "timer_start", started, err, map[string]any{"user_id": userID, "task_id": taskID})
	if err != nil {
		return nil, err
	}

	return s.controlResult(ctx, userID, now, fmt.Sprintf("Timer started for task: %s", taskTitle), true)
}

func (s *timerService) Pause(ctx context.Context, userID int64, reason string) (*contract.TimerControlResult, error) {
	now := s.now()
	started := time.Now()

	var taskTitle string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txIntervals := repository.NewSQLiteIntervalRepo(tx)

		open, err := txIntervals.FindOpenWork(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("user %d has no running timer to pause: %w", userID, ErrInvalidTransition)
			}
			return err
		}
		taskTitle = taskTitleOrUnknown(ctx, txTasks, open.TaskID)

		if err := txIntervals.CloseWork(ctx, open.ID, now); err != nil {
			return err
		}
		return txIntervals.CreateBreak(ctx, &domain.BreakInterval{
			TaskID:    open.TaskID,
			UserID:    userID,
			StartTime: now,
			Reason:    reason,
		})
	})
	s.observe(ctx, "timer_pause", started, err, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}

	return s.controlResult(ctx, userID, now, fmt.Sprintf("Timer paused for task: %s. Break started.", taskTitle), false)
}

func (s *timerService) Resume(ctx context.Context, userID int64) (*contract.TimerControlResult, error) {
	now := s.now()
	started := time.Now()

	var taskTitle string
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txIntervals := repository.NewSQLiteIntervalRepo(tx)

		openBreak, err := txIntervals.FindOpenBreak(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("user %d has no open break to resume from: %w", userID, ErrInvalidTransition)
			}
			return err
		}
		taskTitle = taskTitleOrUnknown(ctx, txTasks, openBreak.TaskID)

		if err := txIntervals.CloseBreak(ctx, openBreak.ID, now); err != nil {
			return err
		}
		return txIntervals.CreateWork(ctx, &domain.WorkInterval{
			TaskID:    openBreak.TaskID,
			UserID:    userID,
			StartTime: now,
		})
	})
	s.observe(ctx, "timer_resume", started, err, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}

	return s.controlResult(ctx, userID, now, fmt.Sprintf("Timer resumed for task: %s", taskTitle), true)
}

func (s *timerService) Stop(ctx context.Context, userID int64) (*contract.TimerControlResult, error) {
	now := s.now()
	started := time.Now()

	var taskTitle string
	var finalHours float64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txIntervals := repository.NewSQLiteIntervalRepo(tx)

		open, err := txIntervals.FindOpenWork(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("user %d has no running timer to stop: %w", userID, ErrInvalidTransition)
			}
			return err
		}
		taskTitle = taskTitleOrUnknown(ctx, txTasks, open.TaskID)
		finalHours = timeutil.ElapsedHours(open.StartTime, &now, now)

		if err := txIntervals.CloseWork(ctx, open.ID, now); err != nil {
			return err
		}

		// Should never coexist with an open work interval, but if it does
		// the stop closes it too rather than stranding it.
		openBreak, err := txIntervals.FindOpenBreak(ctx, userID)
		if err == nil {
			return txIntervals.CloseBreak(ctx, openBreak.ID, now)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return nil
	})
	s.observe(ctx, "timer_stop", started, err, map[string]any{"user_id": userID})
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Timer stopped for task: %s. Duration: %s", taskTitle, timeutil.FormatHours(finalHours))
	return s.controlResult(ctx, userID, now, msg, false)
}

func (s *timerService) ActiveTimer(ctx context.Context, userID int64) (*contract.ActiveTimerView, error) {
	return activeTimerView(ctx, s.users, s.tasks, s.intervals, userID, s.now())
}

// controlResult assembles the response for a completed timer mutation:
// the message, today's summary, and (for start/resume) the active view.
func (s *timerService) controlResult(ctx context.Context, userID int64, now time.Time, msg string, withActive bool) (*contract.TimerControlResult, error) {
	result := &contract.TimerControlResult{Message: msg}

	if withActive {
		view, err := activeTimerView(ctx, s.users, s.tasks, s.intervals, userID, s.now())
		if err != nil {
			return nil, err
		}
		result.ActiveTimer = view
	}

	daily, err := s.summaries.Daily(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	result.DailySummary = daily
	return result, nil
}

func (s *timerService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		TraceID:   uuid.NewString(),
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
