// Package contract defines the response views the service layer hands to
// its callers (the CLI today, any other transport tomorrow).
package contract

import "time"

// ActiveTimerView describes a user's currently running work interval.
// OnBreak should never be true while a work interval is open; the view
// still surfaces it so an invariant violation is visible instead of hidden.
type ActiveTimerView struct {
	IntervalID       int64
	TaskID           int64
	TaskTitle        string
	UserID           int64
	UserName         string
	StartTime        time.Time
	ElapsedHours     float64
	ElapsedFormatted string
	OnBreak          bool
	BreakStartTime   *time.Time
	BreakHours       float64
}

// TimerControlResult is returned by the mutating timer operations.
type TimerControlResult struct {
	Message      string
	ActiveTimer  *ActiveTimerView
	DailySummary *DailySummary
}
