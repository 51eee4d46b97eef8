package domain

import "time"

// WorkInterval is one continuous period a user spent working on one task.
// A nil EndTime means the interval is still open.
type WorkInterval struct {
	ID        int64
	TaskID    int64
	UserID    int64
	StartTime time.Time
	EndTime   *time.Time
}

// Open reports whether the interval is still in progress.
func (w *WorkInterval) Open() bool {
	return w.EndTime == nil
}

// BreakInterval is one continuous break period, attached to the task that
// was paused. Reason is optional pause metadata.
type BreakInterval struct {
	ID        int64
	TaskID    int64
	UserID    int64
	StartTime time.Time
	EndTime   *time.Time
	Reason    string
}

// Open reports whether the break is still in progress.
func (b *BreakInterval) Open() bool {
	return b.EndTime == nil
}
