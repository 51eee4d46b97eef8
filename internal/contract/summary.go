package contract

import "time"

// TaskTimeSummary is one row of a day's per-task breakdown.
type TaskTimeSummary struct {
	TaskID               int64
	TaskTitle            string
	EstimatedHours       float64
	ActualHours          float64
	ActualHoursFormatted string
	VarianceHours        float64
	// VarianceFormatted renders the absolute variance; OverEstimate
	// carries the sign.
	VarianceFormatted string
	OverEstimate      bool
	Completed         bool
	SessionCount      int
	FirstWorkedOn     time.Time
	LastWorkedOn      time.Time
}

// BreakSummary is one break interval with its computed duration.
type BreakSummary struct {
	BreakID        int64
	TaskID         int64
	TaskTitle      string
	Reason         string
	StartTime      time.Time
	EndTime        *time.Time
	Hours          float64
	HoursFormatted string
	Active         bool
}

// DailySummary aggregates one user's day. Total worked hours include the
// running elapsed time of any open interval; breaks are accounted
// separately and never subtracted from worked time.
type DailySummary struct {
	Date                 time.Time
	UserID               int64
	UserName             string
	TotalWorkedHours     float64
	TotalWorkedFormatted string
	TotalBreakHours      float64
	TotalBreakFormatted  string
	NetWorkingHours      float64
	NetWorkingFormatted  string
	QuotaMet             bool
	RemainingHours       float64
	RemainingFormatted   string
	TaskBreakdown        []TaskTimeSummary
	BreakBreakdown       []BreakSummary
	ActiveTimer          *ActiveTimerView
}

// WeeklySummary aggregates seven consecutive daily summaries starting at
// WeekStart. The anchor date is caller-supplied and need not be a Monday.
type WeeklySummary struct {
	WeekStart            time.Time
	WeekEnd              time.Time
	UserID               int64
	UserName             string
	TotalWorkedHours     float64
	TotalWorkedFormatted string
	TotalBreakHours      float64
	AverageHoursPerDay   float64
	DaysWorked           int
	DaysQuotaMet         int
	Days                 []DailySummary
}

// TaskOverview is a task enriched with interval-derived stats.
type TaskOverview struct {
	TaskID           int64
	Title            string
	Description      string
	EstimatedHours   float64
	AssignedToID     int64
	AssignedToName   string
	Completed        bool
	CreatedAt        time.Time
	TotalHoursWorked float64
	CurrentlyActive  bool
	LastStartTime    *time.Time
	QueryCount       int
}
