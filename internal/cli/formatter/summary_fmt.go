package formatter

import (
	"fmt"
	"strings"

	"github.com/flowtik/flowtik/internal/contract"
	"github.com/flowtik/flowtik/internal/timeutil"
)

const quotaBarWidth = 10

// FormatDailySummary formats a day's summary as a styled dashboard: totals,
// quota progress, the per-task breakdown, and any breaks.
func FormatDailySummary(s *contract.DailySummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(DayLabel(s.Date)), Dim(s.UserName)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Worked:"), RenderQuotaBar(s.TotalWorkedHours, quotaBarWidth)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Breaks:"), StyleYellow.Render(s.TotalBreakFormatted)))
	b.WriteString(QuotaPill(s.QuotaMet))
	if !s.QuotaMet {
		b.WriteString(Dim(fmt.Sprintf("  (%s remaining)", s.RemainingFormatted)))
	}
	b.WriteString("\n")

	if len(s.TaskBreakdown) > 0 {
		b.WriteString("\n" + Header("Tasks") + "\n")
		headers := []string{"TASK", "ACTUAL", "ESTIMATE", "VARIANCE", "SESSIONS"}
		rows := make([][]string, 0, len(s.TaskBreakdown))
		for _, row := range s.TaskBreakdown {
			rows = append(rows, []string{
				Bold(Truncate(row.TaskTitle, 40)),
				StyleFg.Render(row.ActualHoursFormatted),
				Dim(timeutil.FormatHours(row.EstimatedHours)),
				VariancePill(row.OverEstimate, row.VarianceFormatted),
				fmt.Sprintf("%d", row.SessionCount),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if len(s.BreakBreakdown) > 0 {
		b.WriteString("\n" + Header("Breaks") + "\n")
		headers := []string{"START", "DURATION", "REASON", "TASK"}
		rows := make([][]string, 0, len(s.BreakBreakdown))
		for _, br := range s.BreakBreakdown {
			duration := br.HoursFormatted
			if br.Active {
				duration = StyleYellow.Render(duration + " (ongoing)")
			}
			reason := br.Reason
			if reason == "" {
				reason = Dim("--")
			}
			rows = append(rows, []string{
				ClockTime(br.StartTime),
				duration,
				reason,
				Dim(Truncate(br.TaskTitle, 30)),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if s.ActiveTimer != nil {
		b.WriteString("\n")
		b.WriteString(FormatActiveTimer(s.ActiveTimer))
	}

	return RenderBox("Daily Summary", strings.TrimRight(b.String(), "\n"))
}

// FormatWeeklySummary formats a week's aggregation with one row per day.
func FormatWeeklySummary(s *contract.WeeklySummary) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(weekRangeLabel(s)), Dim(s.UserName)))
	b.WriteString("\n")

	headers := []string{"DAY", "WORKED", "BREAKS", "QUOTA"}
	rows := make([][]string, 0, len(s.Days))
	for _, day := range s.Days {
		worked := day.TotalWorkedFormatted
		if day.TotalWorkedHours == 0 {
			worked = Dim(worked)
		}
		rows = append(rows, []string{
			StyleFg.Render(DayLabel(day.Date)),
			worked,
			Dim(day.TotalBreakFormatted),
			QuotaPill(day.QuotaMet),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %d/7 worked, %d met quota\n",
		Dim("Total:"), Bold(s.TotalWorkedFormatted),
		Dim("Avg/day:"), StyleFg.Render(timeutil.FormatHours(s.AverageHoursPerDay)),
		Dim("Days:"), s.DaysWorked, s.DaysQuotaMet))

	return RenderBox("Weekly Summary", strings.TrimRight(b.String(), "\n"))
}

func weekRangeLabel(s *contract.WeeklySummary) string {
	return fmt.Sprintf("%s – %s", s.WeekStart.Format("Jan 2"), s.WeekEnd.Format("Jan 2, 2006"))
}
