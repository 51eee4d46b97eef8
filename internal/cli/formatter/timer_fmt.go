package formatter

import (
	"fmt"
	"strings"

	"github.com/flowtik/flowtik/internal/contract"
	"github.com/flowtik/flowtik/internal/domain"
	"github.com/flowtik/flowtik/internal/timeutil"
)

// FormatActiveTimer formats the active-timer view as a boxed dashboard.
// A nil view means no timer is running.
func FormatActiveTimer(view *contract.ActiveTimerView) string {
	if view == nil {
		return Dim("No timer running.") + "\n"
	}

	var b strings.Builder

	state := domain.TimerRunning
	if view.OnBreak {
		state = domain.TimerOnBreak
	}
	b.WriteString(TimerStateBadge(state) + "\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Task:"), Bold(view.TaskTitle)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("User:"), StyleFg.Render(view.UserName)))
	b.WriteString(fmt.Sprintf("%s %s (%s)\n", Dim("Since:"), ClockTime(view.StartTime), HumanTimestamp(view.StartTime)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Elapsed:"), StyleGreen.Render(view.ElapsedFormatted)))

	if view.OnBreak && view.BreakStartTime != nil {
		b.WriteString(fmt.Sprintf("%s %s since %s\n",
			Dim("Break:"),
			StyleYellow.Render(timeutil.FormatHours(view.BreakHours)),
			ClockTime(*view.BreakStartTime)))
	}

	return RenderBox("Active Timer", strings.TrimRight(b.String(), "\n"))
}

// FormatControlResult formats the outcome of a timer mutation: the message
// plus a one-line snapshot of today's progress.
func FormatControlResult(res *contract.TimerControlResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(res.Message) + "\n")

	if res.DailySummary != nil {
		b.WriteString(fmt.Sprintf("%s %s\n",
			Dim("Today:"),
			RenderQuotaBar(res.DailySummary.TotalWorkedHours, 10)))
	}
	if res.ActiveTimer != nil {
		b.WriteString(FormatActiveTimer(res.ActiveTimer))
	}
	return b.String()
}
