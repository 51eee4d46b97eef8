package formatter

import (
	"testing"
	"time"

	"github.com/flowtik/flowtik/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestFormatActiveTimer_NilView(t *testing.T) {
	assert.Contains(t, FormatActiveTimer(nil), "No timer running")
}

func TestFormatActiveTimer_Running(t *testing.T) {
	view := &contract.ActiveTimerView{
		TaskTitle:        "Build export pipeline",
		UserName:         "petra",
		StartTime:        time.Now().Add(-90 * time.Minute),
		ElapsedHours:     1.5,
		ElapsedFormatted: "01h 30m",
	}

	out := FormatActiveTimer(view)
	assert.Contains(t, out, "RUNNING")
	assert.Contains(t, out, "Build export pipeline")
	assert.Contains(t, out, "petra")
	assert.Contains(t, out, "01h 30m")
	assert.NotContains(t, out, "Break:")
}

func TestFormatActiveTimer_OnBreak(t *testing.T) {
	breakStart := time.Now().Add(-10 * time.Minute)
	view := &contract.ActiveTimerView{
		TaskTitle:        "Build export pipeline",
		UserName:         "petra",
		StartTime:        time.Now().Add(-2 * time.Hour),
		ElapsedFormatted: "02h 00m",
		OnBreak:          true,
		BreakStartTime:   &breakStart,
		BreakHours:       10.0 / 60,
	}

	out := FormatActiveTimer(view)
	assert.Contains(t, out, "ON BREAK")
	assert.Contains(t, out, "Break:")
}

func TestFormatControlResult(t *testing.T) {
	res := &contract.TimerControlResult{
		Message: "Timer started for task: Build export pipeline",
		DailySummary: &contract.DailySummary{
			TotalWorkedHours:     2,
			TotalWorkedFormatted: "02h 00m",
		},
	}

	out := FormatControlResult(res)
	assert.Contains(t, out, "Timer started for task: Build export pipeline")
	assert.Contains(t, out, "Today:")
}
