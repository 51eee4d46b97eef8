// Package timeutil holds the pure duration math shared by the timer state
// machine and the summary aggregation: elapsed-hours computation, the
// HHh MMm display format, and the daily quota helpers.
package timeutil

import (
	"fmt"
	"time"
)

// DailyQuotaHours is the fixed daily target used for completion and
// remaining-hours computations.
const DailyQuotaHours = 8.0

// ElapsedHours returns the duration of an interval in fractional hours.
// A zero start yields 0. An open interval (nil end) is measured up to now.
// Negative spans from clock skew or bad data are clamped to zero so totals
// can never go negative.
func ElapsedHours(start time.Time, end *time.Time, now time.Time) float64 {
	if start.IsZero() {
		return 0
	}
	stop := now
	if end != nil {
		stop = *end
	}
	hours := stop.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// FormatHours renders fractional hours as zero-padded "HHh MMm".
// The fractional remainder is truncated into minutes, not rounded.
func FormatHours(hours float64) string {
	hrs := int(hours)
	mins := int((hours - float64(hrs)) * 60)
	return fmt.Sprintf("%02dh %02dm", hrs, mins)
}

// IsQuotaMet reports whether workedHours reaches the daily quota.
func IsQuotaMet(workedHours float64) bool {
	return workedHours >= DailyQuotaHours
}

// RemainingToQuota returns how many hours remain until the daily quota,
// never negative.
func RemainingToQuota(workedHours float64) float64 {
	if workedHours >= DailyQuotaHours {
		return 0
	}
	return DailyQuotaHours - workedHours
}

// DayBounds returns the [00:00, next day 00:00) window containing t,
// in t's location.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
