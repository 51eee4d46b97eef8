package cli

import (
	"fmt"
	"time"
)

// parseDateFlag parses a --date value in YYYY-MM-DD form, defaulting to
// today (UTC) when the flag is empty.
func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t.UTC(), nil
}

// parseWeekStartFlag parses --week-start, defaulting to the Monday of the
// current week when empty.
func parseWeekStartFlag(value string) (time.Time, error) {
	if value != "" {
		return parseDateFlag(value)
	}
	now := time.Now().UTC()
	offset := (int(now.Weekday()) + 6) % 7 // days since Monday
	return now.AddDate(0, 0, -offset), nil
}
