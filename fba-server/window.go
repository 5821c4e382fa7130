package main

import (
	"fmt"
	"time"

	"fba-matchup-mcp/internal/schedule"
)

// parseDate parses a YYYY-MM-DD tool argument.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q (want YYYY-MM-DD)", s)
	}
	return schedule.DateOf(t), nil
}

// restOfWeek returns [today, upcoming Sunday] for the given clock time.
func restOfWeek(now time.Time) (time.Time, time.Time) {
	today := schedule.DateOf(now)
	daysToSunday := (7 - int(today.Weekday())) % 7 // Sunday=0
	return today, today.AddDate(0, 0, daysToSunday)
}

// resolveWindow turns optional start/end arguments into a concrete date
// window, defaulting to the rest of the current week. An inverted
// window is swapped rather than rejected, with a note for the caller.
func resolveWindow(startArg, endArg string, now time.Time) (start, end time.Time, note string, err error) {
	start, end = restOfWeek(now)
	if startArg != "" {
		if start, err = parseDate(startArg); err != nil {
			return
		}
	}
	if endArg != "" {
		if end, err = parseDate(endArg); err != nil {
			return
		}
	}
	if end.Before(start) {
		note = fmt.Sprintf("window inverted: swapped %s and %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
		start, end = end, start
	}
	return
}
