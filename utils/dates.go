// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from start to end, each read in its own
// location. Dates are compared at UTC midnight so DST days count as one.
func DaysBetween(start, end time.Time) int {
	return int(calendarDate(end).Sub(calendarDate(start)).Hours() / 24)
}

func calendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate turns a YYYY-MM-DD date into "January 2, 2006". Empty or
// unparsable input yields "".
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format("January 2, 2006")
}

// DaysAgoLabel describes when something happened relative to now:
// "Today", "Yesterday" or "N days ago".
func DaysAgoLabel(then, now time.Time) string {
	switch days := DaysBetween(then, now); days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
