package planner

import (
	"fmt"
	"time"
)

var weekdayNames = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayName returns the English name of an ISO weekday (1 = Monday).
func WeekdayName(weekday int) string {
	if weekday < 1 || weekday > 7 {
		return ""
	}
	return weekdayNames[weekday]
}

// isoWeekday maps time.Weekday (Sunday = 0) to ISO numbering (Monday = 1).
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// WeekdayCounts returns how often each ISO weekday occurs in the given month.
// Index 0 is unused; indexes 1..7 are Monday..Sunday.
func WeekdayCounts(year, month int) [8]int {
	var counts [8]int
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		counts[isoWeekday(d.Weekday())]++
	}
	return counts
}

// minutesToClock formats minutes from midnight as "HH:MM".
func minutesToClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// parseClock parses "HH:MM" into minutes from midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return h*60 + m, nil
}
