package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayCounts(t *testing.T) {
	tests := map[string]struct {
		year, month int
		expected    map[int]int // ISO weekday -> count
		totalDays   int
	}{
		"August_2025": {
			year: 2025, month: 8,
			// August 2025 starts on a Friday and has 31 days.
			expected:  map[int]int{1: 4, 2: 4, 3: 4, 4: 4, 5: 5, 6: 5, 7: 5},
			totalDays: 31,
		},
		"LeapFebruary_2024": {
			year: 2024, month: 2,
			// February 2024 starts on a Thursday and has 29 days.
			expected:  map[int]int{1: 4, 2: 4, 3: 4, 4: 5, 5: 4, 6: 4, 7: 4},
			totalDays: 29,
		},
		"January_2026": {
			year: 2026, month: 1,
			// January 2026 starts on a Thursday and has 31 days.
			expected:  map[int]int{1: 4, 2: 4, 3: 4, 4: 5, 5: 5, 6: 5, 7: 4},
			totalDays: 31,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			counts := WeekdayCounts(tc.year, tc.month)
			total := 0
			for weekday := 1; weekday <= 7; weekday++ {
				assert.Equal(t, tc.expected[weekday], counts[weekday], "weekday %d", weekday)
				total += counts[weekday]
			}
			assert.Equal(t, tc.totalDays, total)
		})
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Monday", WeekdayName(1))
	assert.Equal(t, "Saturday", WeekdayName(6))
	assert.Equal(t, "Sunday", WeekdayName(7))
	assert.Equal(t, "", WeekdayName(0))
	assert.Equal(t, "", WeekdayName(8))
}

func TestParseClock(t *testing.T) {
	min, err := parseClock("17:30")
	require.NoError(t, err)
	assert.Equal(t, 17*60+30, min)

	min, err = parseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	_, err = parseClock("25:00")
	assert.Error(t, err)
	_, err = parseClock("noon")
	assert.Error(t, err)
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "12:00", minutesToClock(720))
	assert.Equal(t, "22:15", minutesToClock(22*60+15))
}
