package planner

import (
	"testing"

	"staffplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func testParams() models.PlanParams {
	p := models.PlanParams{Month: 8, BaselineYear: 2025}
	p.ApplyDefaults()
	return p
}

// fullCoverageSlices covers every quarter of the August Saturday opening hours
// (12:00-22:00) with an equal share.
func fullCoverageSlices(weekday int, dayAvg float64) []models.ProfileSlice {
	var slices []models.ProfileSlice
	for hour := 12; hour < 22; hour++ {
		for quarter := 1; quarter <= 4; quarter++ {
			slices = append(slices, models.ProfileSlice{
				Weekday:       weekday,
				Hour:          hour,
				Quarter:       quarter,
				AvgRevenue:    dayAvg / 40,
				ShareOfDay:    floatPtr(1.0 / 40),
				AvgDayRevenue: dayAvg,
			})
		}
	}
	return slices
}

func TestBuildDaySlotsClosedMonth(t *testing.T) {
	p := testParams()
	p.Month = 1

	for weekday := 1; weekday <= 7; weekday++ {
		slots, err := BuildDaySlots(1, weekday, p, dayProfile{shares: map[int]float64{}})
		require.NoError(t, err)
		assert.Empty(t, slots, "weekday %d of a closed month must have no slots", weekday)
	}
}

func TestBuildDaySlotsInvalidGranularity(t *testing.T) {
	p := testParams()
	p.Granularity = 20

	_, err := BuildDaySlots(8, 6, p, dayProfile{shares: map[int]float64{}})
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBuildDaySlotsLayout(t *testing.T) {
	p := testParams()
	profile := buildDayProfile(fullCoverageSlices(6, 4000), 6)

	slots, err := BuildDaySlots(8, 6, p, profile)
	require.NoError(t, err)

	// 2 setup quarters (11:30-12:00), 40 sales quarters (12:00-22:00),
	// 2 cleanup quarters (22:00-22:30, capped by trail minutes).
	var setup, sales, cleanup int
	for _, s := range slots {
		switch s.Type {
		case models.SlotSetup:
			setup++
		case models.SlotSales:
			sales++
		case models.SlotCleanup:
			cleanup++
		}
	}
	assert.Equal(t, 2, setup)
	assert.Equal(t, 40, sales)
	assert.Equal(t, 2, cleanup)

	assert.Equal(t, 11*60+30, slots[0].Start)
	assert.Equal(t, "11:30-11:45", slots[0].Label)
	last := slots[len(slots)-1]
	assert.Equal(t, 22*60+30, last.End())
}

func TestBuildDaySlotsShareNormalization(t *testing.T) {
	p := testParams()
	profile := buildDayProfile(fullCoverageSlices(6, 4000), 6)

	slots, err := BuildDaySlots(8, 6, p, profile)
	require.NoError(t, err)

	var shareSum, revenueSum float64
	for _, s := range slots {
		if s.Type != models.SlotSales {
			assert.Zero(t, s.ShareUsed)
			continue
		}
		shareSum += s.ShareUsed
		revenueSum += s.ProjectedRevenue
	}
	// Complete coverage: shares sum to exactly one and revenue to the day
	// average.
	assert.InDelta(t, 1.0, shareSum, 1e-9)
	assert.InDelta(t, 4000, revenueSum, 1e-6)
}

func TestBuildDaySlotsEqualSplitFallback(t *testing.T) {
	p := testParams()
	profile := dayProfile{shares: map[int]float64{}, dayAvg: 4000}

	slots, err := BuildDaySlots(8, 6, p, profile)
	require.NoError(t, err)

	var shareSum float64
	for _, s := range slots {
		if s.Type != models.SlotSales {
			continue
		}
		assert.InDelta(t, 1.0/40, s.ShareUsed, 1e-9)
		shareSum += s.ShareUsed
	}
	assert.InDelta(t, 1.0, shareSum, 1e-9)
}

func TestBuildDaySlotsShareOutsideWindowStaysBelowOne(t *testing.T) {
	p := testParams()
	slices := fullCoverageSlices(6, 4000)
	// Recorded share past the official closing time (late receipts) lies
	// outside the sales window, so the window's share sum stays below one.
	for quarter := 1; quarter <= 4; quarter++ {
		slices = append(slices, models.ProfileSlice{
			Weekday: 6, Hour: 22, Quarter: quarter,
			ShareOfDay: floatPtr(0.05), AvgDayRevenue: 4000,
		})
	}

	slots, err := BuildDaySlots(8, 6, p, buildDayProfile(slices, 6))
	require.NoError(t, err)

	var shareSum float64
	for _, s := range slots {
		shareSum += s.ShareUsed
	}
	assert.InDelta(t, 1.0/1.2, shareSum, 1e-9)
	assert.LessOrEqual(t, shareSum, 1.0+1e-9)
}

func TestBuildDaySlotsThirtyMinuteGranularity(t *testing.T) {
	p := testParams()
	p.Granularity = 30
	profile := buildDayProfile(fullCoverageSlices(6, 4000), 6)

	slots, err := BuildDaySlots(8, 6, p, profile)
	require.NoError(t, err)

	var sales int
	for _, s := range slots {
		if s.Type != models.SlotSales {
			continue
		}
		sales++
		assert.Equal(t, 30, s.DurationMin)
		// Two adjacent quarters aggregate into one slot.
		assert.InDelta(t, 2.0/40, s.ShareUsed, 1e-9)
	}
	assert.Equal(t, 20, sales)
}

func TestBuildDaySlotsTimeShift(t *testing.T) {
	p := testParams()
	p.TimeShifts = []models.TimeShift{{Month: 8, Weekdays: []int{6}, CloseDeltaMin: 60}}
	profile := buildDayProfile(fullCoverageSlices(6, 4000), 6)

	slots, err := BuildDaySlots(8, 6, p, profile)
	require.NoError(t, err)

	var lastSales models.Slot
	for _, s := range slots {
		if s.Type == models.SlotSales {
			lastSales = s
		}
	}
	// Closing moved from 22:00 to 23:00; cleanup is capped by the rule's
	// cleanup end hour.
	assert.Equal(t, 23*60, lastSales.End())
	for _, s := range slots {
		assert.LessOrEqual(t, s.End(), 23*60)
	}

	// The shift does not apply to other weekdays.
	slots, err = BuildDaySlots(8, 5, p, buildDayProfile(fullCoverageSlices(5, 4000), 5))
	require.NoError(t, err)
	var lastFriday models.Slot
	for _, s := range slots {
		if s.Type == models.SlotSales {
			lastFriday = s
		}
	}
	assert.Equal(t, 22*60, lastFriday.End())
}

func TestBuildDaySlotsCloseClampedToOpen(t *testing.T) {
	p := testParams()
	p.TimeShifts = []models.TimeShift{{Month: 8, CloseDeltaMin: -12 * 60}}

	slots, err := BuildDaySlots(8, 6, p, dayProfile{shares: map[int]float64{}})
	require.NoError(t, err)
	for _, s := range slots {
		assert.NotEqual(t, models.SlotSales, s.Type, "sales window collapsed to zero")
	}
}
