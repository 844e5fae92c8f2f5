package planner

import (
	"fmt"

	"staffplan/models"
)

const shareEpsilon = 1e-9

// dayProfile indexes the historical profile of one weekday for quarter lookups.
type dayProfile struct {
	shares map[int]float64 // quarter key (hour*4 + quarter-1) -> share of day
	dayAvg float64         // average total revenue of this weekday
}

func quarterKey(hour, quarter int) int {
	return hour*4 + quarter - 1
}

// buildDayProfile filters the month's profile rows down to one weekday.
// Missing or null shares count as zero coverage, never as an error.
func buildDayProfile(slices []models.ProfileSlice, weekday int) dayProfile {
	dp := dayProfile{shares: make(map[int]float64)}
	for _, s := range slices {
		if s.Weekday != weekday {
			continue
		}
		if s.ShareOfDay != nil {
			dp.shares[quarterKey(s.Hour, s.Quarter)] = *s.ShareOfDay
		}
		if dp.dayAvg == 0 && s.AvgDayRevenue > 0 {
			dp.dayAvg = s.AvgDayRevenue
		}
	}
	return dp
}

// BuildDaySlots builds the ordered slot list of one weekday within one month:
// setup blocks before opening, sales blocks over the opening hours, cleanup
// blocks after closing. Sales slots carry their unscaled projected revenue.
func BuildDaySlots(month, weekday int, p models.PlanParams, profile dayProfile) ([]models.Slot, error) {
	if p.Granularity != 15 && p.Granularity != 30 {
		return nil, &ValidationError{Field: "granularity", Reason: fmt.Sprintf("must be 15 or 30 minutes, got %d", p.Granularity)}
	}

	hours := OpeningHoursFor(month, weekday)
	if hours.Closed {
		return nil, nil
	}

	openDelta, closeDelta := p.ShiftFor(month, weekday)
	openMin := hours.OpenHour*60 + openDelta
	closeMin := hours.CloseHour*60 + closeDelta
	if closeMin < openMin {
		closeMin = openMin
	}
	// Cleanup runs past closing for the trail window, but never beyond the
	// rule's cleanup end hour.
	cleanupEnd := hours.CleanupEndHour * 60
	if closeMin+p.TrailMinutes < cleanupEnd {
		cleanupEnd = closeMin + p.TrailMinutes
	}
	if cleanupEnd < closeMin {
		cleanupEnd = closeMin
	}

	var slots []models.Slot

	emit := func(from, to int, typ models.SlotType) {
		for t := from; t < to; t += p.Granularity {
			dur := p.Granularity
			if t+dur > to {
				dur = to - t
			}
			slots = append(slots, models.Slot{
				Label:       minutesToClock(t) + "-" + minutesToClock(t+dur),
				Weekday:     weekday,
				Type:        typ,
				Start:       t,
				DurationMin: dur,
			})
		}
	}

	emit(openMin-p.LeadMinutes, openMin, models.SlotSetup)
	emit(openMin, closeMin, models.SlotSales)
	emit(closeMin, cleanupEnd, models.SlotCleanup)

	// Collect raw historical shares per sales slot. A slot spanning 30
	// minutes sums its two quarters. Shares are normalized against the day's
	// total recorded share, so a window that misses recorded quarters keeps a
	// sum below one and a window covering them all sums to exactly one.
	var dayTotal float64
	for _, share := range profile.shares {
		dayTotal += share
	}

	var salesCount int
	rawShares := make([]float64, len(slots))
	for i, s := range slots {
		if s.Type != models.SlotSales {
			continue
		}
		salesCount++
		for t := s.Start; t < s.End(); t += 15 {
			rawShares[i] += profile.shares[quarterKey(t/60, (t%60)/15+1)]
		}
	}

	for i := range slots {
		if slots[i].Type != models.SlotSales {
			continue
		}
		var share float64
		if dayTotal > shareEpsilon {
			share = rawShares[i] / dayTotal
		} else if salesCount > 0 {
			// No historical coverage at all: split the day evenly.
			share = 1.0 / float64(salesCount)
		}
		slots[i].ShareUsed = share
		slots[i].ProjectedRevenue = profile.dayAvg * share
	}

	return slots, nil
}
