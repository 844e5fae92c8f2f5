package planner

import "math"

// Projection is the revenue scale factor linking the historical baseline to
// the target year, with the figures it was derived from.
type Projection struct {
	Factor           float64
	PriorYearRevenue float64
	TargetRevenue    float64
	BaseExpected     float64
}

// ProjectRevenue computes the scale factor applied to raw slot revenue.
//
// The target year revenue is the prior year's actual total grown by the
// growth factor. The baseline is what the historical day averages predict for
// the target year's calendar: average day revenue times the number of times
// that weekday occurs in that month. The factor is kept separate from the raw
// profile values so both stay inspectable.
func ProjectRevenue(priorYearRevenue, growthFactor float64, dayAverages map[int]map[int]float64, targetYear int) Projection {
	target := math.Round(priorYearRevenue * growthFactor)

	var baseExpected float64
	for month := 1; month <= 12; month++ {
		byWeekday, ok := dayAverages[month]
		if !ok {
			continue
		}
		counts := WeekdayCounts(targetYear, month)
		for weekday := 1; weekday <= 7; weekday++ {
			baseExpected += byWeekday[weekday] * float64(counts[weekday])
		}
	}

	factor := 1.0
	if baseExpected > 0 {
		factor = target / baseExpected
	}

	return Projection{
		Factor:           factor,
		PriorYearRevenue: priorYearRevenue,
		TargetRevenue:    target,
		BaseExpected:     baseExpected,
	}
}
