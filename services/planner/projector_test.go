package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectRevenue(t *testing.T) {
	// August 2026 has five Saturdays; the baseline predicts 5 x 1000.
	dayAverages := map[int]map[int]float64{8: {6: 1000}}

	proj := ProjectRevenue(500000, 1.03, dayAverages, 2026)

	assert.InDelta(t, 515000, proj.TargetRevenue, 0.001)
	assert.InDelta(t, 5000, proj.BaseExpected, 0.001)
	assert.InDelta(t, 103, proj.Factor, 0.001)
	assert.InDelta(t, 500000, proj.PriorYearRevenue, 0.001)
}

func TestProjectRevenueSumsAllMonths(t *testing.T) {
	dayAverages := map[int]map[int]float64{
		7: {6: 1000, 7: 500},
		8: {6: 1000},
	}

	proj := ProjectRevenue(100000, 1.0, dayAverages, 2026)

	// July 2026: 4 Saturdays, 4 Sundays. August 2026: 5 Saturdays.
	assert.InDelta(t, 4*1000+4*500+5*1000, proj.BaseExpected, 0.001)
}

func TestProjectRevenueZeroBaseline(t *testing.T) {
	proj := ProjectRevenue(500000, 1.03, nil, 2026)

	// Nothing to scale against: the factor defaults to one instead of
	// dividing by zero.
	assert.Equal(t, 1.0, proj.Factor)
	assert.InDelta(t, 515000, proj.TargetRevenue, 0.001)
}
