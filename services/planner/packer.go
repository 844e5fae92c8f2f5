package planner

import (
	"math"

	"staffplan/models"
)

// QuarterDemand is one quarter-hour of the coverage window: how many front
// staff the demand estimate asks for, and how much money the revenue-derived
// ceiling leaves for them. An infinite budget marks quarters whose staffing is
// fixed elsewhere (setup/cleanup crews).
type QuarterDemand struct {
	Start  int // minutes from midnight
	Demand int
	Budget float64
}

// DemandCurve expands a day's slot list into its per-quarter demand curve,
// spanning the full coverage window from setup start to cleanup end.
func DemandCurve(slots []models.Slot, cfg EngineConfig) []QuarterDemand {
	var curve []QuarterDemand
	for _, s := range slots {
		quarters := s.Quarters()
		for q := 0; q < quarters; q++ {
			qd := QuarterDemand{Start: s.Start + q*15}
			if s.Type == models.SlotSales {
				qd.Demand = s.StaffPlanned
				quarterRevenue := s.ScaledRevenue / float64(quarters)
				budget := cfg.LaborCostCeiling*quarterRevenue - float64(s.KitchenStaff)*s.UnitCostKitchen
				if budget < 0 {
					budget = 0
				}
				qd.Budget = budget
			} else {
				// Setup and cleanup are staffed by fixed crews outside the
				// packing loop; the baseline shift is all the curve asks for.
				qd.Demand = 1
				qd.Budget = math.Inf(1)
			}
			curve = append(curve, qd)
		}
	}
	return curve
}

// PackShifts turns the demand curve into a small set of contiguous front
// shifts. The day is split at the hand-off time and each half is packed
// independently: one baseline shift at headcount one, then greedy additions of
// at least the minimum shift length wherever demand is still uncovered and the
// per-quarter budget allows.
func PackShifts(curve []QuarterDemand, unitCost float64, cfg EngineConfig) []models.Shift {
	split := len(curve)
	for i, qd := range curve {
		if qd.Start >= cfg.HandoffMin {
			split = i
			break
		}
	}

	var shifts []models.Shift
	shifts = append(shifts, packHalf(curve[:split], unitCost, cfg)...)
	shifts = append(shifts, packHalf(curve[split:], unitCost, cfg)...)
	return shifts
}

func packHalf(curve []QuarterDemand, unitCost float64, cfg EngineConfig) []models.Shift {
	if len(curve) == 0 {
		return nil
	}

	end := curve[len(curve)-1].Start + 15
	var shifts []models.Shift

	// A staffed store is never left empty: one baseline shift spans the whole
	// half, chunked only when a maximum shift length is configured.
	baseFrom := curve[0].Start
	for baseFrom < end {
		baseTo := end
		if cfg.MaxShiftQuarters > 0 && baseFrom+cfg.MaxShiftQuarters*15 < end {
			baseTo = baseFrom + cfg.MaxShiftQuarters*15
		}
		shifts = append(shifts, models.Shift{Role: models.ShiftFront, Start: baseFrom, End: baseTo, Headcount: 1})
		baseFrom = baseTo
	}

	planned := make([]int, len(curve))
	for i := range planned {
		planned[i] = 1
	}
	accepted := make([]bool, len(curve))

	winLen := cfg.MinShiftQuarters
	if winLen > len(curve) {
		winLen = len(curve)
	}

	for {
		// First quarter still short of demand.
		first := -1
		for i := range curve {
			if planned[i] < curve[i].Demand && !accepted[i] {
				first = i
				break
			}
		}
		if first < 0 {
			break
		}

		// Anchor a minimum-length window there, pulled back at the block end.
		start := first
		if start+winLen > len(curve) {
			start = len(curve) - winLen
		}

		add := 0
		for q := start; q < start+winLen; q++ {
			if need := curve[q].Demand - planned[q]; need > add {
				add = need
			}
		}

		// Shrink the addition until every quarter in the window stays inside
		// its budget ceiling.
		for add > 0 {
			affordable := true
			for q := start; q < start+winLen; q++ {
				if float64(planned[q]+add)*unitCost > curve[q].Budget {
					affordable = false
					break
				}
			}
			if affordable {
				break
			}
			add--
		}

		if add <= 0 {
			// Not affordable: the quarter stays covered at its ceiling and the
			// scan moves past it.
			accepted[first] = true
			continue
		}

		shifts = append(shifts, models.Shift{
			Role:      models.ShiftFront,
			Start:     curve[start].Start,
			End:       curve[start].Start + winLen*15,
			Headcount: add,
		})
		for q := start; q < start+winLen; q++ {
			planned[q] += add
		}
	}

	return shifts
}

// FixedCrewShifts emits the setup and cleanup crews as shifts covering their
// contiguous slot blocks.
func FixedCrewShifts(slots []models.Slot) []models.Shift {
	var shifts []models.Shift
	var open *models.Shift
	var openType models.SlotType

	flush := func() {
		if open != nil {
			shifts = append(shifts, *open)
			open = nil
		}
	}

	for _, s := range slots {
		if s.Type == models.SlotSales {
			flush()
			continue
		}
		if open != nil && openType == s.Type && open.End == s.Start && open.Headcount == s.StaffPlanned {
			open.End = s.End()
			continue
		}
		flush()
		open = &models.Shift{Role: models.ShiftFront, Start: s.Start, End: s.End(), Headcount: s.StaffPlanned}
		openType = s.Type
	}
	flush()
	return shifts
}

// StandbyShifts emits the fixed single-person on-call windows. They are not
// derived from demand and ignore the packing loop entirely.
func StandbyShifts(cfg EngineConfig) []models.Shift {
	shifts := make([]models.Shift, 0, len(cfg.StandbyWindows))
	for _, w := range cfg.StandbyWindows {
		shifts = append(shifts, models.Shift{Role: models.ShiftStandby, Start: w.Start, End: w.End, Headcount: 1})
	}
	return shifts
}
