package planner

import (
	"math"

	"staffplan/models"
)

// kitchenHeadcount returns the concurrent kitchen staff during a slot. The
// kitchen is empty before its start hour; afterwards the day crew works until
// the hand-off time and the evening crew from then on.
func kitchenHeadcount(slotStart int, p models.PlanParams, cfg EngineConfig) int {
	if slotStart < p.KitchenStartHour*60 {
		return 0
	}
	if slotStart < cfg.HandoffMin {
		return p.KitchenDayHeadcount
	}
	return p.KitchenEveningHeadcount
}

// EstimateDemand fills in the staffing numbers of every slot. Sales slot
// revenue must already carry the projection scale factor; the budget cap is
// derived from that revenue alone, never from the resulting plan.
func EstimateDemand(slots []models.Slot, p models.PlanParams, cfg EngineConfig, scaleFactor float64) []models.Slot {
	out := make([]models.Slot, len(slots))
	for i, s := range slots {
		quarters := float64(s.Quarters())
		s.UnitCostFront = p.FrontUnitCost
		s.UnitCostKitchen = p.KitchenUnitCost
		s.KitchenStaff = kitchenHeadcount(s.Start, p, cfg)
		s.ScaledRevenue = s.ProjectedRevenue * scaleFactor

		if s.Type != models.SlotSales {
			// Fixed setup/cleanup crews carry no revenue of their own, so
			// they are over budget by definition.
			crew := p.SetupCrew
			if s.Type == models.SlotCleanup {
				crew = p.CleanupCrew
			}
			if crew < 1 {
				crew = 1
			}
			s.StaffPlanned = crew
			s.BudgetCap = 0
			s.OverBudget = true
			s.BudgetGapAmount = float64(crew) * p.FrontUnitCost * quarters
			out[i] = s
			continue
		}

		if p.NormPerQuarter > 0 {
			s.StaffNorm = int(math.Ceil(s.ScaledRevenue / (p.NormPerQuarter * quarters)))
		}
		if capacity := p.CapacityRevenuePerQuarter(); capacity > 0 {
			s.StaffCapacity = int(math.Ceil(s.ScaledRevenue / (capacity * quarters)))
		}

		kitchenCost := float64(s.KitchenStaff) * p.KitchenUnitCost * quarters
		budget := cfg.LaborCostCeiling*s.ScaledRevenue - kitchenCost
		if budget < 0 {
			budget = 0
		}
		if p.FrontUnitCost > 0 {
			s.BudgetCap = int(math.Floor(budget / (p.FrontUnitCost * quarters)))
		}

		needed := s.StaffNorm
		if s.StaffCapacity > needed {
			needed = s.StaffCapacity
		}
		planned := needed
		if s.BudgetCap < planned {
			planned = s.BudgetCap
		}
		if planned < 1 {
			// The store is never left unstaffed while open.
			planned = 1
		}
		s.StaffPlanned = planned
		s.OverBudget = planned > s.BudgetCap
		if s.OverBudget {
			s.BudgetGapAmount = float64(planned-s.BudgetCap) * p.FrontUnitCost * quarters
		}
		out[i] = s
	}
	return out
}
