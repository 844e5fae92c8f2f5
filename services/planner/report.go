package planner

import "staffplan/models"

// dayTotals sums one day's scaled sales revenue and its labor cost (planned
// front staff plus kitchen crew, per quarter unit costs).
func dayTotals(slots []models.Slot) (revenue, cost float64) {
	for _, s := range slots {
		quarters := float64(s.Quarters())
		if s.Type == models.SlotSales {
			revenue += s.ScaledRevenue
		}
		cost += float64(s.StaffPlanned)*s.UnitCostFront*quarters +
			float64(s.KitchenStaff)*s.UnitCostKitchen*quarters
	}
	return revenue, cost
}

// costPercent guards the cost/revenue ratio against an empty month.
func costPercent(cost, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return cost / revenue
}

// BuildMonthReport weights the seven weekday plans by how often each weekday
// occurs in the calendar month. Days are summed in weekday order so repeated
// runs round identically.
func BuildMonthReport(year, month int, days []models.DayPlan) models.MonthReport {
	counts := WeekdayCounts(year, month)

	report := models.MonthReport{
		Month:         month,
		Year:          year,
		Days:          days,
		WeekdayCounts: counts[1:],
	}
	for i := range days {
		weekday := days[i].Weekday
		report.Revenue += days[i].Revenue * float64(counts[weekday])
		report.Cost += days[i].Cost * float64(counts[weekday])
	}
	report.CostPercent = costPercent(report.Cost, report.Revenue)
	return report
}

// BuildYearReport accumulates month reports in calendar order.
func BuildYearReport(year int, months []models.MonthReport) models.YearReport {
	report := models.YearReport{Year: year, Months: months}
	for i := range months {
		report.Revenue += months[i].Revenue
		report.Cost += months[i].Cost
	}
	report.CostPercent = costPercent(report.Cost, report.Revenue)
	return report
}

// BuildScenarioReport diffs a baseline year run against a scenario run with
// shifted opening times. Percent deltas are in percentage points.
func BuildScenarioReport(baseline, scenario models.YearReport) models.ScenarioReport {
	report := models.ScenarioReport{Year: baseline.Year}
	for i := range baseline.Months {
		base := baseline.Months[i]
		scen := scenario.Months[i]
		report.Months = append(report.Months, models.MonthDelta{
			Month:           base.Month,
			RevenueBase:     base.Revenue,
			RevenueScenario: scen.Revenue,
			RevenueDelta:    scen.Revenue - base.Revenue,
			CostBase:        base.Cost,
			CostScenario:    scen.Cost,
			CostDelta:       scen.Cost - base.Cost,
			PercentBase:     base.CostPercent,
			PercentScenario: scen.CostPercent,
			PercentDelta:    scen.CostPercent - base.CostPercent,
		})
	}
	report.RevenueDelta = scenario.Revenue - baseline.Revenue
	report.CostDelta = scenario.Cost - baseline.Cost
	report.PercentDelta = scenario.CostPercent - baseline.CostPercent
	return report
}
