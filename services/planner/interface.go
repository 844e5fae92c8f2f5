package planner

import (
	"context"

	"staffplan/models"
)

// PlannerService turns the historical revenue profile into staffing plans.
// Every run is stateless: identical parameters produce identical output.
type PlannerService interface {
	// MonthPlan computes the seven weekday plans of one month plus the
	// weighted month totals.
	MonthPlan(ctx context.Context, params models.PlanParams) (*models.MonthReport, error)

	// YearPlan runs all twelve months and accumulates their totals.
	YearPlan(ctx context.Context, params models.PlanParams) (*models.YearReport, error)

	// CompareScenario runs the year twice, with and without the requested
	// opening-time shifts, and reports the deltas.
	CompareScenario(ctx context.Context, params models.PlanParams) (*models.ScenarioReport, error)
}
