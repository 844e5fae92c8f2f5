package planner

import (
	"fmt"

	"staffplan/models"
)

// ValidationError reports a rejected request parameter. Handlers map it to a
// 400 response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateParams checks the request parameters after defaults were applied.
func ValidateParams(p models.PlanParams) error {
	if p.Month < 1 || p.Month > 12 {
		return &ValidationError{Field: "month", Reason: fmt.Sprintf("must be 1-12, got %d", p.Month)}
	}
	if p.Granularity != 15 && p.Granularity != 30 {
		return &ValidationError{Field: "granularity", Reason: fmt.Sprintf("must be 15 or 30 minutes, got %d", p.Granularity)}
	}
	if p.GrowthFactor <= 0 {
		return &ValidationError{Field: "growthFactor", Reason: fmt.Sprintf("must be positive, got %g", p.GrowthFactor)}
	}
	if p.BaselineYear < 2000 || p.BaselineYear > 2200 {
		return &ValidationError{Field: "baselineYear", Reason: fmt.Sprintf("implausible year %d", p.BaselineYear)}
	}
	if p.LeadMinutes < 0 {
		return &ValidationError{Field: "leadMinutes", Reason: fmt.Sprintf("must not be negative, got %d", p.LeadMinutes)}
	}
	if p.TrailMinutes < 0 {
		return &ValidationError{Field: "trailMinutes", Reason: fmt.Sprintf("must not be negative, got %d", p.TrailMinutes)}
	}
	if p.SetupCrew < 0 {
		return &ValidationError{Field: "setupCrew", Reason: fmt.Sprintf("must not be negative, got %d", p.SetupCrew)}
	}
	if p.CleanupCrew < 0 {
		return &ValidationError{Field: "cleanupCrew", Reason: fmt.Sprintf("must not be negative, got %d", p.CleanupCrew)}
	}
	for _, ts := range p.TimeShifts {
		if ts.Month < 1 || ts.Month > 12 {
			return &ValidationError{Field: "timeShifts", Reason: fmt.Sprintf("month must be 1-12, got %d", ts.Month)}
		}
		for _, wd := range ts.Weekdays {
			if wd < 1 || wd > 7 {
				return &ValidationError{Field: "timeShifts", Reason: fmt.Sprintf("weekday must be 1-7, got %d", wd)}
			}
		}
	}
	return nil
}
