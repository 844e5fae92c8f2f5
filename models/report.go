package models

// DayPlan is the full planning result of one weekday within a month.
type DayPlan struct {
	Weekday     int     `json:"weekday"`
	WeekdayName string  `json:"weekdayName"`
	Closed      bool    `json:"closed"`
	OpenTime    string  `json:"openTime,omitempty"`  // "HH:MM", after scenario deltas
	CloseTime   string  `json:"closeTime,omitempty"` // "HH:MM", after scenario deltas
	Slots       []Slot  `json:"slots"`
	Shifts      []Shift `json:"shifts,omitempty"`
	Revenue     float64 `json:"revenue"` // scaled sales revenue of one such day
	Cost        float64 `json:"cost"`    // front + kitchen labor cost of one such day
}

// PlanMeta reports the projection figures behind a plan.
type PlanMeta struct {
	RunID            string  `json:"runId"`
	ScaleFactor      float64 `json:"scaleFactor"`
	PriorYearRevenue float64 `json:"priorYearRevenue"`
	TargetRevenue    float64 `json:"targetRevenue"`
	FrontUnitCost    float64 `json:"frontUnitCost"`
	KitchenUnitCost  float64 `json:"kitchenUnitCost"`
}

// MonthReport aggregates the seven weekday plans of one month, weighted by how
// often each weekday occurs in the calendar month.
type MonthReport struct {
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	Days          []DayPlan `json:"days"` // always 7 entries, Monday first
	WeekdayCounts []int     `json:"weekdayCounts"`
	Revenue       float64   `json:"revenue"`
	Cost          float64   `json:"cost"`
	CostPercent   float64   `json:"costPercent"` // cost / revenue, 0 when revenue is 0
	Meta          *PlanMeta `json:"meta,omitempty"`
}

// YearReport accumulates month totals across a full year.
type YearReport struct {
	Year        int           `json:"year"`
	Months      []MonthReport `json:"months"`
	Revenue     float64       `json:"revenue"`
	Cost        float64       `json:"cost"`
	CostPercent float64       `json:"costPercent"`
	Meta        *PlanMeta     `json:"meta,omitempty"`
}

// MonthDelta is the baseline-vs-scenario difference for one month.
type MonthDelta struct {
	Month           int     `json:"month"`
	RevenueBase     float64 `json:"revenueBase"`
	RevenueScenario float64 `json:"revenueScenario"`
	RevenueDelta    float64 `json:"revenueDelta"`
	CostBase        float64 `json:"costBase"`
	CostScenario    float64 `json:"costScenario"`
	CostDelta       float64 `json:"costDelta"`
	PercentBase     float64 `json:"percentBase"`
	PercentScenario float64 `json:"percentScenario"`
	PercentDelta    float64 `json:"percentDelta"` // percentage points
}

// ScenarioReport compares a baseline year run against a run with time shifts.
type ScenarioReport struct {
	Year         int          `json:"year"`
	Months       []MonthDelta `json:"months"`
	RevenueDelta float64      `json:"revenueDelta"`
	CostDelta    float64      `json:"costDelta"`
	PercentDelta float64      `json:"percentDelta"`
	Meta         *PlanMeta    `json:"meta,omitempty"`
}
