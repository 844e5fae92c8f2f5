package models

// SlotType classifies a planned time block.
type SlotType string

const (
	SlotSetup   SlotType = "setup"
	SlotSales   SlotType = "sales"
	SlotCleanup SlotType = "cleanup"
)

// Slot is a fixed time block of one planned day: an estimated revenue plus the
// staffing numbers derived from it. Slots are computed per request and never
// persisted.
type Slot struct {
	Label       string   `json:"label"` // e.g. "12:00-12:15"
	Weekday     int      `json:"weekday"`
	Type        SlotType `json:"type"`
	Start       int      `json:"start"`       // minutes from midnight
	DurationMin int      `json:"durationMin"` // 15 or 30

	ProjectedRevenue float64 `json:"projectedRevenue"` // unscaled, from the historical profile
	ScaledRevenue    float64 `json:"scaledRevenue"`    // after the growth scale factor
	ShareUsed        float64 `json:"shareUsed"`        // normalized share of the day's revenue

	UnitCostFront   float64 `json:"unitCostFront,omitempty"`   // per staff per quarter
	UnitCostKitchen float64 `json:"unitCostKitchen,omitempty"` // per staff per quarter
	KitchenStaff    int     `json:"kitchenStaff,omitempty"`    // concurrent kitchen headcount in this slot

	StaffNorm       int     `json:"staffNorm,omitempty"`     // headcount by revenue norm
	StaffCapacity   int     `json:"staffCapacity,omitempty"` // headcount by serving capacity
	BudgetCap       int     `json:"budgetCap,omitempty"`     // max affordable headcount under the cost ceiling
	StaffPlanned    int     `json:"staffPlanned,omitempty"`
	OverBudget      bool    `json:"overBudget,omitempty"`
	BudgetGapAmount float64 `json:"budgetGapAmount,omitempty"` // cost of headcount exceeding the cap
}

// Quarters returns the number of quarter-hours the slot spans.
func (s Slot) Quarters() int {
	q := s.DurationMin / 15
	if q < 1 {
		q = 1
	}
	return q
}

// End returns the slot end in minutes from midnight.
func (s Slot) End() int {
	return s.Start + s.DurationMin
}
