package models

import "time"

// TimeShift moves the opening and/or closing time of selected weekdays in one
// month by a number of minutes. Used in scenario mode only.
type TimeShift struct {
	Month         int   `json:"month" form:"month"`
	Weekdays      []int `json:"weekdays" form:"weekdays"` // ISO weekdays the shift applies to; empty = all
	OpenDeltaMin  int   `json:"openDeltaMin" form:"openDeltaMin"`
	CloseDeltaMin int   `json:"closeDeltaMin" form:"closeDeltaMin"`
}

// AppliesTo reports whether the shift covers the given weekday.
func (t TimeShift) AppliesTo(weekday int) bool {
	if len(t.Weekdays) == 0 {
		return true
	}
	for _, wd := range t.Weekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// PlanParams carries every request parameter of one planning run. Immutable
// within a run; zero values are replaced by defaults before validation.
type PlanParams struct {
	Month        int     `json:"month" form:"month"`
	BaselineYear int     `json:"baselineYear" form:"baselineYear"` // year whose actual revenue anchors the projection
	GrowthFactor float64 `json:"growthFactor" form:"growthFactor"`
	Granularity  int     `json:"granularity" form:"granularity"` // minutes per sales slot, 15 or 30

	StaffingDetail bool `json:"staffingDetail" form:"staffingDetail"` // include staffing fields per slot
	WithMeta       bool `json:"withMeta" form:"withMeta"`             // include the projection meta block
	Robust         bool `json:"robust" form:"robust"`                 // read the outlier-trimmed profile column

	NormPerQuarter       float64 `json:"normPerQuarter" form:"normPerQuarter"` // revenue one front staff handles per quarter
	FrontUnitCost        float64 `json:"frontUnitCost" form:"frontUnitCost"`   // cost per front staff per quarter
	KitchenUnitCost      float64 `json:"kitchenUnitCost" form:"kitchenUnitCost"`
	ItemsPerStaffQuarter float64 `json:"itemsPerStaffQuarter" form:"itemsPerStaffQuarter"`
	AvgItemPrice         float64 `json:"avgItemPrice" form:"avgItemPrice"`

	KitchenStartHour        int `json:"kitchenStartHour" form:"kitchenStartHour"`
	KitchenDayHeadcount     int `json:"kitchenDayHeadcount" form:"kitchenDayHeadcount"`
	KitchenEveningHeadcount int `json:"kitchenEveningHeadcount" form:"kitchenEveningHeadcount"`

	LeadMinutes  int `json:"leadMinutes" form:"leadMinutes"`   // setup window before opening
	TrailMinutes int `json:"trailMinutes" form:"trailMinutes"` // cleanup window after closing
	SetupCrew    int `json:"setupCrew" form:"setupCrew"`
	CleanupCrew  int `json:"cleanupCrew" form:"cleanupCrew"`

	TimeShifts []TimeShift `json:"timeShifts,omitempty" form:"-"` // scenario mode only
}

// ApplyDefaults fills unset parameters with the documented defaults.
func (p *PlanParams) ApplyDefaults() {
	if p.BaselineYear == 0 {
		p.BaselineYear = time.Now().Year() - 1
	}
	if p.GrowthFactor == 0 {
		p.GrowthFactor = 1.03
	}
	if p.Granularity == 0 {
		p.Granularity = 15
	}
	if p.NormPerQuarter == 0 {
		p.NormPerQuarter = 100
	}
	if p.FrontUnitCost == 0 {
		p.FrontUnitCost = 3.75
	}
	if p.KitchenUnitCost == 0 {
		p.KitchenUnitCost = 5
	}
	if p.ItemsPerStaffQuarter == 0 {
		p.ItemsPerStaffQuarter = 40
	}
	if p.AvgItemPrice == 0 {
		p.AvgItemPrice = 3.50
	}
	if p.KitchenStartHour == 0 {
		p.KitchenStartHour = 11
	}
	if p.KitchenDayHeadcount == 0 {
		p.KitchenDayHeadcount = 1
	}
	if p.KitchenEveningHeadcount == 0 {
		p.KitchenEveningHeadcount = 1
	}
	if p.LeadMinutes == 0 {
		p.LeadMinutes = 30
	}
	if p.TrailMinutes == 0 {
		p.TrailMinutes = 30
	}
	if p.SetupCrew == 0 {
		p.SetupCrew = 2
	}
	if p.CleanupCrew == 0 {
		p.CleanupCrew = 2
	}
}

// CapacityRevenuePerQuarter is the revenue one front staff can physically serve
// per quarter: serving rate times average item price.
func (p PlanParams) CapacityRevenuePerQuarter() float64 {
	return p.ItemsPerStaffQuarter * p.AvgItemPrice
}

// ShiftFor returns the accumulated open/close deltas applying to (month, weekday).
func (p PlanParams) ShiftFor(month, weekday int) (openDelta, closeDelta int) {
	for _, ts := range p.TimeShifts {
		if ts.Month == month && ts.AppliesTo(weekday) {
			openDelta += ts.OpenDeltaMin
			closeDelta += ts.CloseDeltaMin
		}
	}
	return openDelta, closeDelta
}
