package models

// ShiftRole classifies a packed work shift.
type ShiftRole string

const (
	ShiftFront   ShiftRole = "front"
	ShiftStandby ShiftRole = "standby"
)

// Shift is a contiguous block of work for a number of staff, derived from the
// per-quarter demand curve of one day.
type Shift struct {
	Role      ShiftRole `json:"role"`
	Start     int       `json:"start"` // minutes from midnight
	End       int       `json:"end"`   // minutes from midnight, exclusive
	Headcount int       `json:"headcount"`
}

// DurationQuarters returns the shift length in quarter-hours.
func (s Shift) DurationQuarters() int {
	return (s.End - s.Start) / 15
}
