package models

// ProfileSlice is one quarter-hour of the historical revenue profile for a month.
// Rows are averaged over past seasons and keyed by (weekday, hour, quarter).
type ProfileSlice struct {
	Weekday       int      `bson:"weekday" json:"weekday"`             // ISO weekday, 1 = Monday .. 7 = Sunday
	Hour          int      `bson:"hour" json:"hour"`                   // 0..23
	Quarter       int      `bson:"quarter" json:"quarter"`             // 1..4 within the hour
	AvgRevenue    float64  `bson:"avgRevenue" json:"avgRevenue"`       // average revenue in this quarter
	ShareOfDay    *float64 `bson:"shareOfDay" json:"shareOfDay"`       // fraction of the day's revenue, nil when coverage is missing
	AvgDayRevenue float64  `bson:"avgDayRevenue" json:"avgDayRevenue"` // average total revenue of this weekday
}

// YearRevenue is the recorded total actual revenue of one business year.
type YearRevenue struct {
	Year    int     `bson:"year" json:"year"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// OpeningHours is the fixed opening rule for one (month, weekday).
type OpeningHours struct {
	Closed         bool `json:"closed"`
	OpenHour       int  `json:"openHour"`
	CloseHour      int  `json:"closeHour"`
	CleanupEndHour int  `json:"cleanupEndHour"` // latest hour cleanup may run to
}
