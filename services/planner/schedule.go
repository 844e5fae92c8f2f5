package planner

import "staffplan/models"

// OpeningHoursFor returns the fixed opening rule for one (month, weekday).
// The business runs a March-to-October season; November through February are
// closed entirely. Summer months keep the store open an hour longer, and
// cleanup may run one hour past closing.
func OpeningHoursFor(month, weekday int) models.OpeningHours {
	if month < 3 || month > 10 {
		return models.OpeningHours{Closed: true}
	}

	closeHour := 21
	if month >= 5 && month <= 8 {
		closeHour = 22
	}

	return models.OpeningHours{
		OpenHour:       12,
		CloseHour:      closeHour,
		CleanupEndHour: closeHour + 1,
	}
}
