package profileRepo

import (
	"context"

	"staffplan/models"
)

// ProfileRepository provides read-only access to the historical revenue
// profile. The planner never writes through this interface.
type ProfileRepository interface {
	// MonthProfile returns all quarter-hour profile rows of one month. When
	// robust is set the outlier-trimmed revenue column is read instead of the
	// plain average; the row shape is unchanged.
	MonthProfile(ctx context.Context, month int, robust bool) ([]models.ProfileSlice, error)

	// YearDayAverages returns, per month and ISO weekday, the historical
	// average day revenue. Used to anchor the growth projection.
	YearDayAverages(ctx context.Context, robust bool) (map[int]map[int]float64, error)

	// YearRevenue returns the recorded total actual revenue of one year.
	YearRevenue(ctx context.Context, year int) (float64, error)
}
