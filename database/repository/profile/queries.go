// File: database/repository/profile/queries.go
package profileRepo

import (
	"context"
	"fmt"
	"time"

	"staffplan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// revenueField selects the profile column to read. The robust column holds the
// same averages with outlier days trimmed.
func revenueField(robust bool) string {
	if robust {
		return "robustRevenue"
	}
	return "avgRevenue"
}

func dayRevenueField(robust bool) string {
	if robust {
		return "robustDayRevenue"
	}
	return "avgDayRevenue"
}

func (r *mongoProfileRepo) MonthProfile(ctx context.Context, month int, robust bool) ([]models.ProfileSlice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Project the selected revenue columns onto the fixed row shape so the
	// caller never sees which column was read.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"month": month}}},
		{{Key: "$project", Value: bson.M{
			"weekday":       1,
			"hour":          1,
			"quarter":       1,
			"shareOfDay":    1,
			"avgRevenue":    "$" + revenueField(robust),
			"avgDayRevenue": "$" + dayRevenueField(robust),
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "weekday", Value: 1},
			{Key: "hour", Value: 1},
			{Key: "quarter", Value: 1},
		}}},
	}

	cursor, err := r.profiles.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month profile: %w", err)
	}
	defer cursor.Close(ctx)

	var slices []models.ProfileSlice
	if err := cursor.All(ctx, &slices); err != nil {
		return nil, fmt.Errorf("error decoding month profile: %w", err)
	}
	return slices, nil
}

func (r *mongoProfileRepo) YearDayAverages(ctx context.Context, robust bool) (map[int]map[int]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"month": "$month", "weekday": "$weekday"},
			"avgDayRevenue": bson.M{"$first": "$" + dayRevenueField(robust)},
		}}},
	}

	cursor, err := r.profiles.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate day averages: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Month   int `bson:"month"`
			Weekday int `bson:"weekday"`
		} `bson:"_id"`
		AvgDayRevenue float64 `bson:"avgDayRevenue"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding day averages: %w", err)
	}

	out := make(map[int]map[int]float64)
	for _, row := range rows {
		if out[row.ID.Month] == nil {
			out[row.ID.Month] = make(map[int]float64)
		}
		out[row.ID.Month][row.ID.Weekday] = row.AvgDayRevenue
	}
	return out, nil
}

func (r *mongoProfileRepo) YearRevenue(ctx context.Context, year int) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.YearRevenue
	err := r.revenues.FindOne(ctx, bson.M{"year": year}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch year revenue for %d: %w", year, err)
	}
	return rec.Revenue, nil
}
