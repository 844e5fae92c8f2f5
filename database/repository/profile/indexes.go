// FILE: database/repository/profile/indexes.go
package profileRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the profile collections.
func (r *mongoProfileRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profileIndexes := []mongo.IndexModel{
		// Primary query pattern: all rows of a month.
		{
			Keys:    bson.D{{Key: "month", Value: 1}},
			Options: options.Index().SetName("month_idx"),
		},
		// Full profile key, unique per quarter-hour.
		{
			Keys: bson.D{
				{Key: "month", Value: 1},
				{Key: "weekday", Value: 1},
				{Key: "hour", Value: 1},
				{Key: "quarter", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("month_weekday_hour_quarter_idx"),
		},
	}
	if _, err := r.profiles.Indexes().CreateMany(ctx, profileIndexes); err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}

	revenueIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "year", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("year_idx"),
		},
	}
	if _, err := r.revenues.Indexes().CreateMany(ctx, revenueIndexes); err != nil {
		return fmt.Errorf("failed to create year revenue indexes: %w", err)
	}
	return nil
}
