// File: database/repository/profile/profile_mongo.go
package profileRepo

import (
	"fmt"

	"staffplan/config"
	"staffplan/database"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	profileCollection = "revenue_profiles"
	revenueCollection = "year_revenues"
)

// mongoProfileRepo implements ProfileRepository backed by MongoDB.
type mongoProfileRepo struct {
	profiles *mongo.Collection
	revenues *mongo.Collection
}

// NewMongoProfileRepo creates a ProfileRepository using the global Mongo client.
func NewMongoProfileRepo() ProfileRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	repo := &mongoProfileRepo{
		profiles: db.Collection(profileCollection),
		revenues: db.Collection(revenueCollection),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
