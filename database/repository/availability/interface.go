// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"homely/database"
	"homely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository persists per-date slot records for services.
type AvailabilityRepository interface {
	UpsertDate(ctx context.Context, record models.DateAvailability) error
	GetByDate(ctx context.Context, serviceID, date string) (*models.DateAvailability, error)
	GetRange(ctx context.Context, serviceID, fromDate, toDate string) ([]models.DateAvailability, error)
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB-backed AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("homely")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}
