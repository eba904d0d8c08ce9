// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"homely/database"
	"homely/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository persists the bookable service catalog.
type CatalogRepository interface {
	Create(ctx context.Context, svc models.Service) (string, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.Service, error)
	GetByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error)
	Update(ctx context.Context, svc models.Service) error
	Delete(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a MongoDB-backed CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("homely")
	return &mongoCatalogRepo{
		coll: db.Collection("services"),
	}
}
