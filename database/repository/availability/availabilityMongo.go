// File: database/repository/availability/availabilityMongo.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"homely/models"
)

func (r *mongoAvailabilityRepo) UpsertDate(ctx context.Context, record models.DateAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"serviceId": record.ServiceID, "date": record.Date}
	update := bson.M{"$set": record}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoAvailabilityRepo) GetByDate(ctx context.Context, serviceID, date string) (*models.DateAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.DateAvailability
	err := r.coll.FindOne(ctx, bson.M{"serviceId": serviceID, "date": date}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *mongoAvailabilityRepo) GetRange(ctx context.Context, serviceID, fromDate, toDate string) ([]models.DateAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"serviceId": serviceID,
		"date":      bson.M{"$gte": fromDate, "$lte": toDate},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.DateAvailability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mongoAvailabilityRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
