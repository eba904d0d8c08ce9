package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"homely/config"
	"homely/database"
	"homely/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the local database with a demo catalog and two weeks of availability.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database("homely")
	serviceColl := db.Collection("services")
	availabilityColl := db.Collection("availability")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing data.
	if _, err := serviceColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear services collection: %v", err)
	}
	if _, err := availabilityColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear availability collection: %v", err)
	}

	services := []models.Service{
		{
			ID: "svc-cleaning", Name: "Home Cleaning", Category: models.CategoryCleaning,
			Price: 5000, Currency: "NGN", Active: true,
			RoomPrices: map[models.RoomType]float64{
				models.RoomBedroom:  2000,
				models.RoomBathroom: 1500,
				models.RoomKitchen:  2500,
			},
			Options: []models.ServiceOption{
				{ID: "clean-premium", Name: "Premium crew", Price: 8000},
			},
		},
		{
			ID: "svc-laundry", Name: "Laundry & Dry Cleaning", Category: models.CategoryLaundry,
			Price: 1500, Currency: "NGN", Active: true,
		},
		{
			ID: "svc-cooking", Name: "Meal Prep", Category: models.CategoryCooking,
			Price: 800, Currency: "NGN", Active: true,
		},
		{
			ID: "svc-pest", Name: "Pest Control", Category: models.CategoryPestControl,
			Price: 5000, Currency: "NGN", Active: true,
		},
	}

	docs := make([]interface{}, len(services))
	for i, svc := range services {
		docs[i] = svc
	}
	if _, err := serviceColl.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert services: %v", err)
	}

	// Two weeks of availability per service, slots at 9:00, 12:00 and 15:00.
	today := time.Now()
	var records []interface{}
	for _, svc := range services {
		for i := 1; i <= 14; i++ {
			date := today.AddDate(0, 0, i).Format("2006-01-02")
			slots := make([]models.SlotAvailability, 0, 3)
			for j, start := range []int{540, 720, 900} {
				max := 5
				available := rand.Intn(max + 1)
				slots = append(slots, models.SlotAvailability{
					SlotID:            fmt.Sprintf("%s-%s-%d", svc.ID, date, j),
					Start:             start,
					End:               start + 180,
					MaxBookings:       max,
					AvailableBookings: available,
				})
			}
			hasSlots := false
			for _, slot := range slots {
				if slot.AvailableBookings > 0 {
					hasSlots = true
					break
				}
			}
			records = append(records, models.DateAvailability{
				ServiceID: svc.ID,
				Date:      date,
				HasSlots:  hasSlots,
				Slots:     slots,
			})
		}
	}
	if _, err := availabilityColl.InsertMany(ctx, records); err != nil {
		log.Fatalf("Failed to insert availability records: %v", err)
	}

	log.Printf("Seeded %d services and %d availability records", len(services), len(records))
}
