package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"kacchi-backend/internal/models"
)

// SeedDeliverySchedule inserts the default weekly delivery day (Friday) when
// the collection is empty. Admins can toggle days later.
func SeedDeliverySchedule(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := db.Collection("delivery_schedule").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	days := make([]interface{}, 0, 7)
	for day := 0; day < 7; day++ {
		days = append(days, models.DeliveryDay{
			DayOfWeek: day,
			IsEnabled: day == int(time.Friday),
		})
	}

	log.Println("SeedDeliverySchedule: inserting default schedule (Friday enabled)")
	_, err = db.Collection("delivery_schedule").InsertMany(ctx, days)
	return err
}

// SeedPackages inserts the three launch packages when the collection is
// empty. Prices match the launch offer and are editable from the admin
// price console afterwards.
func SeedPackages(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := db.Collection("packages").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	packages := []interface{}{
		models.Package{
			Name:        "৪ জনের প্যাকেজ",
			BasePersons: 4,
			Price:       3200,
			DeliveryFee: 0,
			CreatedAt:   now,
		},
		models.Package{
			Name:        "২০ জনের প্যাকেজ",
			BasePersons: 20,
			Price:       15500,
			DeliveryFee: 0,
			BonusSalad:  true,
			Popular:     true,
			CreatedAt:   now,
		},
		models.Package{
			Name:        "৫০ জনের প্যাকেজ",
			BasePersons: 50,
			Price:       37500,
			DeliveryFee: 0,
			BonusSalad:  true,
			BonusFirni:  true,
			CreatedAt:   now,
		},
	}

	log.Println("SeedPackages: inserting launch packages")
	_, err = db.Collection("packages").InsertMany(ctx, packages)
	return err
}
