package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	createdAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	}

	log.Println("EnsureOrderIndexes: creating created_at_desc index")
	if _, err := indexes.CreateOne(ctx, createdAtIndex); err != nil {
		log.Println("EnsureOrderIndexes: created_at index error:", err)
		return err
	}

	phoneIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetName("phone_index"),
	}

	if _, err := indexes.CreateOne(ctx, phoneIndex); err != nil {
		log.Println("EnsureOrderIndexes: phone index error:", err)
		return err
	}
	return nil
}

func EnsurePackageIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("packages").Indexes()

	basePersonsIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "base_persons", Value: 1}},
		Options: options.Index().
			SetName("base_persons_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"base_persons": bson.M{"$gt": 0},
			}),
	}

	log.Println("EnsurePackageIndexes: creating base_persons_unique index")
	if _, err := indexes.CreateOne(ctx, basePersonsIndex); err != nil {
		log.Println("EnsurePackageIndexes: base_persons index error:", err)
		return err
	}
	return nil
}

func EnsureProfileIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("profiles").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureProfileIndexes: creating email_unique index")
	if _, err := indexes.CreateOne(ctx, emailIndex); err != nil {
		log.Println("EnsureProfileIndexes: email index error:", err)
		return err
	}
	return nil
}
