package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a pre-defined food bundle (4/20/50 persons) offered on the
// landing page. Prices are in taka.
type Package struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	BasePersons  int                `bson:"base_persons" json:"basePersons"`
	Price        float64            `bson:"price" json:"price"`
	DeliveryFee  float64            `bson:"delivery_fee" json:"deliveryFee"`
	BonusFirni   bool               `bson:"bonus_firni" json:"bonusFirni"`
	BonusSalad   bool               `bson:"bonus_salad" json:"bonusSalad"`
	BonusBorhani bool               `bson:"bonus_borhani" json:"bonusBorhani"`
	Popular      bool               `bson:"popular" json:"popular"`
	ImagePath    string             `bson:"image_path,omitempty" json:"imagePath,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`

	// Derived on every load, never stored.
	PricePerPerson float64  `bson:"-" json:"pricePerPerson"`
	Features       []string `bson:"-" json:"features"`
}
