package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DeliveryDay marks a weekday (time.Weekday numbering, Sunday=0) on which
// home delivery is offered. Orders may only be placed for enabled days.
type DeliveryDay struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DayOfWeek int                `bson:"day_of_week" json:"dayOfWeek"`
	IsEnabled bool               `bson:"is_enabled" json:"isEnabled"`
}
