package handlers

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

type packageUpdateInput struct {
	Price        *float64
	DeliveryFee  *float64
	BonusFirni   *bool
	BonusSalad   *bool
	BonusBorhani *bool
}

// resolvePackageUpdate turns a price-console submission into a $set
// document. Numeric fields are written only when present; the three bonus
// flags are always written, absent ones as false, so a cleared checkbox
// actually clears the stored flag.
func resolvePackageUpdate(input packageUpdateInput) (bson.M, error) {
	updateSet := bson.M{}

	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, fmt.Errorf("price must be greater than 0")
		}
		updateSet["price"] = *input.Price
	}
	if input.DeliveryFee != nil {
		if *input.DeliveryFee < 0 {
			return nil, fmt.Errorf("deliveryFee must be zero or greater")
		}
		updateSet["delivery_fee"] = *input.DeliveryFee
	}

	updateSet["bonus_firni"] = boolValue(input.BonusFirni)
	updateSet["bonus_salad"] = boolValue(input.BonusSalad)
	updateSet["bonus_borhani"] = boolValue(input.BonusBorhani)

	return updateSet, nil
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
