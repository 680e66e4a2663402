package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefreshToken backs an admin session. Only the sha256 hash of the token is
// stored; rotation marks the old document revoked and links its replacement.
type RefreshToken struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ProfileID       primitive.ObjectID  `bson:"profile_id" json:"profileId"`
	TokenHash       string              `bson:"token_hash" json:"-"`
	ExpiresAt       time.Time           `bson:"expires_at" json:"expiresAt"`
	Revoked         bool                `bson:"revoked" json:"revoked"`
	CreatedAt       time.Time           `bson:"created_at" json:"createdAt"`
	ReplacedByToken *primitive.ObjectID `bson:"replaced_by_token,omitempty" json:"replacedByToken,omitempty"`
}
