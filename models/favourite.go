package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Favourite links a user to a biodata they bookmarked. Created and
// deleted independently, never mutated.
type Favourite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	BiodataID int64              `bson:"biodataId" json:"biodataId"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
