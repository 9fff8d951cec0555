package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// ContactRequest links a paying user to the biodata whose contact
// details they unlocked. Status moves pending -> approved exactly once.
type ContactRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	BiodataID int64              `bson:"biodataId" json:"biodataId"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

// PremiumRequest asks an admin to mark a biodata as premium.
type PremiumRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string             `bson:"email" json:"email"`
	BiodataID  int64              `bson:"biodataId" json:"biodataId"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  int64              `bson:"createdAt" json:"createdAt"`
	ApprovedAt int64              `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
}
