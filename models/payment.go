package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment records a completed contact-unlock charge. Amount is in the
// smallest currency unit, matching what the payment provider reports.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email"`
	BiodataID     int64              `bson:"biodataId" json:"biodataId"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        int64              `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`
	CreatedAt     int64              `bson:"createdAt" json:"createdAt"`
}
