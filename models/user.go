package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account record, keyed by email. Accounts are upserted on
// first sign-in and mutated only by admin actions afterwards.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      string             `bson:"role" json:"role"`
	IsPremium bool               `bson:"isPremium" json:"isPremium"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
	LastSeen  int64              `bson:"lastSeen" json:"lastSeen"`
}
