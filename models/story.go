package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SuccessStory is an immutable record of a matched couple, read back
// newest first.
type SuccessStory struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SelfBiodataID    int64              `bson:"selfBiodataId" json:"selfBiodataId"`
	PartnerBiodataID int64              `bson:"partnerBiodataId" json:"partnerBiodataId"`
	CoupleImage      string             `bson:"coupleImage,omitempty" json:"coupleImage,omitempty"`
	MarriageDate     string             `bson:"marriageDate,omitempty" json:"marriageDate,omitempty"`
	Review           string             `bson:"review" json:"review"`
	CreatedAt        int64              `bson:"createdAt" json:"createdAt"`
}
