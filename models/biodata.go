package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Biodata is a matrimonial profile. BiodataID is assigned once by the
// sequence allocator and never reused; the Mongo _id stays internal.
type Biodata struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BiodataID             int64              `bson:"biodataId" json:"biodataId"`
	OwnerEmail            string             `bson:"ownerEmail" json:"ownerEmail"`
	BiodataType           string             `bson:"biodataType" json:"biodataType"` // Male, Female
	Name                  string             `bson:"name" json:"name"`
	ProfileImage          string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	DateOfBirth           string             `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Age                   int                `bson:"age" json:"age"`
	Height                string             `bson:"height,omitempty" json:"height,omitempty"`
	Weight                string             `bson:"weight,omitempty" json:"weight,omitempty"`
	Occupation            string             `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Race                  string             `bson:"race,omitempty" json:"race,omitempty"`
	FathersName           string             `bson:"fathersName,omitempty" json:"fathersName,omitempty"`
	MothersName           string             `bson:"mothersName,omitempty" json:"mothersName,omitempty"`
	PermanentDivision     string             `bson:"permanentDivision,omitempty" json:"permanentDivision,omitempty"`
	PresentDivision       string             `bson:"presentDivision,omitempty" json:"presentDivision,omitempty"`
	MaritalStatus         string             `bson:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	ExpectedPartnerAge    string             `bson:"expectedPartnerAge,omitempty" json:"expectedPartnerAge,omitempty"`
	ExpectedPartnerHeight string             `bson:"expectedPartnerHeight,omitempty" json:"expectedPartnerHeight,omitempty"`
	ContactEmail          string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	MobileNumber          string             `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
	IsPremium             bool               `bson:"isPremium" json:"isPremium"`
	CreatedAt             int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt             int64              `bson:"updatedAt" json:"updatedAt"`
}
