package models

// Counter stores the last issued value for a named monotonic sequence.
// It is only ever advanced through an atomic $inc, so each value is
// handed to exactly one caller.
type Counter struct {
	Name  string `bson:"_id" json:"name"`
	Value int64  `bson:"value" json:"value"`
}

// SequenceBiodataID names the sequence backing biodata ids.
const SequenceBiodataID = "biodataId"
