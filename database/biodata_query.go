package database

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

// BiodataQuery is the parsed form of the public biodata listing
// parameters. Zero values impose no constraint.
type BiodataQuery struct {
	Gender            string
	PermanentDivision string
	PresentDivision   string
	MaritalStatus     string
	MinAge            *int
	MaxAge            *int
	Search            string

	SortDesc bool
	Page     int64 // 1-based
	Limit    int64 // <= 0 disables pagination
}

// Filter builds the Mongo filter document. All clauses are ANDed; the
// free-text clause ORs over name, occupation and permanentDivision.
func (q BiodataQuery) Filter() bson.M {
	filter := bson.M{}

	if q.Gender != "" {
		filter["biodataType"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(q.Gender) + "$",
			Options: "i",
		}
	}
	if q.PermanentDivision != "" {
		filter["permanentDivision"] = q.PermanentDivision
	}
	if q.PresentDivision != "" {
		filter["presentDivision"] = q.PresentDivision
	}
	if q.MaritalStatus != "" {
		filter["maritalStatus"] = q.MaritalStatus
	}

	if q.MinAge != nil || q.MaxAge != nil {
		age := bson.M{}
		if q.MinAge != nil {
			age["$gte"] = *q.MinAge
		}
		if q.MaxAge != nil {
			age["$lte"] = *q.MaxAge
		}
		filter["age"] = age
	}

	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"occupation": re},
			bson.M{"permanentDivision": re},
		}
	}

	return filter
}

// FindOptions builds sort and pagination options. The secondary sort on
// biodataId keeps records with equal ages in creation order for either
// sort direction.
func (q BiodataQuery) FindOptions() *options.FindOptions {
	dir := 1
	if q.SortDesc {
		dir = -1
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "age", Value: dir},
		{Key: "biodataId", Value: 1},
	})

	if q.Limit > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip((page - 1) * q.Limit).SetLimit(q.Limit)
	}

	return opts
}

// QueryBiodatas runs the filter and returns one page of profiles plus
// the total matching count. The total always reflects the full match
// set, not the page.
func (s *Store) QueryBiodatas(ctx context.Context, q BiodataQuery) ([]models.Biodata, int64, error) {
	filter := q.Filter()

	total, err := s.Biodatas.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := s.Biodatas.Find(ctx, filter, q.FindOptions())
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	biodatas := []models.Biodata{}
	if err := cursor.All(ctx, &biodatas); err != nil {
		return nil, 0, err
	}

	return biodatas, total, nil
}
