package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MonirMohammed1995/matrimony-management-server/models"
)

// IDAllocator hands out unique increasing integer ids for a named
// sequence. Two concurrent callers never observe the same value.
type IDAllocator interface {
	NextID(ctx context.Context, sequence string) (int64, error)
}

// NextID advances the named counter with a single atomic $inc and
// returns the new value. The counter document is upserted on first
// use, so the first allocation returns 1. Scanning for the current
// maximum and adding one is not an option here: two concurrent
// creations would read the same maximum and collide.
func (s *Store) NextID(ctx context.Context, sequence string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := s.Counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("advance sequence %q: %w", sequence, err)
	}

	return counter.Value, nil
}
