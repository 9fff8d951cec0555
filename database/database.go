package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MonirMohammed1995/matrimony-management-server/config"
)

// Store owns the Mongo client and the collection handles the handlers
// work against. It is constructed once in main and injected everywhere
// a collection is needed.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database

	Users           *mongo.Collection
	Biodatas        *mongo.Collection
	Counters        *mongo.Collection
	Payments        *mongo.Collection
	ContactRequests *mongo.Collection
	PremiumRequests *mongo.Collection
	Favourites      *mongo.Collection
	SuccessStories  *mongo.Collection
}

// Connect dials Mongo, pings it and binds the collection handles.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)
	s := &Store{
		Client:          client,
		DB:              db,
		Users:           db.Collection("users"),
		Biodatas:        db.Collection("biodatas"),
		Counters:        db.Collection("counters"),
		Payments:        db.Collection("payments"),
		ContactRequests: db.Collection("contact_requests"),
		PremiumRequests: db.Collection("premium_requests"),
		Favourites:      db.Collection("favourites"),
		SuccessStories:  db.Collection("success_stories"),
	}

	log.Println("Connected to MongoDB successfully")
	return s, nil
}

// Disconnect releases the client. Safe to call on a nil store.
func (s *Store) Disconnect(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return nil
	}

	if err := s.Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
