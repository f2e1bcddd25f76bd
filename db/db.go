package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database

	eventsCollection   *mongo.Collection
	bookingsCollection *mongo.Collection

	connectOnce sync.Once
	connectErr  error
)

// Connect establishes the shared MongoDB client on first use. Concurrent
// callers block on the same initialization; after that every caller reuses
// the pooled client for the process lifetime.
func Connect() error {
	connectOnce.Do(func() {
		uri := os.Getenv("MONGODB_URI")
		if uri == "" {
			connectErr = fmt.Errorf("MONGODB_URI environment variable is not set")
			return
		}

		dbName := os.Getenv("MONGO_DB")
		if dbName == "" {
			dbName = "eventdb"
		}

		opts := options.Client().
			ApplyURI(uri).
			SetServerSelectionTimeout(10 * time.Second).
			SetSocketTimeout(45 * time.Second).
			SetMaxPoolSize(10)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, opts)
		if err != nil {
			connectErr = fmt.Errorf("failed to connect to MongoDB: %w", err)
			return
		}

		client = c
		database = c.Database(dbName)
		eventsCollection = database.Collection("events")
		bookingsCollection = database.Collection("bookings")

		if err := ensureIndexes(ctx); err != nil {
			log.Printf("index creation failed: %v", err)
		}
	})
	return connectErr
}

// ensureIndexes creates the unique slug index on events and the eventId
// index on bookings. Slug uniqueness is enforced here, at the storage
// layer, not with application-level locking.
func ensureIndexes(ctx context.Context) error {
	_, err := eventsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetSparse(true),
	})
	if err != nil {
		return err
	}

	_, err = bookingsCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "eventId", Value: 1}},
	})
	return err
}

// Events returns the events collection, connecting on first use.
func Events() (*mongo.Collection, error) {
	if err := Connect(); err != nil {
		return nil, err
	}
	return eventsCollection, nil
}

// Bookings returns the bookings collection, connecting on first use.
func Bookings() (*mongo.Collection, error) {
	if err := Connect(); err != nil {
		return nil, err
	}
	return bookingsCollection, nil
}

// Disconnect closes the shared client. Called on server shutdown.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
