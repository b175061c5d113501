package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names of the content store.
const (
	CollectionHome            = "home"
	CollectionDestinations    = "destinations"
	CollectionDayTours        = "day_tours"
	CollectionBlogs           = "blogs"
	CollectionContact         = "contact"
	CollectionTaxis           = "taxis"
	CollectionNotifications   = "notifications"
	CollectionAllowedSections = "allowed_sections"
	CollectionTourPrices      = "tour_prices"
)

func ConnectMongo(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, client.Database(database), nil
}

// EnsureIndexes creates the indexes the content store relies on. A tour name
// is unique within its tour type.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionTourPrices).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tourType", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("tour_type_name_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create %s index: %w", CollectionTourPrices, err)
	}
	return nil
}
