package server

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the repositories rely on.
// CreateMany is idempotent when the definitions have not changed.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"services": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"portfolios": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"technology_categories": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}}, Options: unique},
		},
		"testimonials": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"cms_pages": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		"website_config": {
			{Keys: bson.D{{Key: "key", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("indexes for %s: %w", collection, err)
		}
	}
	return nil
}
