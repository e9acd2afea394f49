package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/pkg/generic"
)

// ErrSingletonExists is returned when a second website configuration
// document would be created.
var ErrSingletonExists = errors.New("website config already exists")

// ISettingsRepository guards the singleton website configuration document.
type ISettingsRepository interface {
	Get(ctx context.Context) (*model.WebsiteConfig, error)
	Insert(ctx context.Context, cfg *model.WebsiteConfig) error
	Replace(ctx context.Context, cfg *model.WebsiteConfig) error
}

// SettingsRepository implements the singleton guard: Insert checks for an
// existing document first, and the unique index on the key field is the
// final arbiter under concurrent creates.
type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) ISettingsRepository {
	return &SettingsRepository{collection: db.Collection("website_config")}
}

func (r *SettingsRepository) Get(ctx context.Context) (*model.WebsiteConfig, error) {
	var cfg model.WebsiteConfig
	err := r.collection.FindOne(ctx, bson.M{"key": model.WebsiteConfigKey}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, generic.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *SettingsRepository) Insert(ctx context.Context, cfg *model.WebsiteConfig) error {
	n, err := r.collection.CountDocuments(ctx, bson.M{"key": model.WebsiteConfigKey})
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrSingletonExists
	}
	cfg.Key = model.WebsiteConfigKey
	cfg.Touch(time.Now())
	res, err := r.collection.InsertOne(ctx, cfg)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSingletonExists
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cfg.ID = oid
	}
	return nil
}

func (r *SettingsRepository) Replace(ctx context.Context, cfg *model.WebsiteConfig) error {
	cfg.Touch(time.Now())
	_, err := r.collection.ReplaceOne(ctx, bson.M{"key": model.WebsiteConfigKey}, cfg)
	return err
}
