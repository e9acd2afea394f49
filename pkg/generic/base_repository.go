package generic

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document. Callers map it
// to their own not-found error at the service boundary.
var ErrNotFound = errors.New("document not found")

// BaseRepository Interface
type BaseRepository[T Entity] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (T, error)
	FindOne(ctx context.Context, filter bson.M) (T, error)
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Replace(ctx context.Context, entity T) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoBaseRepository Implementation
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

// Create inserts the entity with a fresh id and timestamps.
func (r *MongoBaseRepository[T]) Create(ctx context.Context, entity T) error {
	entity.SetID(primitive.NewObjectID())
	entity.Touch(time.Now())
	_, err := r.Collection.InsertOne(ctx, entity)
	return err
}

func (r *MongoBaseRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *MongoBaseRepository[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entity, ErrNotFound
		}
		return entity, err
	}
	return entity, nil
}

func (r *MongoBaseRepository[T]) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *MongoBaseRepository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.Collection.CountDocuments(ctx, filter)
}

// Replace writes the full entity back, refreshing UpdatedAt.
func (r *MongoBaseRepository[T]) Replace(ctx context.Context, entity T) error {
	entity.Touch(time.Now())
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": entity.GetID()}, entity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBaseRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindPage runs Find with skip/limit/sort derived from a normalized page
// request plus a matching Count, so list endpoints get data and total in
// one call.
func (r *MongoBaseRepository[T]) FindPage(ctx context.Context, filter bson.M, page, pageSize int, sort bson.D) ([]T, int64, error) {
	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	results, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
