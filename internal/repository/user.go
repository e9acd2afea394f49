package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/pkg/generic"
)

// IUserRepository defines user persistence.
type IUserRepository interface {
	generic.BaseRepository[*model.User]
	FindPage(ctx context.Context, filter bson.M, page, pageSize int, sort bson.D) ([]*model.User, int64, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByResetTokenHash(ctx context.Context, hash string) (*model.User, error)
	FindByVerificationTokenHash(ctx context.Context, hash string) (*model.User, error)
	IncrementLoginAttempts(ctx context.Context, id primitive.ObjectID) error
	RecordLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// UserRepository implements user persistence.
type UserRepository struct {
	*generic.MongoBaseRepository[*model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.User](db.Collection("users")),
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByResetTokenHash(ctx context.Context, hash string) (*model.User, error) {
	return r.FindOne(ctx, bson.M{"metadata.resetTokenHash": hash})
}

func (r *UserRepository) FindByVerificationTokenHash(ctx context.Context, hash string) (*model.User, error) {
	return r.FindOne(ctx, bson.M{"metadata.verificationTokenHash": hash})
}

// IncrementLoginAttempts bumps the failure counter. Nothing reads it to
// enforce lockout; the field exists for a future lockout policy.
func (r *UserRepository) IncrementLoginAttempts(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"security.loginAttempts": 1}},
	)
	return err
}

// RecordLogin stamps last login and resets the failure counter.
func (r *UserRepository) RecordLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"security.lastLoginAt":   at,
			"security.loginAttempts": 0,
			"updatedAt":              at,
		}},
	)
	return err
}
