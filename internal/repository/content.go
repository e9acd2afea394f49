// Package repository wraps MongoDB collections behind narrow interfaces so
// services never touch the driver directly.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/pkg/generic"
)

// SluggedRepository extends the base repository for content entities that
// carry a unique slug.
type SluggedRepository[T generic.Entity] struct {
	*generic.MongoBaseRepository[T]
}

func NewSluggedRepository[T generic.Entity](collection *mongo.Collection) *SluggedRepository[T] {
	return &SluggedRepository[T]{
		MongoBaseRepository: generic.NewBaseRepository[T](collection),
	}
}

func (r *SluggedRepository[T]) FindBySlug(ctx context.Context, slug string) (T, error) {
	return r.FindOne(ctx, bson.M{"slug": slug})
}

// SlugExists reports whether another document already owns the slug.
// excludeID skips the document being updated; pass NilObjectID on create.
func (r *SluggedRepository[T]) SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"slug": slug}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Per-resource repositories. The shared slug behavior covers everything the
// content services need; resource-specific filters are built in the services.
type (
	ServiceRepository     = SluggedRepository[*model.Service]
	PortfolioRepository   = SluggedRepository[*model.Portfolio]
	TechnologyRepository  = SluggedRepository[*model.TechnologyCategory]
	TestimonialRepository = SluggedRepository[*model.Testimonial]
	CMSPageRepository     = SluggedRepository[*model.CMSPage]
)

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return NewSluggedRepository[*model.Service](db.Collection("services"))
}

func NewPortfolioRepository(db *mongo.Database) *PortfolioRepository {
	return NewSluggedRepository[*model.Portfolio](db.Collection("portfolios"))
}

func NewTechnologyRepository(db *mongo.Database) *TechnologyRepository {
	return NewSluggedRepository[*model.TechnologyCategory](db.Collection("technology_categories"))
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return NewSluggedRepository[*model.Testimonial](db.Collection("testimonials"))
}

func NewCMSPageRepository(db *mongo.Database) *CMSPageRepository {
	return NewSluggedRepository[*model.CMSPage](db.Collection("cms_pages"))
}
