package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/internal/repository"
	"github.com/forgestack/atlas-backend/pkg/util"
)

var testimonialSortFields = []string{"createdAt", "updatedAt", "name", "rating"}

// TestimonialService manages client testimonials.
type TestimonialService struct {
	repo *repository.TestimonialRepository
}

func NewTestimonialService(repo *repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

func (s *TestimonialService) GetAll(ctx context.Context, q *dto.ListQuery) ([]*model.Testimonial, int64, error) {
	q.Normalize(testimonialSortFields...)

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = searchFilter(q.Search, "name", "company", "content")
	}
	if q.Category != "" {
		filter["industry"] = q.Category
	}
	if q.Featured != "" {
		filter["featured"] = util.ParseBool(q.Featured)
	}

	return s.repo.FindPage(ctx, filter, q.Page, q.PageSize, bson.D{{Key: q.Sort, Value: q.SortDirection()}})
}

func (s *TestimonialService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.Testimonial, error) {
	return findByIDOrSlug(ctx, s.repo, idOrSlug, "testimonial")
}

func (s *TestimonialService) GetFeatured(ctx context.Context, limit int) ([]*model.Testimonial, error) {
	results, _, err := s.repo.FindPage(ctx, bson.M{"featured": true}, 1, limit, bson.D{{Key: "createdAt", Value: -1}})
	return results, err
}

// Create derives the slug from name+company.
func (s *TestimonialService) Create(ctx context.Context, req *dto.CreateTestimonialRequest, avatarURL string) (*model.Testimonial, error) {
	slug := util.Slugify(req.Name + " " + req.Company)
	if slug == "" {
		return nil, apperr.ValidationMessage("cannot derive a slug from the name")
	}
	if err := ensureUniqueSlug(ctx, s.repo, slug, "testimonial", primitive.NilObjectID); err != nil {
		return nil, err
	}

	t := &model.Testimonial{
		Slug:            slug,
		Name:            req.Name,
		Role:            req.Role,
		Company:         req.Company,
		Industry:        req.Industry,
		ServiceProvided: req.ServiceProvided,
		ProjectType:     req.ProjectType,
		Rating:          req.Rating,
		Content:         req.Content,
		Metrics:         util.ParseStringMap(req.Metrics, nil),
		AvatarURL:       avatarURL,
		LinkedIn:        req.LinkedIn,
		Website:         req.Website,
		Verified:        util.ParseBool(req.Verified),
		Featured:        util.ParseBool(req.Featured),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TestimonialService) Update(ctx context.Context, idOrSlug string, req *dto.UpdateTestimonialRequest, avatarURL string) (*model.Testimonial, error) {
	t, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	applyString(&t.Name, req.Name)
	applyString(&t.Role, req.Role)
	applyString(&t.Company, req.Company)
	applyString(&t.Industry, req.Industry)
	applyString(&t.ServiceProvided, req.ServiceProvided)
	applyString(&t.ProjectType, req.ProjectType)
	applyString(&t.Content, req.Content)
	applyString(&t.LinkedIn, req.LinkedIn)
	applyString(&t.Website, req.Website)
	applyInt(&t.Rating, req.Rating)
	applyBool(&t.Verified, req.Verified)
	applyBool(&t.Featured, req.Featured)
	if req.Metrics != nil {
		t.Metrics = util.ParseStringMap(*req.Metrics, t.Metrics)
	}
	if avatarURL != "" {
		t.AvatarURL = avatarURL
	}

	if err := s.repo.Replace(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TestimonialService) Delete(ctx context.Context, idOrSlug string) error {
	t, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, t.ID)
}
