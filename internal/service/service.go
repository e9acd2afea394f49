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

var serviceSortFields = []string{"createdAt", "updatedAt", "title"}

// ServiceService manages the business-service offerings.
type ServiceService struct {
	repo *repository.ServiceRepository
}

func NewServiceService(repo *repository.ServiceRepository) *ServiceService {
	return &ServiceService{repo: repo}
}

// GetAll returns one page of services matching the query filters.
func (s *ServiceService) GetAll(ctx context.Context, q *dto.ListQuery) ([]*model.Service, int64, error) {
	q.Normalize(serviceSortFields...)

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = searchFilter(q.Search, "title", "tagline", "description")
	}
	if q.Featured != "" {
		filter["featured"] = util.ParseBool(q.Featured)
	}

	return s.repo.FindPage(ctx, filter, q.Page, q.PageSize, bson.D{{Key: q.Sort, Value: q.SortDirection()}})
}

// GetByIDOrSlug accepts either the slug or the internal id.
func (s *ServiceService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.Service, error) {
	return findByIDOrSlug(ctx, s.repo, idOrSlug, "service")
}

// GetFeatured returns up to limit featured services, newest first.
func (s *ServiceService) GetFeatured(ctx context.Context, limit int) ([]*model.Service, error) {
	results, _, err := s.repo.FindPage(ctx, bson.M{"featured": true}, 1, limit, bson.D{{Key: "createdAt", Value: -1}})
	return results, err
}

// Create builds a service from the validated form, deriving the slug from
// the title when absent.
func (s *ServiceService) Create(ctx context.Context, req *dto.CreateServiceRequest, imageURL string) (*model.Service, error) {
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if slug == "" {
		return nil, apperr.ValidationMessage("cannot derive a slug from the title")
	}
	if err := ensureUniqueSlug(ctx, s.repo, slug, "service", primitive.NilObjectID); err != nil {
		return nil, err
	}

	svc := &model.Service{
		Slug:         slug,
		Title:        req.Title,
		Tagline:      req.Tagline,
		Description:  req.Description,
		Overview:     req.Overview,
		Icon:         req.Icon,
		ImageURL:     imageURL,
		Features:     util.ParseArrayFromString(req.Features),
		Deliverables: util.ParseArrayFromString(req.Deliverables),
		Process:      util.ParseArrayFromString(req.Process),
		TechStack:    util.ParseArrayFromString(req.TechStack),
		Benefits:     util.ParseArrayFromString(req.Benefits),
		IdealFor:     util.ParseArrayFromString(req.IdealFor),
		CTA:          req.CTA,
		SEO: model.SEO{
			MetaTitle:       req.MetaTitle,
			MetaDescription: req.MetaDescription,
		},
		PricingHint: req.PricingHint,
		Featured:    util.ParseBool(req.Featured),
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Update merges only the supplied fields. The slug never regenerates from a
// title change; an explicit new slug triggers a uniqueness re-check.
func (s *ServiceService) Update(ctx context.Context, idOrSlug string, req *dto.UpdateServiceRequest, imageURL string) (*model.Service, error) {
	svc, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != svc.Slug {
		if err := ensureUniqueSlug(ctx, s.repo, *req.Slug, "service", svc.ID); err != nil {
			return nil, err
		}
		svc.Slug = *req.Slug
	}

	applyString(&svc.Title, req.Title)
	applyString(&svc.Tagline, req.Tagline)
	applyString(&svc.Description, req.Description)
	applyString(&svc.Overview, req.Overview)
	applyString(&svc.Icon, req.Icon)
	applyString(&svc.CTA, req.CTA)
	applyString(&svc.SEO.MetaTitle, req.MetaTitle)
	applyString(&svc.SEO.MetaDescription, req.MetaDescription)
	applyString(&svc.PricingHint, req.PricingHint)
	applyList(&svc.Features, req.Features)
	applyList(&svc.Deliverables, req.Deliverables)
	applyList(&svc.Process, req.Process)
	applyList(&svc.TechStack, req.TechStack)
	applyList(&svc.Benefits, req.Benefits)
	applyList(&svc.IdealFor, req.IdealFor)
	applyBool(&svc.Featured, req.Featured)
	if imageURL != "" {
		svc.ImageURL = imageURL
	}

	if err := s.repo.Replace(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Delete removes a service, raising not-found if absent.
func (s *ServiceService) Delete(ctx context.Context, idOrSlug string) error {
	svc, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, svc.ID)
}
