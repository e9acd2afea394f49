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

var portfolioSortFields = []string{"createdAt", "updatedAt", "title", "category"}

// PortfolioService manages portfolio projects.
type PortfolioService struct {
	repo *repository.PortfolioRepository
}

func NewPortfolioService(repo *repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{repo: repo}
}

func (s *PortfolioService) GetAll(ctx context.Context, q *dto.ListQuery) ([]*model.Portfolio, int64, error) {
	q.Normalize(portfolioSortFields...)

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = searchFilter(q.Search, "title", "description", "industry", "client.name")
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Featured != "" {
		filter["featured"] = util.ParseBool(q.Featured)
	}

	return s.repo.FindPage(ctx, filter, q.Page, q.PageSize, bson.D{{Key: q.Sort, Value: q.SortDirection()}})
}

func (s *PortfolioService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.Portfolio, error) {
	return findByIDOrSlug(ctx, s.repo, idOrSlug, "portfolio item")
}

func (s *PortfolioService) GetFeatured(ctx context.Context, limit int) ([]*model.Portfolio, error) {
	results, _, err := s.repo.FindPage(ctx, bson.M{"featured": true}, 1, limit, bson.D{{Key: "createdAt", Value: -1}})
	return results, err
}

func (s *PortfolioService) Create(ctx context.Context, req *dto.CreatePortfolioRequest, thumbnailURL string) (*model.Portfolio, error) {
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if slug == "" {
		return nil, apperr.ValidationMessage("cannot derive a slug from the title")
	}
	if err := ensureUniqueSlug(ctx, s.repo, slug, "portfolio item", primitive.NilObjectID); err != nil {
		return nil, err
	}

	status := model.ProjectStatus(req.Status)
	if status == "" {
		status = model.ProjectCompleted
	}

	item := &model.Portfolio{
		Slug:     slug,
		Title:    req.Title,
		Category: req.Category,
		Industry: req.Industry,
		Client: model.PortfolioClient{
			Name:     req.ClientName,
			Location: req.ClientLocation,
		},
		Description:      req.Description,
		KeyFeatures:      util.ParseArrayFromString(req.KeyFeatures),
		TechStack:        util.ParseStringListMap(req.TechStack, nil),
		Metrics:          util.ParseStringMap(req.Metrics, nil),
		Timeline:         req.Timeline,
		Status:           status,
		ServicesProvided: util.ParseArrayFromString(req.ServicesProvided),
		Links: model.PortfolioLinks{
			Live:      req.LiveURL,
			CaseStudy: req.CaseStudyURL,
			GitHub:    req.GitHubURL,
		},
		ThumbnailURL: thumbnailURL,
		Featured:     util.ParseBool(req.Featured),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update merges supplied fields; the embedded client and links blocks merge
// field-by-field rather than being replaced wholesale.
func (s *PortfolioService) Update(ctx context.Context, idOrSlug string, req *dto.UpdatePortfolioRequest, thumbnailURL string) (*model.Portfolio, error) {
	item, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != item.Slug {
		if err := ensureUniqueSlug(ctx, s.repo, *req.Slug, "portfolio item", item.ID); err != nil {
			return nil, err
		}
		item.Slug = *req.Slug
	}

	applyString(&item.Title, req.Title)
	applyString(&item.Category, req.Category)
	applyString(&item.Industry, req.Industry)
	applyString(&item.Client.Name, req.ClientName)
	applyString(&item.Client.Location, req.ClientLocation)
	applyString(&item.Description, req.Description)
	applyString(&item.Timeline, req.Timeline)
	applyString(&item.Links.Live, req.LiveURL)
	applyString(&item.Links.CaseStudy, req.CaseStudyURL)
	applyString(&item.Links.GitHub, req.GitHubURL)
	applyList(&item.KeyFeatures, req.KeyFeatures)
	applyList(&item.ServicesProvided, req.ServicesProvided)
	applyBool(&item.Featured, req.Featured)
	if req.Status != nil {
		item.Status = model.ProjectStatus(*req.Status)
	}
	if req.TechStack != nil {
		item.TechStack = util.ParseStringListMap(*req.TechStack, item.TechStack)
	}
	if req.Metrics != nil {
		item.Metrics = util.ParseStringMap(*req.Metrics, item.Metrics)
	}
	if thumbnailURL != "" {
		item.ThumbnailURL = thumbnailURL
	}

	if err := s.repo.Replace(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PortfolioService) Delete(ctx context.Context, idOrSlug string) error {
	item, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, item.ID)
}
