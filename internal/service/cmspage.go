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

var cmsSortFields = []string{"createdAt", "updatedAt", "title", "status"}

// CMSService manages editor-authored content pages.
type CMSService struct {
	repo *repository.CMSPageRepository
}

func NewCMSService(repo *repository.CMSPageRepository) *CMSService {
	return &CMSService{repo: repo}
}

func (s *CMSService) GetAll(ctx context.Context, q *dto.ListQuery) ([]*model.CMSPage, int64, error) {
	q.Normalize(cmsSortFields...)

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = searchFilter(q.Search, "title", "content")
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	return s.repo.FindPage(ctx, filter, q.Page, q.PageSize, bson.D{{Key: q.Sort, Value: q.SortDirection()}})
}

func (s *CMSService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.CMSPage, error) {
	return findByIDOrSlug(ctx, s.repo, idOrSlug, "page")
}

func (s *CMSService) Create(ctx context.Context, req *dto.CreateCMSPageRequest) (*model.CMSPage, error) {
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if slug == "" {
		return nil, apperr.ValidationMessage("cannot derive a slug from the title")
	}
	if err := ensureUniqueSlug(ctx, s.repo, slug, "page", primitive.NilObjectID); err != nil {
		return nil, err
	}

	status := model.PageStatus(req.Status)
	if status == "" {
		status = model.PageDraft
	}

	page := &model.CMSPage{
		Slug:            slug,
		Title:           req.Title,
		Status:          status,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Content:         req.Content,
	}
	if err := s.repo.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *CMSService) Update(ctx context.Context, idOrSlug string, req *dto.UpdateCMSPageRequest) (*model.CMSPage, error) {
	page, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != page.Slug {
		if err := ensureUniqueSlug(ctx, s.repo, *req.Slug, "page", page.ID); err != nil {
			return nil, err
		}
		page.Slug = *req.Slug
	}

	applyString(&page.Title, req.Title)
	applyString(&page.MetaTitle, req.MetaTitle)
	applyString(&page.MetaDescription, req.MetaDescription)
	applyString(&page.Content, req.Content)
	if req.Status != nil {
		page.Status = model.PageStatus(*req.Status)
	}

	if err := s.repo.Replace(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *CMSService) Delete(ctx context.Context, idOrSlug string) error {
	page, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, page.ID)
}
