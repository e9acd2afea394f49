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

var technologySortFields = []string{"createdAt", "updatedAt", "category"}

// TechnologyService manages technology categories and the items embedded in
// them. Item mutations locate the item by id within the parent array and
// write the whole document back; concurrent edits to the same category are
// last-write-wins.
type TechnologyService struct {
	repo *repository.TechnologyRepository
}

func NewTechnologyService(repo *repository.TechnologyRepository) *TechnologyService {
	return &TechnologyService{repo: repo}
}

func (s *TechnologyService) GetAll(ctx context.Context, q *dto.ListQuery) ([]*model.TechnologyCategory, int64, error) {
	q.Normalize(technologySortFields...)

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = searchFilter(q.Search, "category", "description", "items.name")
	}

	return s.repo.FindPage(ctx, filter, q.Page, q.PageSize, bson.D{{Key: q.Sort, Value: q.SortDirection()}})
}

func (s *TechnologyService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.TechnologyCategory, error) {
	return findByIDOrSlug(ctx, s.repo, idOrSlug, "technology category")
}

// GetFeatured returns categories stripped down to their featured items.
func (s *TechnologyService) GetFeatured(ctx context.Context, limit int) ([]*model.TechnologyCategory, error) {
	categories, _, err := s.repo.FindPage(ctx, bson.M{"items.featured": true}, 1, limit, bson.D{{Key: "category", Value: 1}})
	if err != nil {
		return nil, err
	}
	for _, cat := range categories {
		featured := []model.TechnologyItem{}
		for _, item := range cat.Items {
			if item.Featured {
				featured = append(featured, item)
			}
		}
		cat.Items = featured
	}
	return categories, nil
}

func (s *TechnologyService) Create(ctx context.Context, req *dto.CreateTechnologyCategoryRequest) (*model.TechnologyCategory, error) {
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Category)
	}
	if slug == "" {
		return nil, apperr.ValidationMessage("cannot derive a slug from the category name")
	}

	exists, err := s.repo.Count(ctx, bson.M{"category": req.Category})
	if err != nil {
		return nil, err
	}
	if exists > 0 {
		return nil, apperr.Conflict("technology category", "category")
	}

	if err := ensureUniqueSlug(ctx, s.repo, slug, "technology category", primitive.NilObjectID); err != nil {
		return nil, err
	}

	cat := &model.TechnologyCategory{
		Slug:        slug,
		Category:    req.Category,
		Description: req.Description,
		Items:       []model.TechnologyItem{},
	}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *TechnologyService) Update(ctx context.Context, idOrSlug string, req *dto.UpdateTechnologyCategoryRequest) (*model.TechnologyCategory, error) {
	cat, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil && *req.Slug != cat.Slug {
		if err := ensureUniqueSlug(ctx, s.repo, *req.Slug, "technology category", cat.ID); err != nil {
			return nil, err
		}
		cat.Slug = *req.Slug
	}
	if req.Category != nil && *req.Category != cat.Category {
		n, err := s.repo.Count(ctx, bson.M{"category": *req.Category, "_id": bson.M{"$ne": cat.ID}})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, apperr.Conflict("technology category", "category")
		}
		cat.Category = *req.Category
	}
	applyString(&cat.Description, req.Description)

	if err := s.repo.Replace(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *TechnologyService) Delete(ctx context.Context, idOrSlug string) error {
	cat, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, cat.ID)
}

// AddItem appends an item with its own identity to the category.
func (s *TechnologyService) AddItem(ctx context.Context, idOrSlug string, req *dto.CreateTechnologyItemRequest) (*model.TechnologyCategory, error) {
	cat, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	level := model.ExpertiseLevel(req.ExpertiseLevel)
	if level == "" {
		level = model.ExpertiseIntermediate
	}

	cat.Items = append(cat.Items, model.TechnologyItem{
		ID:              util.GenerateObjectID(),
		Name:            req.Name,
		Icon:            req.Icon,
		ExpertiseLevel:  level,
		ExperienceYears: req.ExperienceYears,
		UseCases:        util.ParseArrayFromString(req.UseCases),
		Featured:        util.ParseBool(req.Featured),
	})

	if err := s.repo.Replace(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateItem mutates the matching item in place, raising not-found when the
// item id matches no entry.
func (s *TechnologyService) UpdateItem(ctx context.Context, idOrSlug, itemID string, req *dto.UpdateTechnologyItemRequest) (*model.TechnologyCategory, error) {
	cat, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	idx := s.findItem(cat, itemID)
	if idx < 0 {
		return nil, apperr.NotFound("technology item")
	}

	item := &cat.Items[idx]
	applyString(&item.Name, req.Name)
	applyString(&item.Icon, req.Icon)
	applyInt(&item.ExperienceYears, req.ExperienceYears)
	applyBool(&item.Featured, req.Featured)
	if req.ExpertiseLevel != nil {
		item.ExpertiseLevel = model.ExpertiseLevel(*req.ExpertiseLevel)
	}
	if req.UseCases != nil {
		item.UseCases = util.ParseArrayFromString(*req.UseCases)
	}

	if err := s.repo.Replace(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// DeleteItem removes the matching item from the category's array.
func (s *TechnologyService) DeleteItem(ctx context.Context, idOrSlug, itemID string) (*model.TechnologyCategory, error) {
	cat, err := s.GetByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	idx := s.findItem(cat, itemID)
	if idx < 0 {
		return nil, apperr.NotFound("technology item")
	}
	cat.Items = append(cat.Items[:idx], cat.Items[idx+1:]...)

	if err := s.repo.Replace(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *TechnologyService) findItem(cat *model.TechnologyCategory, itemID string) int {
	id, err := util.ParseObjectID(itemID)
	if err != nil {
		return -1
	}
	for i := range cat.Items {
		if cat.Items[i].ID == id {
			return i
		}
	}
	return -1
}
