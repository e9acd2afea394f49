package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/internal/repository"
	"github.com/forgestack/atlas-backend/pkg/generic"
	"github.com/forgestack/atlas-backend/pkg/util"
)

var careerSortFields = []string{"createdAt", "updatedAt", "title", "department"}

// CareerService manages open positions.
type CareerService struct {
	repo *repository.CareerRepository
}

func NewCareerService(repo *repository.CareerRepository) *CareerService {
	return &CareerService{repo: repo}
}

func (s *CareerService) GetAll(ctx context.Context, q *dto.ListQuery) ([]*model.Career, int64, error) {
	q.Normalize(careerSortFields...)

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = searchFilter(q.Search, "title", "department", "location", "description")
	}
	if q.Type != "" {
		filter["type"] = q.Type
	}
	if q.Category != "" {
		filter["department"] = q.Category
	}

	return s.repo.FindPage(ctx, filter, q.Page, q.PageSize, bson.D{{Key: q.Sort, Value: q.SortDirection()}})
}

func (s *CareerService) GetByID(ctx context.Context, id string) (*model.Career, error) {
	objID, err := util.ParseObjectID(id)
	if err != nil {
		return nil, apperr.NotFound("career")
	}
	career, err := s.repo.GetByID(ctx, objID)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, apperr.NotFound("career")
		}
		return nil, err
	}
	return career, nil
}

func (s *CareerService) Create(ctx context.Context, req *dto.CreateCareerRequest) (*model.Career, error) {
	empType := model.EmploymentType(req.Type)
	if empType == "" {
		empType = model.EmploymentFullTime
	}

	career := &model.Career{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Experience:   req.Experience,
		Type:         empType,
		Description:  req.Description,
		Requirements: util.ParseArrayFromString(req.Requirements),
		Benefits:     util.ParseArrayFromString(req.Benefits),
		ApplyLink:    req.ApplyLink,
	}
	if err := s.repo.Create(ctx, career); err != nil {
		return nil, err
	}
	return career, nil
}

func (s *CareerService) Update(ctx context.Context, id string, req *dto.UpdateCareerRequest) (*model.Career, error) {
	career, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&career.Title, req.Title)
	applyString(&career.Department, req.Department)
	applyString(&career.Location, req.Location)
	applyString(&career.Experience, req.Experience)
	applyString(&career.Description, req.Description)
	applyString(&career.ApplyLink, req.ApplyLink)
	applyList(&career.Requirements, req.Requirements)
	applyList(&career.Benefits, req.Benefits)
	if req.Type != nil {
		career.Type = model.EmploymentType(*req.Type)
	}

	if err := s.repo.Replace(ctx, career); err != nil {
		return nil, err
	}
	return career, nil
}

func (s *CareerService) Delete(ctx context.Context, id string) error {
	career, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, career.ID)
}
