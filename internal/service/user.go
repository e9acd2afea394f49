package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/auth"
	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/internal/repository"
	"github.com/forgestack/atlas-backend/pkg/generic"
	"github.com/forgestack/atlas-backend/pkg/util"
)

var userSortFields = []string{"createdAt", "updatedAt", "email", "firstName", "lastName", "role", "status"}

// UserService is the admin-side account management.
type UserService struct {
	repo repository.IUserRepository
}

func NewUserService(repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetAll(ctx context.Context, q *dto.ListQuery) ([]*model.User, int64, error) {
	q.Normalize(userSortFields...)

	filter := bson.M{}
	if q.Search != "" {
		filter["$or"] = searchFilter(q.Search, "email", "firstName", "lastName", "displayName")
	}
	if q.Role != "" {
		filter["role"] = q.Role
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	return s.repo.FindPage(ctx, filter, q.Page, q.PageSize, bson.D{{Key: q.Sort, Value: q.SortDirection()}})
}

func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	objID, err := util.ParseObjectID(id)
	if err != nil {
		return nil, apperr.NotFound("user")
	}
	user, err := s.repo.GetByID(ctx, objID)
	if err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return user, nil
}

// requireManageRoles rejects role or permission assignments from actors
// without the role-management grant.
func requireManageRoles(actorPerms []string) error {
	if !auth.HasAll(actorPerms, auth.PermManageRoles) {
		return apperr.Forbidden("changing roles or permissions requires role management")
	}
	return nil
}

// Create adds an account with an explicit role/status. Duplicate email is a
// conflict. Assigning a role or permission set needs MANAGE_ROLES.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest, avatarURL string, actorPerms []string) (*model.User, error) {
	if req.Role != "" || req.Permissions != "" {
		if err := requireManageRoles(actorPerms); err != nil {
			return nil, err
		}
	}

	email := normalizeEmail(req.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("user", "email")
	} else if !errors.Is(err, generic.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleClient
	}
	status := model.UserStatus(req.Status)
	if status == "" {
		status = model.StatusActive
	}

	user := &model.User{
		Email:       email,
		Password:    hash,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		AvatarURL:   avatarURL,
		Role:        role,
		Status:      status,
		Permissions: util.ParseArrayFromString(req.Permissions),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update merges supplied fields. A changed email is re-checked for
// uniqueness; a supplied password is re-hashed. Role and permission changes
// need MANAGE_ROLES.
func (s *UserService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest, avatarURL string, actorPerms []string) (*model.User, error) {
	if req.Role != nil || req.Permissions != nil {
		if err := requireManageRoles(actorPerms); err != nil {
			return nil, err
		}
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			if _, err := s.repo.FindByEmail(ctx, email); err == nil {
				return nil, apperr.Conflict("user", "email")
			} else if !errors.Is(err, generic.ErrNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	applyString(&user.FirstName, req.FirstName)
	applyString(&user.LastName, req.LastName)
	applyString(&user.DisplayName, req.DisplayName)
	applyString(&user.Profile.Bio, req.Bio)
	applyString(&user.Profile.Phone, req.Phone)
	applyString(&user.Profile.Location, req.Location)
	applyString(&user.Profile.Department, req.Department)
	applyString(&user.Profile.Position, req.Position)
	applyString(&user.Profile.Company, req.Company)
	if req.Role != nil {
		user.Role = model.Role(*req.Role)
	}
	if req.Status != nil {
		user.Status = model.UserStatus(*req.Status)
	}
	if req.Permissions != nil {
		user.Permissions = util.ParseArrayFromString(*req.Permissions)
	}
	if avatarURL != "" {
		user.AvatarURL = avatarURL
	}

	if err := s.repo.Replace(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, user.ID)
}
