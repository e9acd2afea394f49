package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
	"github.com/forgestack/atlas-backend/pkg/upload"
)

// UserHandler exposes user administration endpoints.
type UserHandler struct {
	users   *service.UserService
	uploads *upload.Store
}

func NewUserHandler(users *service.UserService, uploads *upload.Store) *UserHandler {
	return &UserHandler{users: users, uploads: uploads}
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	q := middleware.Query[dto.ListQuery](c)
	items, total, err := h.users.GetAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	paginated(c, items, q.Page, q.PageSize, total)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", user)
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	req := middleware.Body[dto.CreateUserRequest](c)
	avatarURL, err := saveUpload(c, h.uploads, "avatar", upload.CategoryAvatar)
	if err != nil {
		fail(c, err)
		return
	}
	user, err := h.users.Create(c.Request.Context(), req, avatarURL, middleware.Claims(c).Permissions)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "user created", user)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	req := middleware.Body[dto.UpdateUserRequest](c)
	avatarURL, err := saveUpload(c, h.uploads, "avatar", upload.CategoryAvatar)
	if err != nil {
		fail(c, err)
		return
	}
	user, err := h.users.Update(c.Request.Context(), c.Param("id"), req, avatarURL, middleware.Claims(c).Permissions)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "user updated", user)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
