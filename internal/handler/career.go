package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
)

// CareerHandler exposes job postings.
type CareerHandler struct {
	careers *service.CareerService
}

func NewCareerHandler(careers *service.CareerService) *CareerHandler {
	return &CareerHandler{careers: careers}
}

// List handles GET /careers
func (h *CareerHandler) List(c *gin.Context) {
	q := middleware.Query[dto.ListQuery](c)
	items, total, err := h.careers.GetAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	paginated(c, items, q.Page, q.PageSize, total)
}

// Get handles GET /careers/:id
func (h *CareerHandler) Get(c *gin.Context) {
	item, err := h.careers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", item)
}

// Create handles POST /careers
func (h *CareerHandler) Create(c *gin.Context) {
	req := middleware.Body[dto.CreateCareerRequest](c)
	item, err := h.careers.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "career posting created", item)
}

// Update handles PUT /careers/:id
func (h *CareerHandler) Update(c *gin.Context) {
	req := middleware.Body[dto.UpdateCareerRequest](c)
	item, err := h.careers.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "career posting updated", item)
}

// Delete handles DELETE /careers/:id
func (h *CareerHandler) Delete(c *gin.Context) {
	if err := h.careers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
