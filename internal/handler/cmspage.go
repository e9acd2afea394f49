package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
)

// CMSHandler exposes editable site pages.
type CMSHandler struct {
	pages *service.CMSService
}

func NewCMSHandler(pages *service.CMSService) *CMSHandler {
	return &CMSHandler{pages: pages}
}

// List handles GET /pages
func (h *CMSHandler) List(c *gin.Context) {
	q := middleware.Query[dto.ListQuery](c)
	items, total, err := h.pages.GetAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	paginated(c, items, q.Page, q.PageSize, total)
}

// Get handles GET /pages/:id (id or slug)
func (h *CMSHandler) Get(c *gin.Context) {
	item, err := h.pages.GetByIDOrSlug(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", item)
}

// Create handles POST /pages
func (h *CMSHandler) Create(c *gin.Context) {
	req := middleware.Body[dto.CreateCMSPageRequest](c)
	item, err := h.pages.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "page created", item)
}

// Update handles PUT /pages/:id
func (h *CMSHandler) Update(c *gin.Context) {
	req := middleware.Body[dto.UpdateCMSPageRequest](c)
	item, err := h.pages.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "page updated", item)
}

// Delete handles DELETE /pages/:id
func (h *CMSHandler) Delete(c *gin.Context) {
	if err := h.pages.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
