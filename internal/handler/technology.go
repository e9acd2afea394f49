package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
)

// TechnologyHandler exposes technology categories and their nested items.
type TechnologyHandler struct {
	technologies *service.TechnologyService
}

func NewTechnologyHandler(technologies *service.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{technologies: technologies}
}

// List handles GET /technologies
func (h *TechnologyHandler) List(c *gin.Context) {
	q := middleware.Query[dto.ListQuery](c)
	items, total, err := h.technologies.GetAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	paginated(c, items, q.Page, q.PageSize, total)
}

// Featured handles GET /technologies/featured
func (h *TechnologyHandler) Featured(c *gin.Context) {
	q := middleware.Query[dto.FeaturedQuery](c)
	q.Normalize()
	items, err := h.technologies.GetFeatured(c.Request.Context(), q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", items)
}

// Get handles GET /technologies/:id (id or slug)
func (h *TechnologyHandler) Get(c *gin.Context) {
	item, err := h.technologies.GetByIDOrSlug(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", item)
}

// Create handles POST /technologies
func (h *TechnologyHandler) Create(c *gin.Context) {
	req := middleware.Body[dto.CreateTechnologyCategoryRequest](c)
	item, err := h.technologies.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "technology category created", item)
}

// Update handles PUT /technologies/:id
func (h *TechnologyHandler) Update(c *gin.Context) {
	req := middleware.Body[dto.UpdateTechnologyCategoryRequest](c)
	item, err := h.technologies.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "technology category updated", item)
}

// Delete handles DELETE /technologies/:id
func (h *TechnologyHandler) Delete(c *gin.Context) {
	if err := h.technologies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}

// AddItem handles POST /technologies/:id/items
func (h *TechnologyHandler) AddItem(c *gin.Context) {
	req := middleware.Body[dto.CreateTechnologyItemRequest](c)
	item, err := h.technologies.AddItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "technology item added", item)
}

// UpdateItem handles PUT /technologies/:id/items/:itemId
func (h *TechnologyHandler) UpdateItem(c *gin.Context) {
	req := middleware.Body[dto.UpdateTechnologyItemRequest](c)
	item, err := h.technologies.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "technology item updated", item)
}

// DeleteItem handles DELETE /technologies/:id/items/:itemId
func (h *TechnologyHandler) DeleteItem(c *gin.Context) {
	item, err := h.technologies.DeleteItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "technology item removed", item)
}
