package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
	"github.com/forgestack/atlas-backend/pkg/upload"
)

// PortfolioHandler exposes portfolio projects.
type PortfolioHandler struct {
	portfolio *service.PortfolioService
	uploads   *upload.Store
}

func NewPortfolioHandler(portfolio *service.PortfolioService, uploads *upload.Store) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio, uploads: uploads}
}

// List handles GET /portfolio
func (h *PortfolioHandler) List(c *gin.Context) {
	q := middleware.Query[dto.ListQuery](c)
	items, total, err := h.portfolio.GetAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	paginated(c, items, q.Page, q.PageSize, total)
}

// Featured handles GET /portfolio/featured
func (h *PortfolioHandler) Featured(c *gin.Context) {
	q := middleware.Query[dto.FeaturedQuery](c)
	q.Normalize()
	items, err := h.portfolio.GetFeatured(c.Request.Context(), q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", items)
}

// Get handles GET /portfolio/:id (id or slug)
func (h *PortfolioHandler) Get(c *gin.Context) {
	item, err := h.portfolio.GetByIDOrSlug(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", item)
}

// Create handles POST /portfolio
func (h *PortfolioHandler) Create(c *gin.Context) {
	req := middleware.Body[dto.CreatePortfolioRequest](c)
	thumbURL, err := saveUpload(c, h.uploads, "thumbnail", upload.CategoryImage)
	if err != nil {
		fail(c, err)
		return
	}
	item, err := h.portfolio.Create(c.Request.Context(), req, thumbURL)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "portfolio item created", item)
}

// Update handles PUT /portfolio/:id
func (h *PortfolioHandler) Update(c *gin.Context) {
	req := middleware.Body[dto.UpdatePortfolioRequest](c)
	thumbURL, err := saveUpload(c, h.uploads, "thumbnail", upload.CategoryImage)
	if err != nil {
		fail(c, err)
		return
	}
	item, err := h.portfolio.Update(c.Request.Context(), c.Param("id"), req, thumbURL)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "portfolio item updated", item)
}

// Delete handles DELETE /portfolio/:id
func (h *PortfolioHandler) Delete(c *gin.Context) {
	if err := h.portfolio.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
