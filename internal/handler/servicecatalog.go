package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
	"github.com/forgestack/atlas-backend/pkg/upload"
)

// ServiceHandler exposes the business-service offerings.
type ServiceHandler struct {
	services *service.ServiceService
	uploads  *upload.Store
}

func NewServiceHandler(services *service.ServiceService, uploads *upload.Store) *ServiceHandler {
	return &ServiceHandler{services: services, uploads: uploads}
}

// List handles GET /services
func (h *ServiceHandler) List(c *gin.Context) {
	q := middleware.Query[dto.ListQuery](c)
	items, total, err := h.services.GetAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	paginated(c, items, q.Page, q.PageSize, total)
}

// Featured handles GET /services/featured
func (h *ServiceHandler) Featured(c *gin.Context) {
	q := middleware.Query[dto.FeaturedQuery](c)
	q.Normalize()
	items, err := h.services.GetFeatured(c.Request.Context(), q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", items)
}

// Get handles GET /services/:id (id or slug)
func (h *ServiceHandler) Get(c *gin.Context) {
	item, err := h.services.GetByIDOrSlug(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", item)
}

// Create handles POST /services
func (h *ServiceHandler) Create(c *gin.Context) {
	req := middleware.Body[dto.CreateServiceRequest](c)
	imageURL, err := saveUpload(c, h.uploads, "image", upload.CategoryImage)
	if err != nil {
		fail(c, err)
		return
	}
	item, err := h.services.Create(c.Request.Context(), req, imageURL)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "service created", item)
}

// Update handles PUT /services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	req := middleware.Body[dto.UpdateServiceRequest](c)
	imageURL, err := saveUpload(c, h.uploads, "image", upload.CategoryImage)
	if err != nil {
		fail(c, err)
		return
	}
	item, err := h.services.Update(c.Request.Context(), c.Param("id"), req, imageURL)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "service updated", item)
}

// Delete handles DELETE /services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
