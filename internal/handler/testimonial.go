package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
	"github.com/forgestack/atlas-backend/pkg/upload"
)

// TestimonialHandler exposes client testimonials.
type TestimonialHandler struct {
	testimonials *service.TestimonialService
	uploads      *upload.Store
}

func NewTestimonialHandler(testimonials *service.TestimonialService, uploads *upload.Store) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials, uploads: uploads}
}

// List handles GET /testimonials
func (h *TestimonialHandler) List(c *gin.Context) {
	q := middleware.Query[dto.ListQuery](c)
	items, total, err := h.testimonials.GetAll(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	paginated(c, items, q.Page, q.PageSize, total)
}

// Featured handles GET /testimonials/featured
func (h *TestimonialHandler) Featured(c *gin.Context) {
	q := middleware.Query[dto.FeaturedQuery](c)
	q.Normalize()
	items, err := h.testimonials.GetFeatured(c.Request.Context(), q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", items)
}

// Get handles GET /testimonials/:id (id or slug)
func (h *TestimonialHandler) Get(c *gin.Context) {
	item, err := h.testimonials.GetByIDOrSlug(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", item)
}

// Create handles POST /testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	req := middleware.Body[dto.CreateTestimonialRequest](c)
	avatarURL, err := saveUpload(c, h.uploads, "avatar", upload.CategoryAvatar)
	if err != nil {
		fail(c, err)
		return
	}
	item, err := h.testimonials.Create(c.Request.Context(), req, avatarURL)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "testimonial created", item)
}

// Update handles PUT /testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	req := middleware.Body[dto.UpdateTestimonialRequest](c)
	avatarURL, err := saveUpload(c, h.uploads, "avatar", upload.CategoryAvatar)
	if err != nil {
		fail(c, err)
		return
	}
	item, err := h.testimonials.Update(c.Request.Context(), c.Param("id"), req, avatarURL)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "testimonial updated", item)
}

// Delete handles DELETE /testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	noContent(c)
}
