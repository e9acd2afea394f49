package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
)

// SettingsHandler exposes the website configuration singleton.
type SettingsHandler struct {
	settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.settings.Get(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", cfg)
}

// Update handles PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	req := middleware.Body[dto.UpdateSettingsRequest](c)
	cfg, err := h.settings.Update(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "settings updated", cfg)
}

// Reset handles POST /settings/reset
func (h *SettingsHandler) Reset(c *gin.Context) {
	cfg, err := h.settings.Reset(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "settings restored to defaults", cfg)
}
