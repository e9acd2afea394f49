package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/auth"
	"github.com/forgestack/atlas-backend/internal/config"
	"github.com/forgestack/atlas-backend/internal/dto"
	"github.com/forgestack/atlas-backend/internal/middleware"
	"github.com/forgestack/atlas-backend/internal/service"
)

// AuthHandler handles registration, login and the token lifecycle.
type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	req := middleware.Body[dto.RegisterRequest](c)
	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, "registered, check your email to verify the account", user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	req := middleware.Body[dto.LoginRequest](c)
	user, pair, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	h.setAuthCookies(c, pair)
	ok(c, "logged in", gin.H{"user": user, "tokens": pair})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearAuthCookies(c)
	ok(c, "logged out", nil)
}

// Refresh handles POST /auth/refresh. The refresh token comes from the
// cookie, falling back to the request body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || token == "" {
		var req dto.RefreshRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr == nil {
			token = req.RefreshToken
		}
	}
	pair, err := h.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		fail(c, err)
		return
	}
	h.setAuthCookies(c, pair)
	ok(c, "tokens refreshed", pair)
}

// ForgotPassword handles POST /auth/forgot-password. The response never
// reveals whether the account exists.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	req := middleware.Body[dto.ForgotPasswordRequest](c)
	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	ok(c, "if the account exists, a reset link has been sent", nil)
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	req := middleware.Body[dto.ResetPasswordRequest](c)
	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	ok(c, "password has been reset", nil)
}

// VerifyEmail handles POST /auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	req := middleware.Body[dto.VerifyEmailRequest](c)
	if err := h.authService.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		fail(c, err)
		return
	}
	ok(c, "email verified", nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.Claims(c)
	user, err := h.authService.Me(c.Request.Context(), claims.Subject)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", user)
}

// UpdateMe handles PUT /auth/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	claims := middleware.Claims(c)
	req := middleware.Body[dto.UpdateProfileRequest](c)
	user, err := h.authService.UpdateProfile(c.Request.Context(), claims.Subject, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "profile updated", user)
}

// ChangePassword handles POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims := middleware.Claims(c)
	req := middleware.Body[dto.ChangePasswordRequest](c)
	if err := h.authService.ChangePassword(c.Request.Context(), claims.Subject, req); err != nil {
		fail(c, err)
		return
	}
	ok(c, "password changed", nil)
}

// setAuthCookies mirrors token expiries onto HTTP-only same-site cookies.
func (h *AuthHandler) setAuthCookies(c *gin.Context, pair *auth.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken,
		int(h.cfg.Auth.AccessTTL.Seconds()), "/", h.cfg.Auth.CookieDomain, h.cfg.Auth.CookieSecure, true)
	c.SetCookie(middleware.RefreshTokenCookie, pair.RefreshToken,
		int(h.cfg.Auth.RefreshTTL.Seconds()), "/", h.cfg.Auth.CookieDomain, h.cfg.Auth.CookieSecure, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", h.cfg.Auth.CookieDomain, h.cfg.Auth.CookieSecure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", h.cfg.Auth.CookieDomain, h.cfg.Auth.CookieSecure, true)
}
