package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/auth"
	"github.com/forgestack/atlas-backend/internal/model"
)

// AccessTokenCookie is the HTTP-only cookie carrying the access token.
const AccessTokenCookie = "access_token"

// RefreshTokenCookie is the HTTP-only cookie carrying the refresh token.
const RefreshTokenCookie = "refresh_token"

const ctxKeyClaims = "auth:claims"

// RequireAuth rejects requests without a valid access token. The token is
// read from the cookie first, then from a bearer header.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, tokens)
		if err != nil {
			abortError(c, err)
			return
		}
		c.Set(ctxKeyClaims, claims)
		c.Next()
	}
}

// OptionalAuth attaches identity when a valid token is present but never
// rejects the request for its absence.
func OptionalAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := authenticate(c, tokens); err == nil {
			c.Set(ctxKeyClaims, claims)
		}
		c.Next()
	}
}

// RequireRoles passes when the authenticated role matches any of the given
// roles.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			abortError(c, apperr.Unauthorized("authentication required"))
			return
		}
		for _, role := range roles {
			if claims.Role == string(role) {
				c.Next()
				return
			}
		}
		abortError(c, apperr.Forbidden(""))
	}
}

// RequirePermissions passes only when the token grants every listed
// permission.
func RequirePermissions(perms ...auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			abortError(c, apperr.Unauthorized("authentication required"))
			return
		}
		if !auth.HasAll(claims.Permissions, perms...) {
			abortError(c, apperr.Forbidden(""))
			return
		}
		c.Next()
	}
}

// RequireAnyPermission passes when the token grants at least one listed
// permission.
func RequireAnyPermission(perms ...auth.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			abortError(c, apperr.Unauthorized("authentication required"))
			return
		}
		if !auth.HasAny(claims.Permissions, perms...) {
			abortError(c, apperr.Forbidden(""))
			return
		}
		c.Next()
	}
}

// Claims returns the authenticated token claims, or nil on anonymous
// requests.
func Claims(c *gin.Context) *auth.Claims {
	v, _ := c.Get(ctxKeyClaims)
	claims, _ := v.(*auth.Claims)
	return claims
}

func authenticate(c *gin.Context, tokens *auth.TokenService) (*auth.Claims, error) {
	token := extractToken(c)
	if token == "" {
		return nil, apperr.Unauthorized("authentication required")
	}
	return tokens.Verify(token, auth.TokenTypeAccess)
}

// extractToken prefers the cookie, falling back to the Authorization
// bearer header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func abortError(c *gin.Context, err error) {
	if appErr, ok := apperr.As(err); ok {
		c.AbortWithStatusJSON(appErr.Status, model.NewErrorResponse(appErr.Code, appErr.Message, appErr.Details))
		return
	}
	internal := apperr.Internal(err)
	c.AbortWithStatusJSON(internal.Status, model.NewErrorResponse(internal.Code, internal.Message, nil))
}
