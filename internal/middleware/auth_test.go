package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/auth"
	"github.com/forgestack/atlas-backend/internal/model"
)

func newTokens() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour, 24*time.Hour)
}

func issueFor(t *testing.T, tokens *auth.TokenService, role model.Role) *auth.TokenPair {
	t.Helper()
	pair, err := tokens.IssuePair(&model.User{
		ID:    primitive.NewObjectID(),
		Email: "user@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return pair
}

func newAuthRouter(tokens *auth.TokenService) *gin.Engine {
	r := gin.New()
	protected := r.Group("", RequireAuth(tokens))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.NewSuccessResponse("", Claims(c).Email))
	})
	protected.POST("/services",
		RequirePermissions(auth.PermCreateServices),
		func(c *gin.Context) { c.JSON(http.StatusOK, model.NewSuccessResponse("", nil)) })
	protected.GET("/either",
		RequireAnyPermission(auth.PermViewServices, auth.PermViewUsers),
		func(c *gin.Context) { c.JSON(http.StatusOK, model.NewSuccessResponse("", nil)) })
	protected.GET("/admin-only",
		RequireRoles(model.RoleAdmin, model.RoleSuperAdmin),
		func(c *gin.Context) { c.JSON(http.StatusOK, model.NewSuccessResponse("", nil)) })

	r.GET("/maybe", OptionalAuth(tokens), func(c *gin.Context) {
		email := ""
		if claims := Claims(c); claims != nil {
			email = claims.Email
		}
		c.JSON(http.StatusOK, model.NewSuccessResponse("", email))
	})
	return r
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	r := newAuthRouter(newTokens())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp model.Response
	require.NoError(t, decodeJSON(w, &resp))
	assert.Equal(t, apperr.CodeUnauthorized, resp.Error.Code)
}

func TestRequireAuthAcceptsBearerHeader(t *testing.T) {
	tokens := newTokens()
	r := newAuthRouter(tokens)
	pair := issueFor(t, tokens, model.RoleClient)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	tokens := newTokens()
	r := newAuthRouter(tokens)
	pair := issueFor(t, tokens, model.RoleClient)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthRejectsRefreshTokenAsAccess(t *testing.T) {
	tokens := newTokens()
	r := newAuthRouter(tokens)
	pair := issueFor(t, tokens, model.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp model.Response
	require.NoError(t, decodeJSON(w, &resp))
	assert.Equal(t, apperr.CodeTokenInvalid, resp.Error.Code)
}

func TestRequirePermissions(t *testing.T) {
	tokens := newTokens()
	r := newAuthRouter(tokens)

	t.Run("editor may create services", func(t *testing.T) {
		pair := issueFor(t, tokens, model.RoleEditor)
		req := httptest.NewRequest(http.MethodPost, "/services", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("client may not", func(t *testing.T) {
		pair := issueFor(t, tokens, model.RoleClient)
		req := httptest.NewRequest(http.MethodPost, "/services", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var resp model.Response
		require.NoError(t, decodeJSON(w, &resp))
		assert.Equal(t, apperr.CodeForbidden, resp.Error.Code)
	})
}

func TestRequireAnyPermission(t *testing.T) {
	tokens := newTokens()
	r := newAuthRouter(tokens)

	// client has VIEW_SERVICES but not VIEW_USERS
	pair := issueFor(t, tokens, model.RoleClient)
	req := httptest.NewRequest(http.MethodGet, "/either", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles(t *testing.T) {
	tokens := newTokens()
	r := newAuthRouter(tokens)

	pair := issueFor(t, tokens, model.RoleEditor)
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	pair = issueFor(t, tokens, model.RoleSuperAdmin)
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	tokens := newTokens()
	r := newAuthRouter(tokens)

	t.Run("anonymous passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token still passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		pair := issueFor(t, tokens, model.RoleClient)
		req := httptest.NewRequest(http.MethodGet, "/maybe", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var resp model.Response
		require.NoError(t, decodeJSON(w, &resp))
		assert.Equal(t, "user@example.com", resp.Data)
	})
}
