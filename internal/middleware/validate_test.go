package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/model"
)

type sampleBody struct {
	Title string `form:"title" json:"title" binding:"required,max=10"`
	Email string `form:"email" json:"email" binding:"required,email"`
	Level string `form:"level" json:"level" binding:"omitempty,oneof=beginner expert"`
}

type sampleQuery struct {
	Order string `form:"order" binding:"omitempty,oneof=asc desc"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newValidateRouter() *gin.Engine {
	r := gin.New()
	r.POST("/body", ValidateBody[sampleBody](), func(c *gin.Context) {
		c.JSON(http.StatusOK, model.NewSuccessResponse("", Body[sampleBody](c)))
	})
	r.GET("/query", ValidateQuery[sampleQuery](), func(c *gin.Context) {
		c.JSON(http.StatusOK, model.NewSuccessResponse("", Query[sampleQuery](c)))
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, model.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp model.Response
	require.NoError(t, decodeJSON(w, &resp))
	return w, resp
}

func TestValidateBodyAggregatesAllFailures(t *testing.T) {
	r := newValidateRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/body", `{"title":"this title is far too long","level":"wizard"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperr.CodeValidation, resp.Error.Code)

	assert.Contains(t, resp.Error.Details, "title")
	assert.Contains(t, resp.Error.Details, "email")
	assert.Contains(t, resp.Error.Details, "level")
	assert.Equal(t, []string{"is required"}, resp.Error.Details["email"])
	assert.Equal(t, []string{"must be one of: beginner, expert"}, resp.Error.Details["level"])
}

func TestValidateBodyPassesValidInput(t *testing.T) {
	r := newValidateRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/body", `{"title":"short","email":"a@b.co"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
}

func TestValidateBodyRejectsMalformedJSON(t *testing.T) {
	r := newValidateRouter()

	w, resp := doJSON(t, r, http.MethodPost, "/body", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperr.CodeMalformedRequest, resp.Error.Code)
}

func TestValidateBodyAcceptsFormEncoding(t *testing.T) {
	r := newValidateRouter()

	form := url.Values{"title": {"hello"}, "email": {"a@b.co"}}
	req := httptest.NewRequest(http.MethodPost, "/body", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateQuery(t *testing.T) {
	r := newValidateRouter()

	w, _ := doJSON(t, r, http.MethodGet, "/query?order=asc", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, http.MethodGet, "/query?order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperr.CodeValidation, resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "order")
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "email", fieldPath("RegisterRequest.Email"))
	assert.Equal(t, "site.title", fieldPath("UpdateSettingsRequest.Site.Title"))
}
