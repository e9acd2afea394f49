package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/model"
)

func newErrorRouter(production bool, fail func(c *gin.Context) error) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), production))
	r.NoRoute(NotFoundHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Error(fail(c))
	})
	return r
}

func fire(r *gin.Engine, path string) (*httptest.ResponseRecorder, model.Response) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp model.Response
	_ = decodeJSON(w, &resp)
	return w, resp
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	r := newErrorRouter(false, func(c *gin.Context) error {
		return apperr.NotFound("service")
	})

	w, resp := fire(r, "/boom")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, apperr.CodeNotFound, resp.Error.Code)
	assert.Equal(t, "service not found", resp.Error.Message)
}

func TestErrorHandlerHidesInternalDetailInProduction(t *testing.T) {
	secret := errors.New("password for db is hunter2")

	w, resp := fire(newErrorRouter(true, func(c *gin.Context) error { return secret }), "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperr.CodeInternal, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "hunter2")

	// outside production the message is exposed for debugging
	_, resp = fire(newErrorRouter(false, func(c *gin.Context) error { return secret }), "/boom")
	assert.Contains(t, resp.Error.Message, "hunter2")
}

func TestErrorHandlerMapsInvalidObjectID(t *testing.T) {
	r := newErrorRouter(false, func(c *gin.Context) error {
		return primitive.ErrInvalidHex
	})

	w, resp := fire(r, "/boom")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperr.CodeValidation, resp.Error.Code)
	assert.Equal(t, "invalid identifier", resp.Error.Message)
}

func TestNotFoundHandler(t *testing.T) {
	r := newErrorRouter(false, nil)

	w, resp := fire(r, "/no/such/route")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperr.CodeRouteNotFound, resp.Error.Code)
	assert.Equal(t, "cannot GET /no/such/route", resp.Error.Message)
}

func TestDuplicateKeyField(t *testing.T) {
	err := errors.New(`write exception: write errors: [E11000 duplicate key error collection: atlas.users index: email_1 dup key: { email: "a@b.co" }]`)
	assert.Equal(t, "email", duplicateKeyField(err))

	assert.Equal(t, "field", duplicateKeyField(errors.New("no index marker here")))
}

func TestClassifyPreservesWrappedAppError(t *testing.T) {
	wrapped := apperr.Conflict("user", "email").WithCause(errors.New("underlying"))
	got := classify(wrapped)
	assert.Equal(t, apperr.CodeConflict, got.Code)
	assert.Equal(t, http.StatusConflict, got.Status)
}
