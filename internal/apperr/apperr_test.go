package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{NotFound("service"), http.StatusNotFound, CodeNotFound},
		{Validation(nil), http.StatusBadRequest, CodeValidation},
		{Unauthorized(""), http.StatusUnauthorized, CodeUnauthorized},
		{Forbidden(""), http.StatusForbidden, CodeForbidden},
		{Conflict("user", "email"), http.StatusConflict, CodeConflict},
		{TokenExpired(), http.StatusUnauthorized, CodeTokenExpired},
		{TokenInvalid(), http.StatusUnauthorized, CodeTokenInvalid},
		{FileUpload("file too large"), http.StatusBadRequest, CodeFileUpload},
		{RateLimited(), http.StatusTooManyRequests, CodeRateLimited},
		{RouteNotFound("GET", "/nope"), http.StatusNotFound, CodeRouteNotFound},
		{Internal(errors.New("boom")), http.StatusInternalServerError, CodeInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status, tc.code)
		assert.Equal(t, tc.code, tc.err.Code)
		assert.NotEmpty(t, tc.err.Message)
	}
}

func TestUnauthorizedDefaultsToVagueMessage(t *testing.T) {
	assert.Equal(t, "invalid credentials", Unauthorized("").Message)
	assert.Equal(t, "session expired", Unauthorized("session expired").Message)
}

func TestConflictNamesResourceAndField(t *testing.T) {
	assert.Equal(t, "user with this email already exists", Conflict("user", "email").Message)
}

func TestAs(t *testing.T) {
	base := NotFound("portfolio item")
	wrapped := fmt.Errorf("loading: %w", base)

	got, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, got.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(nil).WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	// client-facing fields are untouched
	assert.Equal(t, "internal server error", err.Message)
}

func TestValidationCarriesDetails(t *testing.T) {
	details := map[string][]string{"title": {"title is required"}}
	err := Validation(details)
	assert.Equal(t, details, err.Details)
}
