package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/model"
)

// ErrorHandler is the single place any error becomes an HTTP response.
// Handlers attach errors with c.Error and never render failures themselves.
// Unrecognized errors become a 500 whose real message is only exposed
// outside production.
func ErrorHandler(logger *zap.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		err := lastError(c)
		if err == nil || c.Writer.Written() {
			if err != nil {
				logger.Error("error after response was written", zap.Error(err))
			}
			return
		}

		appErr := classify(err)
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			if !production {
				appErr.Message = err.Error()
			}
		}

		c.JSON(appErr.Status, model.NewErrorResponse(appErr.Code, appErr.Message, appErr.Details))
	}
}

func lastError(c *gin.Context) error {
	if len(c.Errors) == 0 {
		return nil
	}
	return c.Errors.Last().Err
}

// classify maps every known error family onto the taxonomy.
func classify(err error) *apperr.Error {
	if appErr, ok := apperr.As(err); ok {
		return appErr
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return apperr.Validation(fieldErrors(vErrs))
	}

	var jsonErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &jsonErr) || errors.As(err, &typeErr) {
		e := apperr.ValidationMessage("malformed request body")
		e.Code = apperr.CodeMalformedRequest
		return e
	}

	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict("resource", duplicateKeyField(err))
	}
	if errors.Is(err, primitive.ErrInvalidHex) {
		return apperr.ValidationMessage("invalid identifier")
	}

	return apperr.Internal(err)
}

// duplicateKeyField extracts the offending field name from a mongo duplicate
// key error message, e.g. "... index: email_1 dup key ...".
func duplicateKeyField(err error) string {
	msg := err.Error()
	idx := strings.Index(msg, "index: ")
	if idx < 0 {
		return "field"
	}
	rest := msg[idx+len("index: "):]
	if end := strings.IndexAny(rest, " _"); end > 0 {
		return rest[:end]
	}
	return "field"
}

// NotFoundHandler converts any unmatched method+path into a typed 404 that
// flows through the same envelope.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		appErr := apperr.RouteNotFound(c.Request.Method, c.Request.URL.Path)
		c.JSON(appErr.Status, model.NewErrorResponse(appErr.Code, appErr.Message, nil))
	}
}
