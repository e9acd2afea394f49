// Package middleware holds the request pipeline: validation, the auth and
// permission gates, rate limiting, request logging and the centralized
// error handler.
package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/model"
)

const (
	ctxKeyBody  = "validated:body"
	ctxKeyQuery = "validated:query"
)

// ValidateBody binds and validates the request body (JSON or form,
// picked by content type) into T, collecting every field failure into one
// 400 response. Handlers read the result with Body[T].
func ValidateBody[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := new(T)
		if err := c.ShouldBind(obj); err != nil {
			abortBindError(c, err)
			return
		}
		c.Set(ctxKeyBody, obj)
		c.Next()
	}
}

// ValidateQuery binds and validates the query string into T.
func ValidateQuery[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		obj := new(T)
		if err := c.ShouldBindQuery(obj); err != nil {
			abortBindError(c, err)
			return
		}
		c.Set(ctxKeyQuery, obj)
		c.Next()
	}
}

// Body returns the value ValidateBody stored for this request.
func Body[T any](c *gin.Context) *T {
	v, _ := c.Get(ctxKeyBody)
	obj, _ := v.(*T)
	return obj
}

// Query returns the value ValidateQuery stored for this request.
func Query[T any](c *gin.Context) *T {
	v, _ := c.Get(ctxKeyQuery)
	obj, _ := v.(*T)
	return obj
}

func abortBindError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		appErr = apperr.Validation(fieldErrors(vErrs))
	} else {
		appErr = apperr.ValidationMessage("malformed request body").WithCause(err)
		appErr.Code = apperr.CodeMalformedRequest
	}
	c.AbortWithStatusJSON(appErr.Status, model.NewErrorResponse(appErr.Code, appErr.Message, appErr.Details))
}

// fieldErrors flattens validator failures into field path -> messages.
func fieldErrors(errs validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(errs))
	for _, fe := range errs {
		field := fieldPath(fe.Namespace())
		out[field] = append(out[field], validationMessage(fe))
	}
	return out
}

// fieldPath drops the struct name prefix and lowercases the first letter of
// each segment so the path matches the JSON shape clients sent.
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return fmt.Sprintf("must match %s", strings.ToLower(fe.Param()[:1])+fe.Param()[1:])
	case "nefield":
		return fmt.Sprintf("must differ from %s", strings.ToLower(fe.Param()[:1])+fe.Param()[1:])
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
