// Package handler binds validated requests to services and formats results
// through the response envelope. Handlers never render errors themselves;
// failures are attached to the context for the centralized error handler.
package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/model"
	"github.com/forgestack/atlas-backend/pkg/upload"
)

func ok(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, model.NewSuccessResponse(message, data))
}

func created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, model.NewSuccessResponse(message, data))
}

func paginated(c *gin.Context, data any, page, pageSize int, total int64) {
	c.JSON(http.StatusOK, model.NewPaginatedResponse(data, page, pageSize, total))
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// fail hands the error to the centralized error middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
}

// saveUpload resolves an optional multipart file field to a public URL.
// An absent field (or a non-multipart body) is not an error; "" means no
// file was sent.
func saveUpload(c *gin.Context, store *upload.Store, field string, category upload.Category) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, multipart.ErrMessageTooLarge) {
			return "", apperr.FileUpload("uploaded file is too large")
		}
		return "", nil
	}
	url, err := store.Save(header, category)
	if err != nil {
		return "", apperr.FileUpload(err.Error())
	}
	return url, nil
}
