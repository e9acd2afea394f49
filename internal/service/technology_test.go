package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgestack/atlas-backend/internal/apperr"
	"github.com/forgestack/atlas-backend/internal/dto"
)

func TestCreateTechnologyCategoryRejectsUnsluggableName(t *testing.T) {
	// the slug check runs before any repository access
	svc := &TechnologyService{}

	_, err := svc.Create(context.Background(), &dto.CreateTechnologyCategoryRequest{
		Category: "***",
	})
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
}
