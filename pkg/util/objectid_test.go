package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	parsed, err := ParseObjectID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseObjectID("web-development")
	assert.Error(t, err)
}

func TestIsValidObjectID(t *testing.T) {
	assert.True(t, IsValidObjectID(primitive.NewObjectID().Hex()))
	assert.False(t, IsValidObjectID("web-development"))
	assert.False(t, IsValidObjectID(""))
	// right length, wrong alphabet
	assert.False(t, IsValidObjectID("zzzzzzzzzzzzzzzzzzzzzzzz"))
}

func TestGenerateObjectID(t *testing.T) {
	assert.NotEqual(t, GenerateObjectID(), GenerateObjectID())
}
