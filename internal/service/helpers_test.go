package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forgestack/atlas-backend/internal/model"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", normalizeEmail("  Admin@Example.COM "))
	assert.Equal(t, "a@b.co", normalizeEmail("a@b.co"))
}

func TestSearchFilter(t *testing.T) {
	or := searchFilter("web (dev)", "title", "description")

	assert.Len(t, or, 2)
	pattern := or[0]["title"].(primitive.Regex)
	assert.Equal(t, "i", pattern.Options)
	// regex metacharacters in user input are escaped
	assert.Equal(t, `web \(dev\)`, pattern.Pattern)
	assert.Equal(t, bson.M{"description": pattern}, or[1])
}

func TestApplyString(t *testing.T) {
	dst := "original"
	applyString(&dst, nil)
	assert.Equal(t, "original", dst)

	v := "updated"
	applyString(&dst, &v)
	assert.Equal(t, "updated", dst)

	empty := ""
	applyString(&dst, &empty)
	assert.Equal(t, "", dst, "an explicitly supplied empty value clears the field")
}

func TestApplyList(t *testing.T) {
	dst := []string{"old"}
	applyList(&dst, nil)
	assert.Equal(t, []string{"old"}, dst)

	v := "a\nb"
	applyList(&dst, &v)
	assert.Equal(t, []string{"a", "b"}, dst)

	empty := ""
	applyList(&dst, &empty)
	assert.NotNil(t, dst)
	assert.Empty(t, dst)
}

func TestApplyBool(t *testing.T) {
	dst := true
	applyBool(&dst, nil)
	assert.True(t, dst)

	v := "false"
	applyBool(&dst, &v)
	assert.False(t, dst)

	v = "1"
	applyBool(&dst, &v)
	assert.True(t, dst)
}

func TestApplyInt(t *testing.T) {
	dst := 3
	applyInt(&dst, nil)
	assert.Equal(t, 3, dst)

	v := 5
	applyInt(&dst, &v)
	assert.Equal(t, 5, dst)
}

func TestFindItem(t *testing.T) {
	s := &TechnologyService{}
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	cat := &model.TechnologyCategory{
		Items: []model.TechnologyItem{{ID: first}, {ID: second}},
	}

	assert.Equal(t, 0, s.findItem(cat, first.Hex()))
	assert.Equal(t, 1, s.findItem(cat, second.Hex()))
	assert.Equal(t, -1, s.findItem(cat, primitive.NewObjectID().Hex()))
	assert.Equal(t, -1, s.findItem(cat, "not-an-objectid"))
}
