package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Web Development":          "web-development",
		"  Cloud & DevOps!  ":      "cloud-devops",
		"API/Integration Services": "api-integration-services",
		"already-a-slug":           "already-a-slug",
		"UPPER CASE":               "upper-case",
		"---weird---input---":      "weird-input",
		"":                         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Same Title"), Slugify("Same Title"))
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("word ", 60)
	got := Slugify(long)
	assert.LessOrEqual(t, len(got), SlugMaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("web-development"))
	assert.True(t, IsValidSlug("v2"))
	assert.False(t, IsValidSlug("Web Development"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug(""))
}
