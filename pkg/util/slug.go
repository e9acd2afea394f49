package util

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugEdgeDashes   = regexp.MustCompile(`^-+|-+$`)
)

const SlugMaxLength = 120

// Slugify derives a URL-safe identifier from a title: lowercase alphanumeric
// runs joined by single dashes. Deterministic, so the same title always maps
// to the same slug; uniqueness is the caller's concern.
func Slugify(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugEdgeDashes.ReplaceAllString(s, "")
	if len(s) > SlugMaxLength {
		s = strings.Trim(s[:SlugMaxLength], "-")
	}
	return s
}

// IsValidSlug reports whether a string already has slug shape.
func IsValidSlug(value string) bool {
	return value != "" && value == Slugify(value)
}
