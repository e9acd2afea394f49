package util

import (
	"encoding/json"
	"strings"
)

// ParseBool interprets the string representations a multipart form submits
// for boolean fields. Only "true"/"1" (and the usual on/yes variants) are
// truthy; everything else, including the empty string, is false.
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	}
	return false
}

// ParseArrayFromString normalizes a list-like field that may arrive as a
// newline- or comma-delimited string into an ordered slice. Entries are
// trimmed and empty entries dropped. An empty input yields an empty,
// non-nil slice so the stored document always carries a real array.
func ParseArrayFromString(value string) []string {
	out := []string{}
	if strings.TrimSpace(value) == "" {
		return out
	}
	sep := "\n"
	if !strings.Contains(value, "\n") {
		sep = ","
	}
	for _, part := range strings.Split(value, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinArray is the inverse of ParseArrayFromString for round-tripping list
// fields back into form values.
func JoinArray(list []string) string {
	return strings.Join(list, "\n")
}

// ParseStringMap decodes a JSON object of string values, falling back to the
// supplied default when the input is empty or malformed rather than failing
// the whole request. Callers that want hard rejection should validate the
// field before reaching this point.
func ParseStringMap(value string, fallback map[string]string) map[string]string {
	if fallback == nil {
		fallback = map[string]string{}
	}
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(value), &m); err != nil || m == nil {
		return fallback
	}
	return m
}

// ParseStringListMap decodes a JSON object whose values are string lists,
// e.g. a tech-stack grouping of category -> tools. Same fallback contract as
// ParseStringMap.
func ParseStringListMap(value string, fallback map[string][]string) map[string][]string {
	if fallback == nil {
		fallback = map[string][]string{}
	}
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	var m map[string][]string
	if err := json.Unmarshal([]byte(value), &m); err != nil || m == nil {
		return fallback
	}
	return m
}

// ParseBoolMap decodes a JSON object of feature flags whose values may be
// real booleans or their string representations.
func ParseBoolMap(value string, fallback map[string]bool) map[string]bool {
	if fallback == nil {
		fallback = map[string]bool{}
	}
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(value), &raw); err != nil || raw == nil {
		return fallback
	}
	out := make(map[string]bool, len(raw))
	for k, v := range raw {
		switch b := v.(type) {
		case bool:
			out[k] = b
		case string:
			out[k] = ParseBool(b)
		default:
			out[k] = false
		}
	}
	return out
}

// FirstNonEmpty returns the first non-empty string, for merging a partial
// update value over an existing one.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
