package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	truthy := []string{"1", "true", "TRUE", "True", " yes ", "on", "t", "y"}
	for _, v := range truthy {
		assert.True(t, ParseBool(v), "expected %q to be true", v)
	}

	falsy := []string{"", "0", "false", "off", "no", "random", "2"}
	for _, v := range falsy {
		assert.False(t, ParseBool(v), "expected %q to be false", v)
	}
}

func TestParseArrayFromString(t *testing.T) {
	t.Run("newline delimited", func(t *testing.T) {
		got := ParseArrayFromString("Custom Development\nAPI Integration\nMaintenance")
		assert.Equal(t, []string{"Custom Development", "API Integration", "Maintenance"}, got)
	})

	t.Run("comma delimited", func(t *testing.T) {
		got := ParseArrayFromString("go, mongodb , docker")
		assert.Equal(t, []string{"go", "mongodb", "docker"}, got)
	})

	t.Run("newline wins over comma", func(t *testing.T) {
		got := ParseArrayFromString("a, b\nc")
		assert.Equal(t, []string{"a, b", "c"}, got)
	})

	t.Run("drops empty entries", func(t *testing.T) {
		got := ParseArrayFromString("a,,b,  ,c")
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("empty input yields non-nil empty slice", func(t *testing.T) {
		got := ParseArrayFromString("   ")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestJoinArrayRoundTrip(t *testing.T) {
	list := []string{"one", "two", "three"}
	assert.Equal(t, list, ParseArrayFromString(JoinArray(list)))
}

func TestParseStringMap(t *testing.T) {
	fallback := map[string]string{"existing": "value"}

	t.Run("valid json", func(t *testing.T) {
		got := ParseStringMap(`{"github":"https://github.com/acme"}`, fallback)
		assert.Equal(t, map[string]string{"github": "https://github.com/acme"}, got)
	})

	t.Run("malformed json keeps fallback", func(t *testing.T) {
		assert.Equal(t, fallback, ParseStringMap("{not json", fallback))
	})

	t.Run("empty input keeps fallback", func(t *testing.T) {
		assert.Equal(t, fallback, ParseStringMap("", fallback))
	})

	t.Run("nil fallback becomes empty map", func(t *testing.T) {
		got := ParseStringMap("", nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestParseStringListMap(t *testing.T) {
	got := ParseStringListMap(`{"backend":["go","mongodb"],"frontend":["react"]}`, nil)
	assert.Equal(t, map[string][]string{
		"backend":  {"go", "mongodb"},
		"frontend": {"react"},
	}, got)

	fallback := map[string][]string{"keep": {"me"}}
	assert.Equal(t, fallback, ParseStringListMap("nope", fallback))
}

func TestParseBoolMap(t *testing.T) {
	got := ParseBoolMap(`{"blog":true,"newsletter":"true","darkMode":"0","count":3}`, nil)
	assert.Equal(t, map[string]bool{
		"blog":       true,
		"newsletter": true,
		"darkMode":   false,
		"count":      false,
	}, got)

	fallback := map[string]bool{"blog": true}
	assert.Equal(t, fallback, ParseBoolMap("", fallback))
	assert.Equal(t, fallback, ParseBoolMap("[1,2]", fallback))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "a", FirstNonEmpty("a"))
	assert.Equal(t, "", FirstNonEmpty("", ""))
}
