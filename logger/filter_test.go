package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterStringMasksSensitiveKeys(t *testing.T) {
	filter := NewHeaderFilter(nil)

	tests := []struct {
		name     string
		key      string
		value    string
		expected string
	}{
		{"authorization header", "Authorization", "Bearer abc123", "***"},
		{"api key header", "X-API-Key", "s3cret", "***"},
		{"hypixel key header", "API-Key", "uuid-value", "***"},
		{"token field", "access_token", "tok", "***"},
		{"plain header", "Accept", "application/json", "application/json"},
		{"user agent", "User-Agent", "UniverseAPI/1.0.0", "UniverseAPI/1.0.0"},
		{"empty value untouched", "Authorization", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, filter.FilterString(tt.key, tt.value))
		})
	}
}

func TestFilterHeaders(t *testing.T) {
	filter := NewHeaderFilter(nil)

	headers := map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer token",
		"X-API-Key":     "abc",
	}

	filtered := filter.FilterHeaders(headers)

	assert.Equal(t, "application/json", filtered["Accept"])
	assert.Equal(t, "***", filtered["Authorization"])
	assert.Equal(t, "***", filtered["X-API-Key"])
	// Original map is untouched
	assert.Equal(t, "Bearer token", headers["Authorization"])
}

func TestFilterValueHandlesMaps(t *testing.T) {
	filter := NewHeaderFilter(nil)

	t.Run("string map filtered per entry", func(t *testing.T) {
		v := filter.FilterValue("headers", map[string]string{
			"Accept":    "application/json",
			"X-API-Key": "abc",
		})
		m, ok := v.(map[string]string)
		assert.True(t, ok)
		assert.Equal(t, "***", m["X-API-Key"])
		assert.Equal(t, "application/json", m["Accept"])
	})

	t.Run("any map filtered recursively", func(t *testing.T) {
		v := filter.FilterValue("fields", map[string]any{
			"password": "hunter2",
			"count":    3,
		})
		m, ok := v.(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, "***", m["password"])
		assert.Equal(t, 3, m["count"])
	})

	t.Run("sensitive key masks whole value", func(t *testing.T) {
		assert.Equal(t, "***", filter.FilterValue("api_key", 12345))
	})
}

func TestCustomFilterConfig(t *testing.T) {
	filter := NewHeaderFilter(&FilterConfig{
		SensitiveNames: []string{"x-universe-secret"},
		MaskValue:      "[redacted]",
	})

	assert.Equal(t, "[redacted]", filter.FilterString("X-Universe-Secret", "v"))
	// Default names are not included when a custom config is supplied
	assert.Equal(t, "Bearer t", filter.FilterString("Authorization", "Bearer t"))
}
