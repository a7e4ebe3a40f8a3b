// Header masking for log output. API credentials travel through this library
// as opaque header values, so anything credential-shaped is masked before it
// reaches a log sink.

package logger

import "strings"

// DefaultMaskValue replaces masked values in log output.
const DefaultMaskValue = "***"

// FilterConfig defines which field and header names are considered sensitive.
type FilterConfig struct {
	// SensitiveNames are substrings matched case-insensitively against
	// field names and header keys.
	SensitiveNames []string
	// MaskValue replaces sensitive values (default: "***").
	MaskValue string
}

// DefaultFilterConfig returns a configuration covering common credential
// header and field names.
func DefaultFilterConfig() *FilterConfig {
	return &FilterConfig{
		SensitiveNames: []string{
			"password", "secret",
			"key", "api_key", "apikey", "api-key",
			"token", "access_token", "refresh_token",
			"auth", "authorization",
			"credential", "cookie",
		},
		MaskValue: DefaultMaskValue,
	}
}

// HeaderFilter masks credential-looking values in log fields and header maps.
type HeaderFilter struct {
	config *FilterConfig
}

// NewHeaderFilter creates a filter with the given configuration, falling
// back to DefaultFilterConfig when nil.
func NewHeaderFilter(config *FilterConfig) *HeaderFilter {
	if config == nil {
		config = DefaultFilterConfig()
	}
	if config.MaskValue == "" {
		config.MaskValue = DefaultMaskValue
	}
	return &HeaderFilter{config: config}
}

// FilterString masks the value when the key is sensitive.
func (f *HeaderFilter) FilterString(key, value string) string {
	if value != "" && f.isSensitive(key) {
		return f.config.MaskValue
	}
	return value
}

// FilterValue masks string and string-map values under sensitive keys.
// Header maps passed as a whole are filtered entry by entry.
func (f *HeaderFilter) FilterValue(key string, value any) any {
	if f.isSensitive(key) {
		return f.config.MaskValue
	}
	switch v := value.(type) {
	case map[string]string:
		return f.FilterHeaders(v)
	case map[string]any:
		filtered := make(map[string]any, len(v))
		for k, val := range v {
			filtered[k] = f.FilterValue(k, val)
		}
		return filtered
	default:
		return value
	}
}

// FilterHeaders returns a copy of the header map with sensitive values masked.
func (f *HeaderFilter) FilterHeaders(headers map[string]string) map[string]string {
	filtered := make(map[string]string, len(headers))
	for k, v := range headers {
		filtered[k] = f.FilterString(k, v)
	}
	return filtered
}

// FilterFields filters a map of log fields for sensitive data.
func (f *HeaderFilter) FilterFields(fields map[string]any) map[string]any {
	filtered := make(map[string]any, len(fields))
	for k, v := range fields {
		filtered[k] = f.FilterValue(k, v)
	}
	return filtered
}

func (f *HeaderFilter) isSensitive(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range f.config.SensitiveNames {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
