package registry

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/universemc/universeapi/httpclient"
	"github.com/universemc/universeapi/logger"
)

// ServerConfig bundles the connection metadata for one external API.
type ServerConfig struct {
	// Name is the unique key in the registry.
	Name string
	// BaseURL carries no trailing slash.
	BaseURL string
	// Version is an optional path segment prefixed to every resolved endpoint.
	Version string
	// Endpoints maps logical endpoint names to path segments.
	Endpoints map[string]string
	// DefaultHeaders are merged under caller-supplied headers on every fetch.
	DefaultHeaders map[string]string
	// RegisteredAt records when the entry was (re-)registered, for
	// diagnostics only.
	RegisteredAt time.Time
}

// Options holds the optional fields of a registration.
type Options struct {
	Version   string
	Endpoints map[string]string
	Headers   map[string]string
}

// Registry is a process-wide mapping from server name to ServerConfig.
type Registry struct {
	mu      sync.RWMutex
	servers map[string]*ServerConfig
	client  httpclient.Client
	logger  logger.Logger
}

// New creates an empty registry that fetches through the given client.
func New(client httpclient.Client, log logger.Logger) *Registry {
	return &Registry{
		servers: make(map[string]*ServerConfig),
		client:  client,
		logger:  log,
	}
}

// Register constructs and stores a ServerConfig under name, overwriting any
// existing entry. One trailing slash is stripped from baseURL so resolved
// URLs join with exactly one slash.
func (r *Registry) Register(name, baseURL string, opts Options) *ServerConfig {
	cfg := &ServerConfig{
		Name:           name,
		BaseURL:        strings.TrimSuffix(baseURL, "/"),
		Version:        opts.Version,
		Endpoints:      copyMap(opts.Endpoints),
		DefaultHeaders: copyMap(opts.Headers),
		RegisteredAt:   time.Now(),
	}

	r.mu.Lock()
	r.servers[name] = cfg
	r.mu.Unlock()

	r.logger.Debug().
		Str("server", name).
		Str("base_url", cfg.BaseURL).
		Str("version", cfg.Version).
		Int("endpoints", len(cfg.Endpoints)).
		Msg("registered server")

	return cfg
}

// Lookup returns the ServerConfig registered under name. Unknown names fail
// with an UnknownServerError enumerating every registered name.
func (r *Registry) Lookup(name string) (*ServerConfig, error) {
	r.mu.RLock()
	cfg, ok := r.servers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, NewUnknownServerError(name, r.Names())
	}
	return cfg, nil
}

// Names returns the sorted names of all registered servers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.servers))
	for name := range r.servers {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// ResolveEndpoint resolves a logical endpoint key or raw path against this
// server. When the key matches an entry in Endpoints its path segment is
// used, otherwise the key is taken as the path directly. The version
// segment, when configured, prefixes the result; a non-empty suffix is
// appended after it.
func (s *ServerConfig) ResolveEndpoint(endpoint, suffix string) string {
	base := endpoint
	if mapped, ok := s.Endpoints[endpoint]; ok {
		base = mapped
	}

	parts := make([]string, 0, 3)
	if s.Version != "" {
		parts = append(parts, strings.Trim(s.Version, "/"))
	}
	if base = strings.Trim(base, "/"); base != "" {
		parts = append(parts, base)
	}
	if suffix = strings.Trim(suffix, "/"); suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, "/")
}

// MergeHeaders combines two header maps with last-write-wins semantics:
// a key present in both takes the value from overrides.
func MergeHeaders(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
