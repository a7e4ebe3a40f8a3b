package registry

import (
	"context"
	"strings"

	"github.com/universemc/universeapi/httpclient"
)

// Fetch issues a GET against a registered server and decodes the JSON body.
//
// The server argument may be a registered name or a raw base URL; a raw
// base URL is used as-is with no version, endpoint table, or default
// headers applied. The endpoint's first path segment is resolved through
// the server's endpoint table when it matches a logical name; the rest of
// the path is appended unchanged. Headers passed here win over the
// server's default headers on key collision.
func (r *Registry) Fetch(ctx context.Context, server, endpoint string, headers map[string]string) (any, error) {
	cfg, err := r.Lookup(server)
	if err != nil {
		if !IsUnknownServer(err) {
			return nil, err
		}
		cfg = &ServerConfig{Name: server, BaseURL: strings.TrimSuffix(server, "/")}
	}

	key, suffix := splitEndpoint(endpoint)
	req := &httpclient.Request{
		BaseURL: cfg.BaseURL,
		Path:    cfg.ResolveEndpoint(key, suffix),
		Headers: MergeHeaders(cfg.DefaultHeaders, headers),
	}

	resp, err := r.client.Get(ctx, req)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("server", cfg.Name).
			Str("endpoint", endpoint).
			Msg("fetch failed")
		return nil, err
	}

	return resp.JSON()
}

// splitEndpoint separates the logical endpoint key from any trailing path.
// "towns/london" yields ("towns", "london"); "towns" yields ("towns", "").
func splitEndpoint(endpoint string) (key, suffix string) {
	endpoint = strings.Trim(endpoint, "/")
	if i := strings.Index(endpoint, "/"); i >= 0 {
		return endpoint[:i], endpoint[i+1:]
	}
	return endpoint, ""
}
