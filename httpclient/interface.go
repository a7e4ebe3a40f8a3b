package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/universemc/universeapi/trace"
)

// HeaderXRequestID is the header used to correlate the attempts of one
// logical call.
const HeaderXRequestID = trace.HeaderXRequestID

// Client defines the REST client interface for making HTTP requests
type Client interface {
	Get(ctx context.Context, req *Request) (*Response, error)
	Post(ctx context.Context, req *Request) (*Response, error)
	Put(ctx context.Context, req *Request) (*Response, error)
	Patch(ctx context.Context, req *Request) (*Response, error)
	Delete(ctx context.Context, req *Request) (*Response, error)
	Do(ctx context.Context, method string, req *Request) (*Response, error)
}

// Request represents an HTTP request with all necessary data.
// The target URL is BaseURL joined with Path by exactly one slash.
type Request struct {
	BaseURL string
	Path    string
	Headers map[string]string
	Body    []byte
	// Timeout overrides the client's per-attempt timeout when positive.
	Timeout time.Duration
}

// URL returns the slash-normalized request URL.
func (r *Request) URL() string {
	return JoinURL(r.BaseURL, r.Path)
}

// JoinURL joins a base URL and a path segment with exactly one slash,
// regardless of trailing slashes on the base or leading slashes on the path.
func JoinURL(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")
	p := strings.TrimLeft(path, "/")
	if p == "" {
		return base
	}
	return base + "/" + p
}

// Response represents an HTTP response with tracking information
type Response struct {
	StatusCode int
	Body       []byte
	Headers    nethttp.Header
	Stats      Stats
}

// JSON decodes the response body. An empty body yields nil without error;
// a malformed body yields a parse error carrying the decoder's message.
func (r *Response) JSON() (any, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil, NewParseError("response body is not valid JSON", err)
	}
	return v, nil
}

// Stats contains request execution statistics
type Stats struct {
	ElapsedTime time.Duration
	CallCount   int64
	Attempts    int
}

// Config holds the REST client configuration
type Config struct {
	// Timeout is the per-attempt timeout (default 30s).
	Timeout time.Duration
	// UserAgent identifies the client on every request.
	UserAgent string
	// MaxAttempts bounds the total number of attempts per call (default 3).
	MaxAttempts int
	// BackoffBase is the linear backoff unit between attempts (default 2s).
	BackoffBase time.Duration
	// DefaultHeaders are sent with every request; request headers win on
	// key collision.
	DefaultHeaders map[string]string
	// LogPayloads enables debug-level logging of headers and body payloads
	LogPayloads bool
	// MaxPayloadLogBytes caps the number of body bytes logged when LogPayloads is enabled
	MaxPayloadLogBytes int
}
